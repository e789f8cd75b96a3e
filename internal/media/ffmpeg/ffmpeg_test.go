package ffmpeg

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	req := Request{
		Input:        "/tmp/work/concat.VOB",
		Output:       "movie.mp4",
		AudioStream:  1,
		VideoCodec:   "libx264",
		AudioCodec:   "aac",
		AudioBitrate: "192k",
		FastStart:    true,
	}

	want := []string{
		"-y", "-i", "/tmp/work/concat.VOB",
		"-map", "0:v:0",
		"-map", "0:1",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-b:a", "192k",
		"-movflags", "+faststart",
		"movie.mp4",
	}
	if got := BuildArgs(req); !reflect.DeepEqual(got, want) {
		t.Fatalf("args mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestBuildArgsAspect(t *testing.T) {
	req := Request{
		Input:        "concat.VOB",
		Output:       "out.mp4",
		AudioStream:  2,
		VideoCodec:   "libx264",
		AudioCodec:   "aac",
		AudioBitrate: "192k",
		Aspect:       "4:3",
	}

	args := BuildArgs(req)
	foundAspect := false
	for i, arg := range args {
		if arg == "-aspect" {
			foundAspect = true
			if args[i+1] != "4:3" {
				t.Fatalf("aspect value %q, want 4:3", args[i+1])
			}
		}
		if arg == "-movflags" {
			t.Fatal("faststart disabled but -movflags present")
		}
	}
	if !foundAspect {
		t.Fatalf("missing -aspect flag: %v", args)
	}
	if args[len(args)-1] != "out.mp4" {
		t.Fatalf("output must be last: %v", args)
	}
}

type fakeExecutor struct {
	err    error
	binary string
	args   []string
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string) error {
	f.binary = binary
	f.args = args
	return f.err
}

func TestTranscode(t *testing.T) {
	exec := &fakeExecutor{}
	client, err := New("ffmpeg", WithExecutor(exec))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	req := Request{
		Input:        "concat.VOB",
		Output:       "out.mp4",
		VideoCodec:   "libx264",
		AudioCodec:   "aac",
		AudioBitrate: "192k",
	}
	if err := client.Transcode(context.Background(), req); err != nil {
		t.Fatalf("transcode: %v", err)
	}
	if exec.binary != "ffmpeg" {
		t.Fatalf("unexpected binary: %s", exec.binary)
	}
	if len(exec.args) == 0 || exec.args[len(exec.args)-1] != "out.mp4" {
		t.Fatalf("unexpected args: %v", exec.args)
	}
}

func TestTranscodeFailure(t *testing.T) {
	wantErr := errors.New("exit status 1")
	client, err := New("ffmpeg", WithExecutor(&fakeExecutor{err: wantErr}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	req := Request{Input: "concat.VOB", Output: "out.mp4"}
	if err := client.Transcode(context.Background(), req); !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped executor error, got %v", err)
	}
}

func TestTranscodeValidation(t *testing.T) {
	client, err := New("ffmpeg", WithExecutor(&fakeExecutor{}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if err := client.Transcode(context.Background(), Request{Output: "out.mp4"}); err == nil {
		t.Fatal("expected error for missing input")
	}
	if err := client.Transcode(context.Background(), Request{Input: "in.VOB"}); err == nil {
		t.Fatal("expected error for missing output")
	}
	if err := client.Transcode(context.Background(), Request{Input: "in.VOB", Output: "out.mp4", AudioStream: -1}); err == nil {
		t.Fatal("expected error for negative audio stream")
	}
}

func TestTail(t *testing.T) {
	if got := tail("a\nb\nc", 2); got != "b\nc" {
		t.Fatalf("tail mismatch: %q", got)
	}
	if got := tail("a\nb", 5); got != "a\nb" {
		t.Fatalf("short input should pass through: %q", got)
	}
}
