package ffmpeg

import (
	"errors"
	"fmt"
	"strings"
)

// Request describes one transcode invocation.
type Request struct {
	Input        string
	Output       string
	AudioStream  int
	Aspect       string
	VideoCodec   string
	AudioCodec   string
	AudioBitrate string
	FastStart    bool
}

func (r Request) validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return errors.New("transcode request: input required")
	}
	if strings.TrimSpace(r.Output) == "" {
		return errors.New("transcode request: output required")
	}
	if r.AudioStream < 0 {
		return fmt.Errorf("transcode request: invalid audio stream %d", r.AudioStream)
	}
	return nil
}

// BuildArgs constructs the ffmpeg argument list for the request. The output
// is overwritten when present.
func BuildArgs(req Request) []string {
	args := make([]string, 0, 20)
	args = append(args, "-y", "-i", req.Input)

	// Explicit stream mappings: first video stream plus the selected audio
	// stream by container index.
	args = append(args,
		"-map", "0:v:0",
		"-map", fmt.Sprintf("0:%d", req.AudioStream),
	)

	args = append(args,
		"-c:v", req.VideoCodec,
		"-c:a", req.AudioCodec,
		"-b:a", req.AudioBitrate,
	)

	if req.FastStart {
		args = append(args, "-movflags", "+faststart")
	}
	if req.Aspect != "" {
		args = append(args, "-aspect", req.Aspect)
	}

	return append(args, req.Output)
}
