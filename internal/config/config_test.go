package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, exists, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("no config file should have been found")
	}
	if cfg.Tools.FFmpeg != "ffmpeg" || cfg.Tools.FFprobe != "ffprobe" {
		t.Fatalf("unexpected tool defaults: %#v", cfg.Tools)
	}
	if cfg.Encode.VideoCodec != "libx264" || cfg.Encode.AudioCodec != "aac" {
		t.Fatalf("unexpected codec defaults: %#v", cfg.Encode)
	}
	if cfg.Encode.AudioBitrate != "192k" || !cfg.Encode.FastStart {
		t.Fatalf("unexpected encode defaults: %#v", cfg.Encode)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %#v", cfg.Logging)
	}
}

func TestLoadHonorsFileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[tools]
ffprobe = "/opt/ffmpeg/bin/ffprobe"

[encode]
audio_bitrate = "256k"

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("config file should have been read")
	}
	if cfg.Tools.FFprobe != "/opt/ffmpeg/bin/ffprobe" {
		t.Fatalf("ffprobe override lost: %q", cfg.Tools.FFprobe)
	}
	if cfg.Tools.FFmpeg != "ffmpeg" {
		t.Fatalf("unset tool should keep default: %q", cfg.Tools.FFmpeg)
	}
	if cfg.Encode.AudioBitrate != "256k" {
		t.Fatalf("bitrate override lost: %q", cfg.Encode.AudioBitrate)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level should be canonicalized: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bitrate", "[encode]\naudio_bitrate = \"fast\"\n", "audio_bitrate"},
		{"format", "[logging]\nformat = \"yaml\"\n", "logging.format"},
		{"level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %s error, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("explicit missing config must error")
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	cfg, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config must load: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	if cfg.Encode.AudioBitrate != "192k" {
		t.Fatalf("sample should carry defaults, got %q", cfg.Encode.AudioBitrate)
	}

	if err := WriteSample(path); err == nil {
		t.Fatal("overwriting an existing config must error")
	}
}
