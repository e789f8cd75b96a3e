package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootRequiresInput(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error without --input")
	}
}

func TestScanCommandListsGroups(t *testing.T) {
	dir := t.TempDir()
	for name, size := range map[string]int{
		"VTS_01_1.VOB": 10,
		"VTS_01_2.VOB": 20,
		"VTS_02_1.VOB": 30,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	var out bytes.Buffer
	cmd := newScanCommand()
	cmd.SetArgs([]string{"--input", dir})
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	text := out.String()
	for _, want := range []string{"VTS_01", "VTS_02", "3 file(s)"} {
		if !strings.Contains(text, want) {
			t.Fatalf("scan output missing %q:\n%s", want, text)
		}
	}
}

func TestScanCommandMissingDirectory(t *testing.T) {
	cmd := newScanCommand()
	cmd.SetArgs([]string{"--input", filepath.Join(t.TempDir(), "absent")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDepsCommandReportsMissingTool(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	body := "[tools]\nffmpeg = \"definitely-not-a-real-ffmpeg\"\nffprobe = \"definitely-not-a-real-ffprobe\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	configFlag := configPath
	var out bytes.Buffer
	cmd := newDepsCommand(&configFlag)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error when tools are missing")
	}
	if !strings.Contains(out.String(), "missing") {
		t.Fatalf("deps output should flag missing tools:\n%s", out.String())
	}
}

func TestConfigInitAndShow(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	configFlag := configPath

	var out bytes.Buffer
	cmd := newConfigCommand(&configFlag)
	cmd.SetArgs([]string{"init"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	out.Reset()
	cmd = newConfigCommand(&configFlag)
	cmd.SetArgs([]string{"show"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "source: file") {
		t.Fatalf("show should use the written file:\n%s", text)
	}
	if !strings.Contains(text, "libx264") {
		t.Fatalf("show should list encode settings:\n%s", text)
	}
}
