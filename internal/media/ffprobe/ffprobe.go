package ffprobe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"dvd2mp4/internal/logging"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Output(ctx context.Context, binary string, args []string) (string, error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger attaches a logger for command echoes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client wraps ffprobe CLI interactions.
type Client struct {
	binary string
	exec   Executor
	logger *slog.Logger
}

// New constructs an ffprobe client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffprobe binary required")
	}
	client := &Client{
		binary: binary,
		exec:   commandExecutor{},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// AudioStreamIndices returns the container stream index of every audio
// stream in path, in ffprobe's reported order. An empty slice means the
// container carries no audio.
func (c *Client) AudioStreamIndices(ctx context.Context, path string) ([]int, error) {
	args := []string{
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=index",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
	output, err := c.run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("probe audio streams: %w", err)
	}

	indices := make([]int, 0, 4)
	for _, line := range splitLines(output) {
		index, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("probe audio streams: unexpected output line %q", line)
		}
		indices = append(indices, index)
	}
	return indices, nil
}

// DisplayAspectRatio returns the display aspect ratio of the first video
// stream, or the empty string if ffprobe reports none.
func (c *Client) DisplayAspectRatio(ctx context.Context, path string) (string, error) {
	args := []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=display_aspect_ratio",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
	output, err := c.run(ctx, args)
	if err != nil {
		return "", fmt.Errorf("probe aspect ratio: %w", err)
	}

	lines := splitLines(output)
	if len(lines) == 0 {
		return "", nil
	}
	ratio := lines[0]
	// ffprobe reports N/A when the stream has no DAR metadata.
	if ratio == "N/A" || ratio == "0:1" {
		return "", nil
	}
	return ratio, nil
}

func (c *Client) run(ctx context.Context, args []string) (string, error) {
	c.logger.Debug("run ffprobe", slog.String("command", c.binary+" "+strings.Join(args, " ")))
	return c.exec.Output(ctx, c.binary, args)
}

func splitLines(output string) []string {
	lines := make([]string, 0, 4)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

type commandExecutor struct{}

func (commandExecutor) Output(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("%w: %s", err, detail)
		}
		return "", err
	}
	return stdout.String(), nil
}
