package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"dvd2mp4/internal/logging"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) error
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

// WithStreamedOutput streams ffmpeg's stderr to the terminal while it runs
// instead of capturing it silently.
func WithStreamedOutput(stream bool) Option {
	return func(c *Client) {
		c.stream = stream
	}
}

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary string
	exec   Executor
	logger *slog.Logger
	stream bool
}

// New constructs an ffmpeg client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	client := &Client{
		binary: binary,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.exec == nil {
		client.exec = commandExecutor{stream: client.stream}
	}
	return client, nil
}

// Transcode runs ffmpeg for the request, blocking until the process exits.
// A non-zero exit status is returned as an error carrying the tool's stderr.
func (c *Client) Transcode(ctx context.Context, req Request) error {
	if err := req.validate(); err != nil {
		return err
	}
	args := BuildArgs(req)
	c.logger.Debug("run ffmpeg", slog.String("command", c.binary+" "+strings.Join(args, " ")))
	if err := c.exec.Run(ctx, c.binary, args); err != nil {
		return fmt.Errorf("transcode %s: %w", req.Output, err)
	}
	return nil
}

type commandExecutor struct {
	stream bool
}

func (e commandExecutor) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...)

	var stderr bytes.Buffer
	if e.stream {
		cmd.Stderr = io.MultiWriter(&stderr, os.Stderr)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("%w: %s", err, tail(detail, 12))
		}
		return err
	}
	return nil
}

// tail keeps the last n lines of ffmpeg's stderr, where the failure reason
// lives.
func tail(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= n {
		return text
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
