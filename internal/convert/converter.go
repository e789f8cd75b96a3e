package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gofrs/flock"

	"dvd2mp4/internal/config"
	"dvd2mp4/internal/deps"
	"dvd2mp4/internal/logging"
	"dvd2mp4/internal/media/ffmpeg"
	"dvd2mp4/internal/media/ffprobe"
	"dvd2mp4/internal/vob"
)

var aspectPattern = regexp.MustCompile(`^[0-9]+:[0-9]+$`)

// Prober enumerates audio streams and detects display aspect ratio.
type Prober interface {
	AudioStreamIndices(ctx context.Context, path string) ([]int, error)
	DisplayAspectRatio(ctx context.Context, path string) (string, error)
}

// Transcoder maps the selected streams into an MP4 output file.
type Transcoder interface {
	Transcode(ctx context.Context, req ffmpeg.Request) error
}

// Options describes one conversion run.
type Options struct {
	InputDir string
	Output   string
	Split    bool
	Aspect   string
	Verbose  bool
}

// Option overrides Converter collaborators, primarily for tests.
type Option func(*Converter)

// WithProber injects a custom prober.
func WithProber(p Prober) Option {
	return func(c *Converter) {
		if p != nil {
			c.prober = p
		}
	}
}

// WithTranscoder injects a custom transcoder.
func WithTranscoder(t Transcoder) Option {
	return func(c *Converter) {
		if t != nil {
			c.transcoder = t
		}
	}
}

// WithoutPreflight disables the PATH lookup for external tools. Tests use
// it together with injected collaborators.
func WithoutPreflight() Option {
	return func(c *Converter) {
		c.skipPreflight = true
	}
}

// Converter drives conversion runs.
type Converter struct {
	cfg           *config.Config
	logger        *slog.Logger
	opts          Options
	prober        Prober
	transcoder    Transcoder
	skipPreflight bool
}

// New wires a Converter from configuration. Collaborators default to real
// ffprobe/ffmpeg clients honouring the configured binaries.
func New(cfg *config.Config, logger *slog.Logger, opts Options, extra ...Option) (*Converter, error) {
	if cfg == nil {
		return nil, errors.New("converter: config required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	converter := &Converter{cfg: cfg, logger: logger, opts: opts}
	for _, opt := range extra {
		opt(converter)
	}
	if converter.prober == nil {
		prober, err := ffprobe.New(cfg.Tools.FFprobe, ffprobe.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		converter.prober = prober
	}
	if converter.transcoder == nil {
		transcoder, err := ffmpeg.New(
			cfg.Tools.FFmpeg,
			ffmpeg.WithLogger(logger),
			ffmpeg.WithStreamedOutput(opts.Verbose),
		)
		if err != nil {
			return nil, err
		}
		converter.transcoder = transcoder
	}
	return converter, nil
}

// Run executes the conversion: collect, then one job after another. It
// returns the first fatal error; job-level skips are logged and absorbed.
func (c *Converter) Run(ctx context.Context) error {
	if aspect := c.opts.Aspect; aspect != "" && !aspectPattern.MatchString(aspect) {
		return Wrap(ErrInput, "options", fmt.Sprintf("aspect ratio %q must use W:H form", aspect), nil)
	}

	if !c.skipPreflight {
		if err := deps.Verify(deps.Required(c.cfg.Tools.FFmpeg, c.cfg.Tools.FFprobe)); err != nil {
			return Wrap(ErrExternalTool, "preflight", "", err)
		}
	}

	inputDir, err := filepath.Abs(c.opts.InputDir)
	if err != nil {
		return Wrap(ErrInput, "resolve input", "", err)
	}

	files, err := vob.Scan(inputDir)
	if err != nil {
		return Wrap(ErrInput, "collect", "", err)
	}
	c.logger.Info("collected video-object files",
		slog.String("input", inputDir),
		slog.Int("files", len(files)),
	)

	if err := os.MkdirAll(c.tempRoot(), 0o755); err != nil {
		return fmt.Errorf("ensure temp directory: %w", err)
	}

	lock := flock.New(filepath.Join(c.tempRoot(), "dvd2mp4.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return errors.New("another conversion run is already in progress")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	jobs, err := c.plan(files, inputDir)
	if err != nil {
		return err
	}

	converted := 0
	for _, job := range jobs {
		if err := c.runJob(ctx, job); err != nil {
			if c.opts.Split && errors.Is(err, ErrNoAudioStream) {
				c.logger.Warn("skipping title set without audio",
					slog.String("title_set", job.TitleSet),
					slog.String("job_id", job.ID),
				)
				continue
			}
			return err
		}
		converted++
	}

	c.logger.Info("conversion run finished",
		slog.Int("jobs", len(jobs)),
		slog.Int("converted", converted),
	)
	return nil
}

func (c *Converter) plan(files []vob.File, inputDir string) ([]Job, error) {
	if c.opts.Split {
		return planSplit(files)
	}
	job, err := planSingle(files, inputDir, c.opts.Output)
	if err != nil {
		return nil, err
	}
	return []Job{job}, nil
}

func (c *Converter) runJob(ctx context.Context, job Job) error {
	logger := c.logger.With(slog.String("job_id", job.ID), slog.String("output", job.Output))
	if job.TitleSet != "" {
		logger = logger.With(slog.String("title_set", job.TitleSet))
	}

	workDir, err := os.MkdirTemp(c.tempRoot(), "dvd2mp4-")
	if err != nil {
		return fmt.Errorf("create scratch directory: %w", err)
	}
	defer func() {
		if removeErr := os.RemoveAll(workDir); removeErr != nil {
			logger.Warn("remove scratch directory", slog.Any("error", removeErr))
		}
	}()

	concatPath := filepath.Join(workDir, "concat.VOB")
	for _, file := range job.Files {
		logger.Debug("appending fragment", slog.String("path", file.Path), slog.Int64("size", file.Size))
	}
	written, err := vob.Concatenate(ctx, job.Files, concatPath)
	if err != nil {
		return fmt.Errorf("concatenate fragments: %w", err)
	}
	logger.Info("concatenated fragments",
		slog.Int("files", len(job.Files)),
		slog.Int64("bytes", written),
	)

	indices, err := c.prober.AudioStreamIndices(ctx, concatPath)
	if err != nil {
		return Wrap(ErrSubprocess, "probe", "", err)
	}
	if len(indices) == 0 {
		return Wrap(ErrNoAudioStream, "probe", concatPath, nil)
	}
	audioStream := indices[0]
	if len(indices) > 1 {
		logger.Warn("multiple audio streams, using first",
			slog.Int("selected", audioStream),
			slog.Int("available", len(indices)),
		)
	} else {
		logger.Debug("selected audio stream", slog.Int("index", audioStream))
	}

	aspect := c.opts.Aspect
	if aspect == "" {
		detected, err := c.prober.DisplayAspectRatio(ctx, concatPath)
		if err != nil {
			// Aspect detection is best-effort; ffmpeg falls back to the
			// stream's own metadata.
			logger.Warn("aspect ratio detection failed", slog.Any("error", err))
		} else if detected != "" {
			aspect = detected
			logger.Debug("detected aspect ratio", slog.String("aspect", aspect))
		}
	} else {
		logger.Debug("using explicit aspect ratio", slog.String("aspect", aspect))
	}

	req := ffmpeg.Request{
		Input:        concatPath,
		Output:       job.Output,
		AudioStream:  audioStream,
		Aspect:       aspect,
		VideoCodec:   c.cfg.Encode.VideoCodec,
		AudioCodec:   c.cfg.Encode.AudioCodec,
		AudioBitrate: c.cfg.Encode.AudioBitrate,
		FastStart:    c.cfg.Encode.FastStart,
	}
	if err := c.transcoder.Transcode(ctx, req); err != nil {
		return Wrap(ErrSubprocess, "transcode", "", err)
	}

	logger.Info("created output file")
	return nil
}

func (c *Converter) tempRoot() string {
	if c.cfg != nil && c.cfg.Paths.TempDir != "" {
		return c.cfg.Paths.TempDir
	}
	return os.TempDir()
}
