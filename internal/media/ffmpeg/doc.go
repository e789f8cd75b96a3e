// Package ffmpeg builds and runs the transcode invocation.
//
// Argument construction is separated from execution so the exact command
// line can be tested without an ffmpeg binary. The encode parameters are
// fixed by configuration: one explicitly mapped video stream, one audio
// stream, and a streaming-friendly MP4 layout.
package ffmpeg
