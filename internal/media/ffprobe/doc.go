// Package ffprobe wraps the ffprobe CLI for stream inspection.
//
// The client issues field-extraction queries that return newline-delimited
// plain text (one value per line) and parses them into typed results. It is
// deliberately narrow: audio stream indices and the display aspect ratio of
// the first video stream are the only fields the converter needs.
package ffprobe
