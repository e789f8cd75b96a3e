// Package convert orchestrates the conversion pipeline.
//
// A run turns a directory of VTS_??_*.VOB fragments into MP4 output in four
// steps per job: collect and order the fragments, concatenate them into a
// scratch file, probe the result for audio streams and aspect ratio, and
// hand the stream to ffmpeg. Jobs execute strictly one after another.
//
// Failure policy: missing tools and input problems abort before any job
// starts; a job without audio is skipped in split mode but fatal in single
// mode; a failing ffmpeg invocation aborts the whole run, because a broken
// transcode usually means a systemic problem rather than one bad title set.
package convert
