// Package vob discovers DVD video-object fragments and assembles them.
//
// A DVD's VIDEO_TS directory stores each title set as a run of VTS_??_*.VOB
// files: sequential byte-range fragments of one MPEG program stream. The
// package scans a directory for those fragments, groups them by title-set
// prefix, and concatenates an ordered run back into a single stream that
// ffmpeg can consume.
//
// Concatenation is a pure byte copy. Fragment order matters: joining files
// out of sequence corrupts the program stream, so callers must preserve the
// ordering Scan returns.
package vob
