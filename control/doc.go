// Package control drives an asciicam pipeline: it owns the live settings,
// pulls frames from a source on a schedule and hands each grid to a
// renderer.
//
// # Settings
//
// Settings are stored behind a lock and read once per frame as a value
// snapshot, so Update from another goroutine never produces a torn frame.
// Every stored snapshot is passed through Clamp.
//
// # Freeze
//
// While frozen the controller computes nothing and the renderer keeps its
// last output. Reset restores the defaults and unfreezes.
//
// # Dedupe
//
// WithDedupe compares a perceptual hash of each frame with the last
// rendered one. A frame within the configured Hamming distance, rendered
// with the same settings and area, is skipped.
package control
