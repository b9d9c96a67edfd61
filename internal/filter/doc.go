// Package filter provides the blur used for the glyph glow effect.
//
// The blur is a separable Gaussian over 8-bit alpha masks:
//   - horizontal pass into a pooled float32 buffer
//   - vertical pass back into the destination mask
//
// Kernels are cached per sigma so a steady glow setting builds its kernel
// once.
package filter
