// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

// Phase is a quantized horizontal subpixel offset.
// Four phases balance positioning accuracy against cache size.
type Phase uint8

const (
	// Phase0 is a glyph on a whole pixel boundary.
	Phase0 Phase = iota

	// PhaseQuarter is a glyph shifted right by 0.25 pixel.
	PhaseQuarter

	// PhaseHalf is a glyph shifted right by 0.5 pixel.
	PhaseHalf

	// PhaseThreeQuarters is a glyph shifted right by 0.75 pixel.
	PhaseThreeQuarters
)

// NumPhases is the number of distinct phases.
const NumPhases = 4

// QuantizePhase maps a fractional pixel offset to its phase bucket using
// half-open intervals: [0,0.25) is Phase0, [0.25,0.5) PhaseQuarter,
// [0.5,0.75) PhaseHalf and [0.75,1) PhaseThreeQuarters. Values below zero,
// including NaN, select Phase0; values of 1 or more select PhaseThreeQuarters.
func QuantizePhase(frac float64) Phase {
	switch {
	case !(frac >= 0.25):
		return Phase0
	case frac < 0.5:
		return PhaseQuarter
	case frac < 0.75:
		return PhaseHalf
	default:
		return PhaseThreeQuarters
	}
}

// Offset returns the pixel offset the phase stands for.
func (p Phase) Offset() float64 {
	return float64(p) * 0.25
}

// String returns the phase offset as text.
func (p Phase) String() string {
	switch p {
	case Phase0:
		return "0"
	case PhaseQuarter:
		return "0.25"
	case PhaseHalf:
		return "0.5"
	case PhaseThreeQuarters:
		return "0.75"
	default:
		return "invalid"
	}
}
