package headerview

import (
	"fmt"
	"strings"
)

// Extrapolate selects how Interpolate behaves outside its input range.
type Extrapolate uint8

const (
	ExtrapolateClamp    Extrapolate = iota // hold the nearest output bound
	ExtrapolateExtend                      // continue the line past the range
	ExtrapolateIdentity                    // return the input unchanged
)

// String returns the configuration name of the policy.
func (e Extrapolate) String() string {
	switch e {
	case ExtrapolateClamp:
		return "clamp"
	case ExtrapolateExtend:
		return "extend"
	case ExtrapolateIdentity:
		return "identity"
	default:
		return fmt.Sprintf("Extrapolate(%d)", uint8(e))
	}
}

// ParseExtrapolate maps "clamp", "extend" or "identity" to a policy.
func ParseExtrapolate(s string) (Extrapolate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp", "":
		return ExtrapolateClamp, nil
	case "extend":
		return ExtrapolateExtend, nil
	case "identity":
		return ExtrapolateIdentity, nil
	}
	return ExtrapolateClamp, fmt.Errorf("unknown extrapolate policy %q", s)
}

// Interpolate maps x linearly from the input range in to the output range
// out. Outside in, the result follows ex. The input range may be descending.
// A degenerate input range yields out[0] at or below in[0] and out[1] above.
func Interpolate(x float64, in, out [2]float64, ex Extrapolate) float64 {
	lo, hi := in[0], in[1]
	if lo == hi {
		if x <= lo {
			return out[0]
		}
		return out[1]
	}

	outside := false
	if lo < hi {
		outside = x < lo || x > hi
	} else {
		outside = x > lo || x < hi
	}
	if outside {
		switch ex {
		case ExtrapolateIdentity:
			return x
		case ExtrapolateClamp:
			if (lo < hi) == (x < lo) {
				return out[0]
			}
			return out[1]
		}
	}

	t := (x - lo) / (hi - lo)
	return out[0] + t*(out[1]-out[0])
}

// headerScaleMax is the header scale reached at a full MaxHeight overscroll.
const headerScaleMax = 3

// OverlayOpacity returns the overlay opacity at the given scroll offset.
func (c Config) OverlayOpacity(offset float64) float64 {
	return Interpolate(offset,
		[2]float64{0, c.HeaderScrollDistance()},
		[2]float64{c.MinOverlayOpacity, c.MaxOverlayOpacity},
		ExtrapolateClamp)
}

// HeaderScale returns the uniform header scale at the given scroll offset.
// Pulling down past the top grows the header up to headerScaleMax.
func (c Config) HeaderScale(offset float64) float64 {
	return Interpolate(offset,
		[2]float64{-c.MaxHeight, 0},
		[2]float64{headerScaleMax, 1},
		ExtrapolateClamp)
}

// TouchableHeight returns the height of the touchable fixed foreground at
// the given scroll offset. It collapses from MaxHeight to MinHeight.
func (c Config) TouchableHeight(offset float64) float64 {
	return Interpolate(offset,
		[2]float64{0, c.HeaderScrollDistance()},
		[2]float64{c.MaxHeight, c.MinHeight},
		ExtrapolateClamp)
}

// ForegroundTranslate returns the vertical translation of the parallax
// foreground at the given scroll offset.
func (c Config) ForegroundTranslate(offset float64) float64 {
	return Interpolate(offset,
		[2]float64{0, c.MaxHeight * 2},
		[2]float64{0, -c.MaxHeight * 2 * c.ForegroundParallaxRatio},
		c.ForegroundExtrapolate)
}
