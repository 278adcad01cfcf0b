package easing

// Segment pairs an easing function with a relative duration weight for use
// with Chain.
type Segment struct {
	// Func is the easing applied within this segment.
	Func Func

	// Weight is the segment's share of the total duration relative to the
	// other segments. Non-positive weights are treated as zero.
	Weight float64
}

// Chain concatenates several easing segments into one curve. Segment weights
// are normalized against their sum, so Chain(Segment{f, 1}, Segment{g, 3})
// spends a quarter of the time in f and the rest in g. Each segment's output
// is scaled into its own span of [0, 1], so the combined curve is continuous
// at every boundary as long as each segment satisfies f(0)=0 and f(1)=1.
//
// Parameters:
//   - segments: the segments to chain, in playback order
//
// Returns:
//   - Func: the combined easing function (Linear when no usable segments)
func Chain(segments ...Segment) Func {
	total := 0.0
	for _, s := range segments {
		if s.Func != nil && s.Weight > 0 {
			total += s.Weight
		}
	}
	if total == 0 {
		return Linear
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		start := 0.0
		for _, s := range segments {
			if s.Func == nil || s.Weight <= 0 {
				continue
			}
			span := s.Weight / total
			if t < start+span || start+span >= 1 {
				local := (t - start) / span
				return start + s.Func(local)*span
			}
			start += span
		}
		return 1
	}
}

// Reverse flips an easing function in both time and value: the returned
// function is 1 − f(1 − t). Reversing an ease-in yields the matching
// ease-out.
//
// Parameters:
//   - f: the easing function to reverse
//
// Returns:
//   - Func: the reversed easing function
func Reverse(f Func) Func {
	return func(t float64) float64 {
		return 1 - f(1-t)
	}
}

// Mirror turns an ease-in into an ease-in-out by playing f forward over the
// first half and reversed over the second half.
//
// Parameters:
//   - f: the ease-in function to mirror
//
// Returns:
//   - Func: the mirrored ease-in-out function
func Mirror(f Func) Func {
	return func(t float64) float64 {
		if t < 0.5 {
			return f(2*t) / 2
		}
		return 1 - f(2-2*t)/2
	}
}
