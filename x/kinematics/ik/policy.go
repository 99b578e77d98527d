package ik

// Policy gathers the posture-shaping policy's empirical constants
// (spec.md §9: "treat it as a small, named policy struct with those
// constants surfaced"). DefaultPolicy reproduces the values spec.md §4.4
// names; callers needing a different posture feel can build their own.
type Policy struct {
	// RemExtendFactor scales the outer link's radius r to derive
	// rem_extend, the threshold separating the close-to-origin and
	// center-of-gravity branches from the graded/default branches.
	RemExtendFactor float64

	// GradedUpperFactor multiplies RemExtendFactor's rem_extend to get the
	// graded branch's upper bound (1.75 · rem_extend in spec.md §4.4).
	GradedUpperFactor float64

	// GradedSpanFactor scales r to get the graded branch's blend span
	// (0.75 r in spec.md §4.4).
	GradedSpanFactor float64

	// BlendTrim is the graded branch's empirical trim point: when the
	// raw blend fraction v exceeds 0.4, it is replaced by 0.38.
	// spec.md §9 flags this constant as undocumented in its source and a
	// candidate for revisiting.
	BlendTrim float64

	// BlendTrimThreshold is the v value above which BlendTrim is applied.
	BlendTrimThreshold float64

	// RemMinFactor and RemMaxFactor bound the default branch's clamp
	// range as factors of r: [-RemMinFactor·r, RemMaxFactor·r].
	RemMinFactor float64
	RemMaxFactor float64
}

// DefaultPolicy is the posture-shaping policy from spec.md §4.4.
var DefaultPolicy = Policy{
	RemExtendFactor:    0.5,
	GradedUpperFactor:  1.75,
	GradedSpanFactor:   0.75,
	BlendTrim:          0.38,
	BlendTrimThreshold: 0.4,
	RemMinFactor:       0.5,
	RemMaxFactor:       0.95,
}
