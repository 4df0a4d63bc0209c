package inkpad

import "github.com/esimov/inkpad/utils"

// velocitySlope is the fixed linear factor mapping the filtered travel
// speed (pixels/ms) to a stroke width reduction. Faster motion narrows
// the stroke.
const velocitySlope = 1.5

// HasVariablePressure reports whether at least one sample carries a
// pressure value strictly between zero and one. Devices reporting a
// constant 0.0 or 1.0 (typically mice and binary styluses) provide no
// usable pressure resolution and are treated as pressure-less.
func HasVariablePressure(points []Point) bool {
	for _, pt := range points {
		if pt.Pressure > 0 && pt.Pressure < 1 {
			return true
		}
	}
	return false
}

// Widths computes a per point stroke width for the provided samples,
// one entry per input point, each clamped to [minWidth, maxWidth].
// The pressure driven mode is used only when requested and the samples
// actually carry variable pressure; otherwise the width is derived
// from an exponentially filtered velocity estimate. The mode decision
// is made on every call since pressure presence may vary per stroke.
func Widths(points []Point, minWidth, maxWidth, velocityFilterWeight float64, usePressure bool) []float64 {
	if usePressure && HasVariablePressure(points) {
		return PressureWidths(points, minWidth, maxWidth)
	}
	return VelocityWidths(points, minWidth, maxWidth, velocityFilterWeight)
}

// PressureWidths maps the reported pen pressure linearly onto the
// [minWidth, maxWidth] interval.
func PressureWidths(points []Point, minWidth, maxWidth float64) []float64 {
	widths := make([]float64, len(points))
	for i, pt := range points {
		w := minWidth + (maxWidth-minWidth)*pt.Pressure
		widths[i] = utils.Clamp(w, minWidth, maxWidth)
	}
	return widths
}

// VelocityWidths derives the stroke width from the travel speed of the
// pen: the faster the motion the narrower the stroke. The raw velocity
// is smoothed with an exponential filter weighted by filterWeight to
// avoid abrupt width jumps on noisy input. The first sample always
// starts from velocity zero, i.e. from the full maximum width.
func VelocityWidths(points []Point, minWidth, maxWidth, filterWeight float64) []float64 {
	widths := make([]float64, len(points))
	if len(points) == 0 {
		return widths
	}

	velocity := 0.0
	widths[0] = utils.Clamp(maxWidth, minWidth, maxWidth)

	for i := 1; i < len(points); i++ {
		instant := points[i].VelocityFrom(points[i-1])
		if instant < 0 {
			// Zero elapsed time between samples; reuse the filtered
			// velocity instead of producing a division artifact.
			instant = velocity
		}
		velocity = instant*(1-filterWeight) + velocity*filterWeight
		widths[i] = utils.Clamp(maxWidth-velocity*velocitySlope, minWidth, maxWidth)
	}
	return widths
}
