package iiif

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// n angle clockwise in degrees
// !n angle clockwise in degrees with a flip (beforehand)
var rotationPattern = regexp.MustCompile(`^!?(\d+(?:\.\d+)?)$`)

// Rotation is the mirroring and the clockwise angle applied to the region.
type Rotation struct {
	value   string
	mirror  bool
	angle   float64
	matched bool
}

// NewRotation parses the rotation value.
func NewRotation(value string) *Rotation {
	r := &Rotation{
		value:  value,
		mirror: strings.HasPrefix(value, "!"),
	}

	if m := rotationPattern.FindStringSubmatch(value); m != nil {
		// the pattern only lets digits through, an error is an overflow
		angle, err := strconv.ParseFloat(m[1], 64)
		if err != nil || math.IsInf(angle, 0) {
			debug("Rotation %#v is out of range", value)
			angle = math.MaxFloat64
		}
		r.angle = angle
		r.matched = true
	} else {
		debug("Unrecognized rotation %#v", value)
	}

	return r
}

// Value returns the rotation as it was requested.
func (r *Rotation) Value() string {
	return r.value
}

// Mirror tells whether the image is flipped horizontally before rotating.
func (r *Rotation) Mirror() bool {
	return r.mirror
}

// Angle returns the angle in degrees, ok is false when the value didn't parse.
// An angle too large for a float64 is reported as math.MaxFloat64.
// Mirroring doesn't change the sign.
func (r *Rotation) Angle() (angle float64, ok bool) {
	return r.angle, r.matched
}

// InRange is true for angles between 0 and 360 inclusive.
func (r *Rotation) InRange() bool {
	return r.matched && r.angle >= 0 && r.angle <= 360
}

// IsValid checks the grammar and the range.
func (r *Rotation) IsValid() bool {
	return r.matched && r.InRange()
}

// CanonicalValue gives the shortest form of the angle, prefixed by "!" when mirrored.
func (r *Rotation) CanonicalValue() string {
	if !r.matched {
		return r.value
	}
	if r.mirror {
		return "!" + formatNumber(r.angle)
	}
	return formatNumber(r.angle)
}

// Validate returns a ValidationError when the rotation is invalid.
func (r *Rotation) Validate() error {
	return validate(r, KindRotation, r.value)
}
