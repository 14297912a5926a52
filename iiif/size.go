package iiif

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// SizeMode tells how the size was expressed.
type SizeMode int

// size modes
const (
	SizeUnknown SizeMode = iota
	SizeFull
	SizeMax
	SizeWidth
	SizeHeight
	SizePercent
	SizeExact
	SizeBestFit
)

// max, full
// w,h (deform)
// !w,h (best fit within size)
// w, (force width)
// ,h (force height)
// pct:n (scale the image of the extracted region in %)
var sizePattern = regexp.MustCompile(`^(?:(full|max)|pct:(\d+(?:\.\d+)?)|(!)?(\d*),(\d*))$`)

// Size is the dimensions of the scaled region.
type Size struct {
	value  string
	mode   SizeMode
	pct    float64
	width  int
	height int
	// region extent
	regionWidth  int
	regionHeight int
}

// NewSize parses the size value for a region of width x height pixels.
func NewSize(value string, width, height int) *Size {
	s := &Size{
		value:        value,
		regionWidth:  width,
		regionHeight: height,
	}

	m := sizePattern.FindStringSubmatch(value)
	if m == nil {
		debug("Unrecognized size %#v", value)
		return s
	}

	w, errW := strconv.Atoi(m[4])
	h, errH := strconv.Atoi(m[5])

	switch {
	case m[1] == "full":
		s.mode = SizeFull
		s.width, s.height = width, height
	case m[1] == "max":
		s.mode = SizeMax
		s.width, s.height = width, height
	case m[2] != "":
		s.mode = SizePercent
		s.pct, _ = strconv.ParseFloat(m[2], 64)
		s.width = round(float64(width) * s.pct / 100.)
		s.height = round(float64(height) * s.pct / 100.)
	case errW == nil && errH == nil && m[3] == "!":
		s.mode = SizeBestFit
		ratio := math.Min(scale(w, width), scale(h, height))
		s.width = round(float64(width) * ratio)
		s.height = round(float64(height) * ratio)
	case errW == nil && errH == nil:
		s.mode = SizeExact
		s.width, s.height = w, h
	case m[3] == "!":
		debug("Best fit needs both sides %#v", value)
	case errW == nil && m[5] == "":
		s.mode = SizeWidth
		s.width = w
		s.height = round(float64(w) * aspect(height, width))
	case errH == nil && m[4] == "":
		s.mode = SizeHeight
		s.width = round(float64(h) * aspect(width, height))
		s.height = h
	default:
		debug("Size %#v is out of bounds", value)
	}

	debug("Size %#v in %vx%v ~> %vx%v", value, width, height, s.width, s.height)

	return s
}

func round(v float64) int {
	return int(math.Round(v))
}

// scale returns how much side must be scaled to reach target.
func scale(target, side int) float64 {
	if side == 0 {
		return 0
	}
	return float64(target) / float64(side)
}

func aspect(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// Value returns the size as it was requested.
func (s *Size) Value() string {
	return s.value
}

// Mode returns how the size was expressed.
func (s *Size) Mode() SizeMode {
	return s.mode
}

// Width returns the resolved output width.
func (s *Size) Width() int {
	return s.width
}

// Height returns the resolved output height.
func (s *Size) Height() int {
	return s.height
}

// IsFull is true when the output has the same dimensions as the region.
func (s *Size) IsFull() bool {
	return s.mode != SizeUnknown && s.width == s.regionWidth && s.height == s.regionHeight
}

// IsValid checks the grammar and that the output isn't empty.
func (s *Size) IsValid() bool {
	if s.mode == SizeUnknown {
		return false
	}
	if s.mode == SizePercent && s.pct <= 0 {
		return false
	}
	return s.width > 0 && s.height > 0
}

// CanonicalValue gives "full", "w," or "w,h" when the aspect ratio isn't kept.
func (s *Size) CanonicalValue() string {
	if s.mode == SizeUnknown {
		return s.value
	}
	if s.IsFull() {
		return "full"
	}
	if s.mode == SizeExact && round(float64(s.width)*aspect(s.regionHeight, s.regionWidth)) != s.height {
		return fmt.Sprintf("%d,%d", s.width, s.height)
	}
	return fmt.Sprintf("%d,", s.width)
}

// Validate returns a ValidationError when the size is invalid.
func (s *Size) Validate() error {
	return validate(s, KindSize, s.value)
}
