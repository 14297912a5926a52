package iiif

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// RegionMode tells how the region was expressed.
type RegionMode int

// region modes
const (
	RegionUnknown RegionMode = iota
	RegionFull
	RegionAbsolute
	RegionPercentage
)

func (m RegionMode) String() string {
	switch m {
	case RegionFull:
		return "full"
	case RegionAbsolute:
		return "absolute"
	case RegionPercentage:
		return "percentage"
	}
	return "unknown"
}

// full
// x,y,w,h (in pixels)
// pct:x,y,w,h (in percents)
var regionPattern = regexp.MustCompile(`^(pct:)?(\d+(?:\.\d+)?),(\d+(?:\.\d+)?),(\d+(?:\.\d+)?),(\d+(?:\.\d+)?)$`)

// Rect is an integer rectangle in pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Region is the rectangular portion of the image to be returned.
//
// Everything is computed by NewRegion, a Region is never modified afterwards.
type Region struct {
	value     string
	mode      RegionMode
	maxWidth  int
	maxHeight int

	// requested geometry, in pixels
	x, y, w, h float64
	// canonical geometry, whole numbers
	cx, cy, cw, ch float64
}

// NewRegion parses the region value against an image of maxWidth x maxHeight pixels.
//
// Zero bounds are accepted, only "full" is meaningful without them.
func NewRegion(value string, maxWidth, maxHeight int) *Region {
	r := &Region{
		value:     value,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
	}

	mw := float64(maxWidth)
	mh := float64(maxHeight)

	if value == "full" {
		r.mode = RegionFull
		r.w, r.h = mw, mh
	} else if m := regionPattern.FindStringSubmatch(value); m != nil {
		var fields [4]float64
		for i := range fields {
			// the pattern only lets digits through, an error is an overflow
			v, err := strconv.ParseFloat(m[i+2], 64)
			if err != nil || math.IsInf(v, 0) {
				debug("Region %#v is out of range", value)
				return r
			}
			fields[i] = v
		}

		if m[1] == "" {
			r.mode = RegionAbsolute
			r.x, r.y, r.w, r.h = fields[0], fields[1], fields[2], fields[3]
		} else {
			r.mode = RegionPercentage
			r.x = fields[0] * mw / 100.
			r.y = fields[1] * mh / 100.
			r.w = fields[2] * mw / 100.
			r.h = fields[3] * mh / 100.
		}
	} else {
		debug("Unrecognized region %#v", value)
		return r
	}

	// The start point is never moved, only the extent is clamped.
	r.cx = math.Floor(r.x)
	r.cy = math.Floor(r.y)
	r.cw = math.Max(0, math.Ceil(math.Min(r.w, mw-r.x)))
	r.ch = math.Max(0, math.Ceil(math.Min(r.h, mh-r.y)))

	debug("Region %#v: %v,%v,%v,%v ~> %v,%v,%v,%v", value, r.x, r.y, r.w, r.h, r.cx, r.cy, r.cw, r.ch)

	return r
}

// Value returns the region as it was requested.
func (r *Region) Value() string {
	return r.value
}

// Mode returns how the region was expressed.
func (r *Region) Mode() RegionMode {
	return r.mode
}

// Geometry returns the requested rectangle in pixels, before any clamping.
func (r *Region) Geometry() (x, y, w, h float64) {
	return r.x, r.y, r.w, r.h
}

// Rect returns the canonical rectangle.
func (r *Region) Rect() Rect {
	return Rect{int(r.cx), int(r.cy), int(r.cw), int(r.ch)}
}

// IsFull is true when the requested rectangle covers the whole image.
//
// A sub-pixel request rounded up to the image size isn't full.
func (r *Region) IsFull() bool {
	switch r.mode {
	case RegionFull:
		return true
	case RegionAbsolute, RegionPercentage:
		return r.x == 0 && r.y == 0 &&
			r.w >= float64(r.maxWidth) && r.h >= float64(r.maxHeight)
	}
	return false
}

// IsPct is true for a percentage region that isn't full.
func (r *Region) IsPct() bool {
	return r.mode == RegionPercentage && !r.IsFull()
}

// IsValid checks the grammar and that the start point lies inside the image.
func (r *Region) IsValid() bool {
	switch r.mode {
	case RegionFull:
		return true
	case RegionAbsolute, RegionPercentage:
		return r.x < float64(r.maxWidth) && r.y < float64(r.maxHeight)
	}
	return false
}

// CanonicalValue gives "full" or "x,y,w,h" in pixels.
//
// It is "full" as soon as the canonical rectangle covers the image.
func (r *Region) CanonicalValue() string {
	if r.mode == RegionUnknown {
		return r.value
	}
	if r.Rect() == (Rect{0, 0, r.maxWidth, r.maxHeight}) {
		return "full"
	}
	return fmt.Sprintf("%s,%s,%s,%s", formatNumber(r.cx), formatNumber(r.cy), formatNumber(r.cw), formatNumber(r.ch))
}

// Validate returns a ValidationError when the region is invalid.
func (r *Region) Validate() error {
	return validate(r, KindRegion, r.value)
}
