package iiif

// Quality is whether the image is delivered in color, grayscale or black and white.
type Quality string

// color
// gray
// bitonal
// default
var qualities = map[Quality]bool{
	"color":   true,
	"gray":    true,
	"bitonal": true,
	"default": true,
}

// IsValid checks the quality against the known ones.
func (q Quality) IsValid() bool {
	return qualities[q]
}

// CanonicalValue is the quality itself.
func (q Quality) CanonicalValue() string {
	return string(q)
}

// Validate returns a ValidationError for unknown qualities.
func (q Quality) Validate() error {
	return validate(q, KindQuality, string(q))
}
