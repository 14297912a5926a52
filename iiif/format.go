package iiif

// Format is the output image format, given as a file extension.
type Format string

var formats = map[Format]string{
	"jpg":  "image/jpeg",
	"tif":  "image/tiff",
	"png":  "image/png",
	"gif":  "image/gif",
	"jp2":  "image/jp2",
	"pdf":  "application/pdf",
	"webp": "image/webp",
}

// IsValid checks the format against the known ones.
func (f Format) IsValid() bool {
	_, ok := formats[f]
	return ok
}

// CanonicalValue is the format itself.
func (f Format) CanonicalValue() string {
	return string(f)
}

// Validate returns a ValidationError for unknown formats.
func (f Format) Validate() error {
	return validate(f, KindFormat, string(f))
}

// MediaType returns the MIME type of the format, if known.
func (f Format) MediaType() string {
	return formats[f]
}
