package iiif

import (
	"fmt"
	"strings"
)

var imagePathError = "IIIF 2.1 image request {identifier}/{region}/{size}/{rotation}/{quality}.{format} was expected: %#v"

// ImageResponse holds the parameters of one image request.
type ImageResponse struct {
	ID       string
	Region   *Region
	Size     *Size
	Rotation *Rotation
	Quality  Quality
	Format   Format

	width  int
	height int
}

// Descriptor is the resolved form of an ImageResponse.
type Descriptor struct {
	ID        string  `json:"id"`
	Canonical string  `json:"canonical"`
	Valid     bool    `json:"valid"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Region    Rect    `json:"region"`
	Full      bool    `json:"full"`
	OutWidth  int     `json:"outputWidth"`
	OutHeight int     `json:"outputHeight"`
	Rotation  float64 `json:"rotation"`
	Mirror    bool    `json:"mirror"`
	Quality   string  `json:"quality"`
	Format    string  `json:"format"`
}

// NewImageResponse builds the request for an image of width x height pixels.
//
// The size is resolved against the canonical region.
func NewImageResponse(id, region, size, rotation, quality, format string, width, height int) *ImageResponse {
	reg := NewRegion(region, width, height)

	rect := reg.Rect()

	return &ImageResponse{
		ID:       id,
		Region:   reg,
		Size:     NewSize(size, rect.Width, rect.Height),
		Rotation: NewRotation(rotation),
		Quality:  Quality(quality),
		Format:   Format(format),
		width:    width,
		height:   height,
	}
}

// ParseImagePath reads an image request path, the identifier may contain slashes.
func ParseImagePath(path string, width, height int) (*ImageResponse, error) {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) < 5 {
		return nil, fmt.Errorf(imagePathError, path)
	}

	n := len(parts)
	last := parts[n-1]
	dot := strings.LastIndex(last, ".")
	id := strings.Join(parts[:n-4], "/")
	if dot < 0 || id == "" {
		return nil, fmt.Errorf(imagePathError, path)
	}

	return NewImageResponse(id, parts[n-4], parts[n-3], parts[n-2], last[:dot], last[dot+1:], width, height), nil
}

// Parameters lists region, size, rotation, quality and format, in that order.
func (ir *ImageResponse) Parameters() []Parameter {
	return []Parameter{ir.Region, ir.Size, ir.Rotation, ir.Quality, ir.Format}
}

// IsValid is true when every parameter is valid.
func (ir *ImageResponse) IsValid() bool {
	for _, p := range ir.Parameters() {
		if !p.IsValid() {
			return false
		}
	}
	return true
}

// Validate returns the error of the first invalid parameter.
func (ir *ImageResponse) Validate() error {
	for _, p := range ir.Parameters() {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CanonicalPath is the request path built from the canonical values.
func (ir *ImageResponse) CanonicalPath() string {
	return fmt.Sprintf("%s/%s/%s/%s/%s.%s",
		ir.ID,
		ir.Region.CanonicalValue(),
		ir.Size.CanonicalValue(),
		ir.Rotation.CanonicalValue(),
		ir.Quality.CanonicalValue(),
		ir.Format.CanonicalValue(),
	)
}

// Descriptor resolves the request.
func (ir *ImageResponse) Descriptor() Descriptor {
	angle, _ := ir.Rotation.Angle()
	return Descriptor{
		ID:        ir.ID,
		Canonical: ir.CanonicalPath(),
		Valid:     ir.IsValid(),
		Width:     ir.width,
		Height:    ir.height,
		Region:    ir.Region.Rect(),
		Full:      ir.Region.IsFull(),
		OutWidth:  ir.Size.Width(),
		OutHeight: ir.Size.Height(),
		Rotation:  angle,
		Mirror:    ir.Rotation.Mirror(),
		Quality:   string(ir.Quality),
		Format:    string(ir.Format),
	}
}
