package iiif

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register the GIF header reader
	_ "image/jpeg" // register the JPEG header reader
	_ "image/png"  // register the PNG header reader
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/golang/groupcache"
	structpb "github.com/golang/protobuf/ptypes/struct"
	_ "golang.org/x/image/bmp"  // register the BMP header reader
	_ "golang.org/x/image/tiff" // register the TIFF header reader
	_ "golang.org/x/image/webp" // register the WebP header reader
)

// error messages
var openError = "cannot open this file: %#v"
var formatReadMissing = "cannot read this format %#v as of yet"

func scrubIdentifier(identifier string) (string, error) {
	clean, err := url.QueryUnescape(identifier)
	if err != nil {
		debug("Filename is frob %#v", identifier)
		return "", HTTPError{http.StatusNotFound, fmt.Sprintf(openError, identifier)}
	}
	return strings.TrimPrefix(path.Clean("/"+clean), "/"), nil
}

// openExtent finds the size of the image, from the catalog, the cache or its header.
func openExtent(ctx context.Context, identifier string, config *Config, catalog Catalog, cache *groupcache.Group) (*Extent, error) {
	if extent, ok := catalog[identifier]; ok {
		debug("From catalog %v", identifier)
		return &extent, nil
	}

	if cache != nil {
		var s structpb.Struct
		if err := cache.Get(ctx, identifier, groupcache.ProtoSink(&s)); err != nil {
			return nil, err
		}
		debug("From cache %v", identifier)
		return extentFromStruct(&s), nil
	}

	root := ""
	if config != nil {
		root = config.Images
	}
	return probeExtent(filepath.Join(root, identifier))
}

// probeExtent reads the image header only, pixels are never decoded.
func probeExtent(filename string) (*Extent, error) {
	f, err := os.Open(filename)
	if err != nil {
		debug("Cannot open file %#v: %#v", filename, err.Error())
		return nil, HTTPError{http.StatusNotFound, fmt.Sprintf(openError, filepath.Base(filename))}
	}
	defer f.Close()

	if stat, err := f.Stat(); err != nil || stat.IsDir() {
		return nil, HTTPError{http.StatusNotFound, fmt.Sprintf(openError, filepath.Base(filename))}
	}

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		message := fmt.Sprintf(formatReadMissing, filepath.Ext(filename))
		return nil, HTTPError{http.StatusNotImplemented, message}
	}

	debug("Probed %s (%s): %vx%v", filename, format, cfg.Width, cfg.Height)
	return &Extent{cfg.Width, cfg.Height}, nil
}

func extentToStruct(e *Extent) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"width":  {Kind: &structpb.Value_NumberValue{NumberValue: float64(e.Width)}},
			"height": {Kind: &structpb.Value_NumberValue{NumberValue: float64(e.Height)}},
		},
	}
}

func extentFromStruct(s *structpb.Struct) *Extent {
	fields := s.GetFields()
	return &Extent{
		Width:  int(fields["width"].GetNumberValue()),
		Height: int(fields["height"].GetNumberValue()),
	}
}
