package iiif

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang/groupcache"
	"github.com/gorilla/mux"
	"github.com/mitchellh/mapstructure"
)

// error messages
var maxSizeError = "The given `size` is out of the limits %vx%v (%vx%v or area %v)"

// requestVars are the route variables of an image request.
type requestVars struct {
	Identifier string `mapstructure:"identifier"`
	Region     string `mapstructure:"region"`
	Size       string `mapstructure:"size"`
	Rotation   string `mapstructure:"rotation"`
	Quality    string `mapstructure:"quality"`
	Format     string `mapstructure:"format"`
}

// ImageHandler responds to the IIIF 2.1 Image API with the canonical form of the request.
//
// The Link header points to the canonical URL, ?canonical redirects to it.
func ImageHandler(w http.ResponseWriter, r *http.Request) {
	var vars requestVars
	if err := mapstructure.Decode(mux.Vars(r), &vars); err != nil {
		writeError(w, HTTPError{http.StatusBadRequest, err.Error()})
		return
	}

	ctx := r.Context()
	config, _ := ctx.Value(ContextKey("config")).(*Config)
	catalog, _ := ctx.Value(ContextKey("catalog")).(Catalog)
	extents, _ := ctx.Value(ContextKey("extents")).(*groupcache.Group)

	identifier, err := scrubIdentifier(vars.Identifier)
	if err != nil {
		writeError(w, err)
		return
	}

	extent, err := openExtent(ctx, identifier, config, catalog, extents)
	if err != nil {
		writeError(w, err)
		return
	}

	ir := NewImageResponse(identifier, vars.Region, vars.Size, vars.Rotation, vars.Quality, vars.Format, extent.Width, extent.Height)
	if err := ir.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := checkLimits(ir.Size, config); err != nil {
		writeError(w, err)
		return
	}

	canonical := fmt.Sprintf("%s/%s", baseURL(r), ir.CanonicalPath())
	requested := fmt.Sprintf("%s/%s/%s/%s/%s.%s", identifier, vars.Region, vars.Size, vars.Rotation, vars.Quality, vars.Format)

	header := w.Header()
	header.Set("Link", fmt.Sprintf("<%s>;rel=\"canonical\"", canonical))
	header.Set("Access-Control-Allow-Origin", "*")

	_, redirect := r.URL.Query()["canonical"]
	if redirect && requested != ir.CanonicalPath() {
		debug("Redirecting %s to %s", requested, canonical)
		http.Redirect(w, r, canonical, http.StatusSeeOther)
		return
	}

	buffer, err := json.MarshalIndent(ir.Descriptor(), "", "  ")
	if err != nil {
		writeError(w, HTTPError{http.StatusInternalServerError, "Cannot describe the image"})
		return
	}

	header.Set("Content-Type", "application/json")
	header.Set("ETag", getETag(canonical))
	if config != nil {
		header.Set("Cache-Control", fmt.Sprintf("max-age=%v, public", config.Cache.HTTP))
	}
	http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(buffer))
}

// checkLimits refuses output sizes above the configured maximums.
func checkLimits(size *Size, config *Config) error {
	if config == nil {
		return nil
	}

	width := size.Width()
	height := size.Height()

	if (config.MaxWidth != 0 && config.MaxWidth < width) ||
		(config.MaxHeight != 0 && config.MaxHeight < height) ||
		(config.MaxArea != 0 && config.MaxArea < width*height) {
		message := fmt.Sprintf(maxSizeError, width, height, config.MaxWidth, config.MaxHeight, config.MaxArea)
		return HTTPError{http.StatusBadRequest, message}
	}

	return nil
}
