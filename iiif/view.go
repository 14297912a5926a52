package iiif

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/golang/groupcache"
	"github.com/gorilla/mux"
)

var supports = []string{
	"baseUriRedirect",
	"canonicalLinkHeader",
	"cors",
	"jsonldMediaType",
	"mirroring",
	"regionByPct",
	"regionByPx",
	"rotationArbitrary",
	"rotationBy90s",
	"sizeAboveFull",
	"sizeByConfinedWh",
	"sizeByDistortedWh",
	"sizeByH",
	"sizeByPct",
	"sizeByW",
	"sizeByWh",
}

// RedirectHandler sends the bare identifier to its info.json.
func RedirectHandler(w http.ResponseWriter, r *http.Request) {
	identifier, err := scrubIdentifier(mux.Vars(r)["identifier"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("%s/%s/info.json", baseURL(r), identifier), http.StatusSeeOther)
}

// InfoHandler responds to the image technical properties.
func InfoHandler(w http.ResponseWriter, r *http.Request) {
	identifier, err := scrubIdentifier(mux.Vars(r)["identifier"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	config, _ := ctx.Value(ContextKey("config")).(*Config)
	catalog, _ := ctx.Value(ContextKey("catalog")).(Catalog)
	extents, _ := ctx.Value(ContextKey("extents")).(*groupcache.Group)

	extent, err := openExtent(ctx, identifier, config, catalog, extents)
	if err != nil {
		writeError(w, err)
		return
	}

	if config == nil {
		config = &Config{}
	}

	p := Image{
		Context:  "http://iiif.io/api/image/2/context.json",
		ID:       fmt.Sprintf("%s/%s", baseURL(r), identifier),
		Type:     "iiif:Image",
		Protocol: "http://iiif.io/api/image",
		Width:    extent.Width,
		Height:   extent.Height,
		Profile: []interface{}{
			"http://iiif.io/api/image/2/level2.json",
			&ImageProfile{
				Context:   "http://iiif.io/api/image/2/context.json",
				Type:      "iiif:ImageProfile",
				Formats:   knownFormats(),
				Qualities: knownQualities(),
				MaxWidth:  config.MaxWidth,
				MaxHeight: config.MaxHeight,
				MaxArea:   config.MaxArea,
				Supports:  supports,
			},
		},
	}

	buffer, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		http.Error(w, "Cannot create profile", http.StatusInternalServerError)
		return
	}

	header := w.Header()

	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/ld+json") {
		header.Set("Content-Type", "application/ld+json")
	} else {
		header.Set("Content-Type", "application/json")
	}
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
	header.Set("ETag", getETag(r.URL.String()))
	header.Set("Cache-Control", fmt.Sprintf("max-age=%v, public", config.Cache.HTTP))
	http.ServeContent(w, r, "info.json", time.Time{}, bytes.NewReader(buffer))
}

// baseURL honors the reverse proxy headers.
func baseURL(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	if r.Header.Get("X-Forwarded-Proto") != "" {
		scheme = r.Header.Get("X-Forwarded-Proto")
	}

	host := r.Host
	if r.Header.Get("X-Forwarded-Host") != "" {
		host = r.Header.Get("X-Forwarded-Host")
	}

	return fmt.Sprintf("%s://%s", scheme, host)
}

func knownFormats() []string {
	var list []string
	for f := range formats {
		list = append(list, string(f))
	}
	sort.Strings(list)
	return list
}

func knownQualities() []string {
	var list []string
	for q := range qualities {
		list = append(list, string(q))
	}
	sort.Strings(list)
	return list
}

func getETag(str string) string {
	return fmt.Sprintf("\"%x\"", sha1.Sum([]byte(str)))
}
