package iiif

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/golang/groupcache"
	"github.com/gorilla/mux"

	d "github.com/tj/go-debug"
)

var debug = d.Debug("iiif")

// MakeRouter construct the basic router (no middlewares)
func MakeRouter() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/{identifier:.*}/info.json", InfoHandler)
	router.HandleFunc("/{identifier:.*}/{region}/{size}/{rotation}/{quality}.{format}", ImageHandler)
	router.HandleFunc("/{identifier:.*}", RedirectHandler)

	return router
}

// SetGroupCache sets the cache of image extents, shared between self and the other peers.
//
// It must be called only once per process.
func SetGroupCache(router http.Handler, config *Config, self string, peers ...string) http.Handler {
	pool := groupcache.NewHTTPPool(self)
	pool.Set(append([]string{self}, peers...)...)

	var extents = groupcache.NewGroup("extents", config.Cache.ExtentsSize, groupcache.GetterFunc(
		func(ctx context.Context, key string, dest groupcache.Sink) error {
			extent, err := probeExtent(filepath.Join(config.Images, key))
			if err != nil {
				return err
			}
			debug("Caching %s (%vx%v)", key, extent.Width, extent.Height)
			return dest.SetProto(extentToStruct(extent))
		},
	))

	return WithGroupCaches(router, map[string]*groupcache.Group{
		"extents": extents,
	})
}
