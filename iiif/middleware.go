package iiif

import (
	"context"
	"net/http"

	"github.com/golang/groupcache"
)

// ContextKey is the cache key to use.
type ContextKey string

// WithGroupCaches sets the various caches.
func WithGroupCaches(h http.Handler, groups map[string]*groupcache.Group) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for k, v := range groups {
			ctx = context.WithValue(ctx, ContextKey(k), v)
		}
		r = r.WithContext(ctx)
		h.ServeHTTP(w, r)
	})
}

// WithConfig sets the IIIF server configuration.
func WithConfig(h http.Handler, config *Config) http.Handler {
	return withValue(h, "config", config)
}

// WithCatalog sets the catalog of known image extents.
func WithCatalog(h http.Handler, catalog Catalog) http.Handler {
	return withValue(h, "catalog", catalog)
}

func withValue(h http.Handler, key string, value interface{}) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ContextKey(key), value)
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}
