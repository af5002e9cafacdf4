package middleware

import (
	"context"
	"net/http"
)

// QuietPaths keeps scrape and probe endpoints out of the access log.
type QuietPaths struct {
	paths map[string]struct{}
}

func NewQuietPaths(paths ...string) *QuietPaths {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}

	return &QuietPaths{paths: set}
}

func (q *QuietPaths) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := q.paths[r.URL.Path]; ok {
			ctx := context.WithValue(r.Context(), skipAccessLogKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))

			return
		}

		next.ServeHTTP(w, r)
	})
}
