package middleware

import (
	"net/http"
)

type ServiceVersionMiddleware struct {
	version   string
	commitSHA string
}

func NewServiceVersionMiddleware(version, commitSHA string) ServiceVersionMiddleware {
	return ServiceVersionMiddleware{
		version:   version,
		commitSHA: commitSHA,
	}
}

func (mw ServiceVersionMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Service-Version", mw.version)
		w.Header().Set("X-Commit-SHA", mw.commitSHA)

		next.ServeHTTP(w, r)
	})
}
