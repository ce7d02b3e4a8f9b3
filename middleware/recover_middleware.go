package middleware

import (
	"fmt"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/felixge/httpsnoop"
	"go.uber.org/zap"
)

const serverErrorMessage = "Server error: unexpected failure while handling the request"

// RecoverMiddleware turns a panic in next into a generic 500 JSON error.
// The panic value is logged, never returned to the caller. If next already
// started its response, the response is left as is.
func RecoverMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		written := false
		tracked := httpsnoop.Wrap(w, httpsnoop.Hooks{
			WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
				return func(code int) {
					written = true
					next(code)
				}
			},
			Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
				return func(b []byte) (int, error) {
					written = true
					return next(b)
				}
			},
		})

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Recovered from handler panic",
					zap.String("path", r.URL.Path),
					zap.String("panic", fmt.Sprint(rec)),
					zap.Bool("responseStarted", written))

				if !written {
					WriteError(w, http.StatusInternalServerError, serverErrorMessage)
				}
			}
		}()

		next(tracked, r)
	}
}
