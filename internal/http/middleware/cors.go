package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/Andydrums87/bookabash-sub001/internal/config"
)

// CORS lets the booking front end call the quote API from the browser and
// read the trace headers on the response.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   append([]string{headerRequestID}, cfg.AllowedHeaders...),
		ExposedHeaders:   []string{headerTraceID, headerRequestID},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}
