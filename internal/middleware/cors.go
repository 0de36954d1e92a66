package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"resto-backend/internal/config"
)

// Origins allowed when none are configured, covering the local Vite and
// CRA dev servers the customer and back-office frontends run on.
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	origins := cfg.Server.CorsAllowedOrigins
	if len(origins) == 0 {
		origins = defaultOrigins
	}

	// The cart endpoints require X-Session-ID on cross-origin requests,
	// whatever headers the deployment configures
	headers := append([]string{"X-Session-ID"}, cfg.Server.CorsAllowedHeaders...)

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   cfg.Server.CorsAllowedMethods,
		AllowedHeaders:   headers,
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	})

	return c.Handler
}
