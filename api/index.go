package handler

import (
	"net/http"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	server  http.Handler
	initErr error
)

// Handler serves the API as a single serverless function. The engine keeps
// its state for as long as the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server, _, initErr = di.InitializeService()
		if initErr != nil {
			log.Error().Err(initErr).Msg("Failed to initialize service")
		}
	})

	if initErr != nil {
		response.WithUnhealthy(w)

		return
	}

	server.ServeHTTP(w, r)
}
