package handler

import (
	"net/http"

	"campushub/config"
	"campushub/di"
	"campushub/shared/logger"
)

// Handler is the serverless entry point. Deployments without a writable
// filesystem should run with the memory storage backend.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Adaptor()(w, r)
}
