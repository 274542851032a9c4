package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"time"

	"cryptoquiz/internal/config"
	"cryptoquiz/internal/deck"
	"cryptoquiz/internal/httpapi"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel)

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	flag.Parse()

	questions, err := deck.Resolve(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to load question deck")
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(httpapi.NewAPI(questions, log)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithField("addr", *addr).Info("quiz-server listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server failed")
	}
}
