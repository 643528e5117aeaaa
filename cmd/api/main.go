package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"clinical-insights-go/internal/config"
	"clinical-insights-go/internal/logger"
	"clinical-insights-go/internal/models"
	"clinical-insights-go/internal/pipeline"
)

func main() {
	cfg := config.Load()

	log := logger.New()
	log.WithField("service", "clinical-insights-go").Info("starting service")

	runner := pipeline.New(cfg, models.FromConfig(cfg))

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// process endpoint: raw transcript in the body, complete output back
	mux.HandleFunc("/process", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "process")
		reqLog.Info("process request received")

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			reqLog.WithError(err).Warn("failed to read body")
			http.Error(w, "cannot read request body", http.StatusBadRequest)
			return
		}
		if len(body) == 0 {
			reqLog.Warn("empty transcript")
			http.Error(w, "empty transcript", http.StatusBadRequest)
			return
		}

		start := time.Now()
		out := runner.RunText(r.Context(), string(body))
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).Info("pipeline finished")

		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			reqLog.WithError(err).Error("failed to write response")
		}
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}
