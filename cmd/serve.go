package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hiravi/volt-parser/internal/model"
)

var servePort int

// extractService is the slice of the pipeline the HTTP handlers need.
type extractService interface {
	Organizations(ctx context.Context, text string) ([]string, error)
	EnrichAll(ctx context.Context, names []string, useFallback bool) ([]model.CompanyProfile, []model.EnrichmentOutcome)
}

type pipelineService struct {
	env *pipelineEnv
}

func (s *pipelineService) Organizations(ctx context.Context, text string) ([]string, error) {
	return s.env.Extractor.Organizations(ctx, text)
}

func (s *pipelineService) EnrichAll(ctx context.Context, names []string, useFallback bool) ([]model.CompanyProfile, []model.EnrichmentOutcome) {
	return s.env.Enricher.EnrichAll(ctx, names, useFallback)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a webhook server for extraction requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		if servePort == 0 {
			servePort = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", servePort),
			Handler: newMux(&pipelineService{env: env}),
		}

		errCh := make(chan error, 1)
		go func() {
			zap.L().Info("server listening", zap.Int("port", servePort))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return eris.Wrap(err, "server shutdown")
			}
			return nil
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "server")
			}
			return nil
		}
	},
}

func newMux(svc extractService) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /extract", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text        string `json:"text"`
			UseFallback bool   `json:"use_fallback"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Text == "" {
			http.Error(w, `{"error":"text is required"}`, http.StatusBadRequest)
			return
		}

		names, err := svc.Organizations(r.Context(), req.Text)
		if err != nil {
			zap.L().Error("extraction failed", zap.Error(err))
			http.Error(w, `{"error":"extraction failed"}`, http.StatusBadGateway)
			return
		}

		profiles, _ := svc.EnrichAll(r.Context(), names, req.UseFallback)
		if profiles == nil {
			profiles = []model.CompanyProfile{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profiles)
	})

	return mux
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (defaults to server.port config)")
	rootCmd.AddCommand(serveCmd)
}
