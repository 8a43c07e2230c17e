package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sagelearn/sage/internal/adaptive"
	"github.com/sagelearn/sage/internal/config"
	"github.com/sagelearn/sage/internal/curriculum"
	"github.com/sagelearn/sage/internal/httpapi"
	"github.com/sagelearn/sage/internal/llm"
	"github.com/sagelearn/sage/internal/store"
	"github.com/sagelearn/sage/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, s.EventRepo(), logger)
	if err != nil {
		return fmt.Errorf("init LLM provider: %w", err)
	}

	classifierCfg := adaptive.DefaultClassifierConfig()
	classifierCfg.WindowPerRole = cfg.HistoryWindow

	adaptiveSvc := adaptive.NewService(
		cfg.Trigger,
		adaptive.NewLLMClassifier(provider, classifierCfg),
		adaptive.NewLLMRecommender(provider, adaptive.DefaultRecommenderConfig()),
		s.SnapshotRepo(),
		logger,
	)
	tutorSvc := tutor.NewService(provider, s.TurnRepo(), s.SnapshotRepo(), adaptiveSvc, tutor.DefaultConfig(), logger)
	curriculumSvc := curriculum.NewService(provider, curriculum.DefaultConfig(), logger)

	api := httpapi.NewServer(httpapi.Deps{
		Users:      s.UserRepo(),
		Paths:      s.PathRepo(),
		Turns:      s.TurnRepo(),
		Snapshots:  s.SnapshotRepo(),
		Portfolio:  s.PortfolioRepo(),
		Tutor:      tutorSvc,
		Curriculum: curriculumSvc,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.Addr),
			zap.String("db", dbPath),
			zap.String("llm_provider", cfg.LLM.Provider))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
