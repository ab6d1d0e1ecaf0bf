package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/dentalsynth/internal/config"
	"github.com/ehr/dentalsynth/internal/platform/middleware"
	"github.com/ehr/dentalsynth/internal/platform/reporting"
	"github.com/ehr/dentalsynth/internal/platform/sandbox"
	"github.com/ehr/dentalsynth/internal/platform/workbook"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dentalsynth",
		Short:        "Synthetic dental-health dataset generator",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout())
		},
	}

	root.AddCommand(generateCmd())
	root.AddCommand(serveCmd())
	return root
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the dataset and write it to OUTPUT_FILE",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout())
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the sandbox HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger.Level(cfg.Level())
}

func runGenerate(out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	summary, err := generate(logger, cfg.OutputFile)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.OutputFile).Msg("dataset export failed")
		return err
	}

	fmt.Fprintf(out, "Successfully generated and saved %d records to '%s'\n", summary.Rows, summary.Path)
	fmt.Fprintf(out, "Dataset dimensions: %s\n", summary.Dimensions())
	return nil
}

// generate builds the fixed dataset and writes it to path.
func generate(logger zerolog.Logger, path string) (*workbook.Summary, error) {
	seeder := sandbox.NewSeeder(sandbox.DefaultSeedConfig())
	result, err := seeder.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate dataset: %w", err)
	}
	logger.Info().
		Str("dataset_id", result.DatasetID).
		Int("records", result.Records).
		Int64("seed", result.Seed).
		Dur("duration", result.Duration).
		Msg("dataset generated")

	summary, err := seeder.ExportFile(path)
	if err != nil {
		return nil, fmt.Errorf("export dataset: %w", err)
	}
	logger.Info().
		Str("path", summary.Path).
		Str("sheet", summary.Sheet).
		Int("rows", summary.Rows).
		Int("columns", summary.Columns).
		Msg("workbook written")

	return summary, nil
}

// newServer wires the sandbox and reporting routes onto a fresh Echo instance.
func newServer(logger zerolog.Logger, seeds *sandbox.SeedHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	apiV1 := e.Group("/api/v1")
	seeds.RegisterRoutes(apiV1.Group("/sandbox"))
	reporting.NewHandler(seeds).RegisterRoutes(apiV1)

	return e
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	seeds := sandbox.NewSeedHandler()
	result, err := seeds.Seed()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to generate initial dataset")
	}
	logger.Info().Str("dataset_id", result.DatasetID).Int("records", result.Records).Msg("initial dataset ready")

	e := newServer(logger, seeds)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
