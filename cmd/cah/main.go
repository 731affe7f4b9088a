package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/ai"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/analysis"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/config"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/db"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/handler"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/job"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/middleware"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/repo"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/schedule"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "cah",
		Short: "content authenticator and humanizer backend",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the analysis server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("ai_model", cfg.AI.Model),
		zap.Bool("history", cfg.History.Enable),
	)

	// The model client lives for the whole process; every analysis run
	// shares it.
	aiProvider, err := ai.NewProvider(cfg.AI.Provider, cfg.AI.Data)
	if err != nil {
		return fmt.Errorf("init ai provider: %w", err)
	}
	gen := ai.NewGenerator(aiProvider, cfg.AI.Model)

	analyzer := analysis.NewAnalyzer(gen, analysis.Config{
		MaxWordsPerChunk: cfg.Analysis.MaxWordsPerChunk,
		Retry: analysis.RetryPolicy{
			MaxAttempts:  cfg.Analysis.RetryAttempts,
			InitialDelay: time.Duration(cfg.Analysis.RetryDelayMS) * time.Millisecond,
		},
	})

	var reportRepo *repo.ReportRepo
	var scheduler *schedule.CronScheduler
	if cfg.History.Enable {
		var database *sql.DB
		database, err = db.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		if err = db.ApplyMigrations(database); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		reportRepo = repo.NewReportRepo(database)

		scheduler = schedule.NewCronScheduler()
		cleanup := job.NewReportCleanupJob(reportRepo, cfg.History.RetentionDays)
		if err = scheduler.AddJob(cleanup, cfg.History.CleanupSpec); err != nil {
			return fmt.Errorf("schedule cleanup: %w", err)
		}
	}

	analysisService := service.NewAnalysisService(analyzer, reportRepo, service.AnalysisServiceConfig{
		MaxInputChars:  cfg.Analysis.MaxInputChars,
		TimeoutSeconds: cfg.Analysis.TimeoutSeconds,
	})

	deps := handler.RouterDeps{
		Analysis:        handler.NewAnalysisHandler(analysisService),
		RateLimitWindow: time.Duration(cfg.RateLimitMS) * time.Millisecond,
	}
	if reportRepo != nil {
		deps.Reports = handler.NewReportHandler(service.NewReportService(reportRepo))
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSHosts),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if scheduler != nil {
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
