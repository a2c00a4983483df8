package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/db"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/utils"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	cancel   context.CancelFunc
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	var (
		theDB   *gorm.DB
		reposet Repos
	)
	switch cfg.StorageDriver {
	case "memory":
		reposet = wireMemoryRepos(log)
	default:
		pg, pgErr := db.NewPostgresService(log)
		if pgErr != nil {
			log.Sync()
			return nil, fmt.Errorf("init postgres: %w", pgErr)
		}
		if mErr := pg.AutoMigrateAll(); mErr != nil {
			log.Sync()
			return nil, fmt.Errorf("postgres automigrate: %w", mErr)
		}
		theDB = pg.DB()
		reposet = wireRepos(theDB, log)
	}

	serviceset, err := wireServices(log, cfg, reposet)
	if err != nil {
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, serviceset)
	authMiddleware := wireMiddleware(log, serviceset, reposet)
	router := wireRouter(cfg, handlerset, authMiddleware)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

// Start launches the scheduled-notification sweep loop.
func (a *App) Start() {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	sweepSeconds := utils.GetEnvAsInt("NOTIFICATION_SWEEP_SECONDS", 60, a.Log)
	go func() {
		ticker := time.NewTicker(time.Duration(sweepSeconds) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sent, err := a.Services.Notification.ProcessScheduledNotifications(ctx)
				if err != nil {
					a.Log.Warn("Scheduled notification sweep failed", "error", err)
					continue
				}
				if sent > 0 {
					a.Log.Info("Dispatched scheduled notifications", "count", sent)
				}
			}
		}
	}()
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
