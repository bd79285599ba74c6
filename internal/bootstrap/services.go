package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/APVS-BRO/ai-careers-hub/config"
	"github.com/APVS-BRO/ai-careers-hub/internal/adapters/imagekit"
	"github.com/APVS-BRO/ai-careers-hub/internal/adapters/pdftext"
	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	"github.com/APVS-BRO/ai-careers-hub/internal/data"
	"github.com/APVS-BRO/ai-careers-hub/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Chat    *service.ChatService
	Resume  *service.ResumeService
	Roadmap *service.RoadmapService
	History *service.HistoryService
	Users   *service.UserService
	Auth    *service.AuthService

	// Dispatch carries the wired run client plus the local-mode store and
	// queue the worker service consumes.
	Dispatch *DispatchStack
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	History *data.HistoryRepo
	Users   *data.UserRepo
}

func buildRepositories(db *sql.DB) *serviceRepositories {
	return &serviceRepositories{
		History: data.NewHistoryRepo(db),
		Users:   data.NewUserRepo(db),
	}
}

// buildMediaUploader creates the resume CDN uploader when enabled and fully
// configured. A nil uploader means history rows carry no hosted URL.
//
//nolint:ireturn // core.MediaUploader is the port the resume service consumes.
func buildMediaUploader(cfg config.MediaConfig, logger *slog.Logger) core.MediaUploader {
	if !cfg.Enabled {
		return nil
	}
	uploader, err := imagekit.NewUploader(imagekit.Config{
		UploadURL:  cfg.UploadURL,
		PrivateKey: cfg.PrivateKey,
		Folder:     cfg.Folder,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("media uploads disabled", "error", err)
		}
		return nil
	}
	return uploader
}

// NewServices wires all application services from their adapters.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	stack, err := BuildDispatchStack(DispatchConfig{
		Agents:      deps.Config.Agents,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	repos := buildRepositories(deps.DB)

	chat := service.NewChatService(service.ChatServiceOptions{
		Runs:   stack.Runs,
		Logger: logger,
	})
	resume := service.NewResumeService(service.ResumeServiceOptions{
		Runs:    stack.Runs,
		History: repos.History,
		Files: service.ResumeFileOptions{
			Extractor: pdftext.NewExtractor(),
			Uploader:  buildMediaUploader(deps.Config.Media, logger),
			Logger:    logger,
		},
	})
	roadmap := service.NewRoadmapService(service.RoadmapServiceOptions{
		Runs:    stack.Runs,
		History: repos.History,
		Logger:  logger,
	})

	return ServiceContainer{
		Chat:    chat,
		Resume:  resume,
		Roadmap: roadmap,
		History: service.NewHistoryService(service.HistoryServiceOptions{Repo: repos.History}),
		Users:   service.NewUserService(service.UserServiceOptions{Repo: repos.Users}),
		Auth: BuildAuthService(AuthConfig{
			Auth:        deps.Config.Auth,
			RedisClient: deps.RedisClient,
			Logger:      logger,
		}),
		Dispatch: stack,
	}, nil
}
