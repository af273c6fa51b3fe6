package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/sisunitech/careers-api/config"
	"github.com/sisunitech/careers-api/internal/data"
	"github.com/sisunitech/careers-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Applications *service.ApplicationService
	Positions    *service.JobPositionService
	Contacts     *service.ContactService
	Dashboard    *service.DashboardService
	Auth         *service.AuthService
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
	Applications *data.ApplicationRepo
	Positions    *data.JobPositionRepo
	Contacts     *data.ContactRepo
	Resumes      *data.DiskResumeStore
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, uploads config.UploadsConfig) (*serviceRepositories, error) {
	resumes, err := data.NewDiskResumeStore(uploads.Dir)
	if err != nil {
		return nil, fmt.Errorf("create resume store: %w", err)
	}

	return &serviceRepositories{
		Applications: data.NewApplicationRepo(db),
		Positions:    data.NewJobPositionRepo(db),
		Contacts:     data.NewContactRepo(db),
		Resumes:      resumes,
	}, nil
}

// BuildServices wires repositories and services for the application.
func BuildServices(deps ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	repos, err := buildRepositories(deps.DB, cfg.Uploads)
	if err != nil {
		return ServiceContainer{}, err
	}

	auth := BuildAuthService(AuthConfig{
		Auth:        cfg.Auth,
		IsDev:       cfg.IsDev,
		RedisClient: deps.RedisClient,
		Logger:      deps.Logger,
	})

	return ServiceContainer{
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{
			Applications: repos.Applications,
			Resumes:      repos.Resumes,
		}),
		Positions: service.NewJobPositionService(service.JobPositionServiceOptions{
			Jobs: repos.Positions,
		}),
		Contacts: service.NewContactService(service.ContactServiceOptions{
			Contacts: repos.Contacts,
		}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Applications: repos.Applications,
			Jobs:         repos.Positions,
		}),
		Auth: auth,
	}, nil
}
