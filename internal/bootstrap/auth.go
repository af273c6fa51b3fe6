package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/sisunitech/careers-api/config"
	"github.com/sisunitech/careers-api/internal/adapters/authroles"
	"github.com/sisunitech/careers-api/internal/adapters/demoauth"
	"github.com/sisunitech/careers-api/internal/adapters/oidcauth"
	"github.com/sisunitech/careers-api/internal/adapters/redisstore"
	"github.com/sisunitech/careers-api/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	IsDev       bool
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid; the
// router then fails closed, refusing guarded routes while the public ones
// keep working.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	// Session store and role mapper are shared by both modes
	sessionStore := redisstore.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	roleMapper := authroles.NewStaticRoleMapper(cfg.Auth.AdminEmails, cfg.Auth.AdminGroup)

	opts := service.AuthServiceOptions{
		Sessions:   sessionStore,
		Roles:      roleMapper,
		SessionTTL: cfg.Auth.SessionTTL,
	}

	switch cfg.Auth.Mode {
	case config.AuthModeDemo:
		if !cfg.IsDev && cfg.Logger != nil {
			cfg.Logger.Warn("demo auth mode accepts any credentials; do not use in production")
		}
		opts.Passwords = demoauth.New()

	case config.AuthModeOIDC:
		oidcCfg := cfg.Auth.OIDC
		if oidcCfg.DiscoveryURL == "" || oidcCfg.ClientID == "" || oidcCfg.ClientSecret == "" {
			if cfg.Logger != nil {
				cfg.Logger.Warn("AuthModeOIDC selected but required config missing; auth disabled",
					"discovery_url_empty", oidcCfg.DiscoveryURL == "",
					"client_id_empty", oidcCfg.ClientID == "",
					"client_secret_empty", oidcCfg.ClientSecret == "",
				)
			}
			if cfg.IsDev {
				if cfg.Logger != nil {
					cfg.Logger.Warn("falling back to demo auth in development mode")
				}
				opts.Passwords = demoauth.New()
				break
			}
			return nil
		}

		prov, err := oidcauth.NewProvider(oidcauth.ProviderConfig{
			ClientID:     oidcCfg.ClientID,
			ClientSecret: oidcCfg.ClientSecret,
			RedirectURL:  oidcCfg.RedirectURL,
			Scope:        oidcCfg.Scope,
			IssuerURL:    oidcCfg.DiscoveryURL,
			LogoutURL:    oidcCfg.LogoutURL,
		})
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
			}
			return nil
		}
		opts.SSO = prov

	default:
		return nil
	}

	return service.NewAuthService(opts)
}
