package app

import (
	"context"
	"fmt"

	"github.com/RahulMisra2000/angular-security-course/config"
	"github.com/RahulMisra2000/angular-security-course/middleware"
	"github.com/RahulMisra2000/angular-security-course/repositories"
	"github.com/RahulMisra2000/angular-security-course/repositories/memory"
	"github.com/RahulMisra2000/angular-security-course/repositories/postgres"
	"github.com/RahulMisra2000/angular-security-course/services"
	"github.com/RahulMisra2000/angular-security-course/tokens"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB // nil in memory mode
	Logger *zap.Logger

	// Repositories
	Users   repositories.UserRepository
	Lessons repositories.LessonRepository

	// Services
	UserService *services.UserService

	// Session pipeline
	Codec    *tokens.Codec
	Sessions *middleware.Sessions
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initStorage(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if err := deps.initTokens(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize session tokens: %w", err)
	}

	deps.UserService = services.NewUserService(deps.Users, logger)
	deps.Sessions = middleware.NewSessions(deps.Codec, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initStorage connects to PostgreSQL when configured and falls back to the
// in-memory store otherwise (development only).
func (d *Dependencies) initStorage(ctx context.Context, cfg *config.Config) error {
	if !cfg.HasDatabase() {
		d.Logger.Warn("no database configured, using in-memory store")
		d.Users = memory.NewUserRepository()
		d.Lessons = memory.NewLessonRepository(memory.SeedLessons())
		return nil
	}

	db, err := postgres.NewDB(cfg.Database, d.Logger)
	if err != nil {
		return err
	}
	if err := db.InitSchema(ctx); err != nil {
		_ = db.Close()
		return err
	}

	d.DB = db
	d.Users = postgres.NewUserRepository(db, d.Logger)
	d.Lessons = postgres.NewLessonRepository(db, d.Logger)
	return nil
}

// initTokens loads the RSA key pair and builds the session codec. The keys
// are immutable for the process lifetime.
func (d *Dependencies) initTokens(cfg *config.Config) error {
	var codecConfig tokens.CodecConfig

	if cfg.Session.PrivateKeyFile != "" {
		privateKey, err := tokens.LoadPrivateKey(cfg.Session.PrivateKeyFile)
		if err != nil {
			return err
		}
		publicKey, err := tokens.LoadPublicKey(cfg.Session.PublicKeyFile)
		if err != nil {
			return err
		}
		codecConfig.PrivateKey = privateKey
		codecConfig.PublicKey = publicKey
	} else {
		d.Logger.Warn("no session key files configured, generating ephemeral key pair; sessions will not survive a restart")
		privateKey, publicKey, err := tokens.GenerateKeyPair()
		if err != nil {
			return err
		}
		codecConfig.PrivateKey = privateKey
		codecConfig.PublicKey = publicKey
	}

	codec, err := tokens.NewCodec(codecConfig)
	if err != nil {
		return err
	}
	d.Codec = codec

	d.Logger.Info("session token codec initialized",
		zap.Duration("ttl", cfg.Session.TTL))
	return nil
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	return nil
}
