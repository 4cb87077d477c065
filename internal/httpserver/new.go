package httpserver

import (
	"errors"

	"market-intel-srv/config"
	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/report"
	"market-intel-srv/internal/schedule"
	"market-intel-srv/pkg/discord"
	pkgJWT "market-intel-srv/pkg/jwt"
	"market-intel-srv/pkg/kafka"
	"market-intel-srv/pkg/log"
	pkgRedis "market-intel-srv/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	db          *gorm.DB
	redisClient pkgRedis.IRedis
	producer    kafka.IProducer

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager *pkgJWT.Manager

	// Cross-domain dependencies, populated during handler mapping
	emitter    activity.Emitter
	scheduleUC schedule.UseCase
	reportUC   report.UseCase

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	DB          *gorm.DB
	RedisClient pkgRedis.IRedis
	Producer    kafka.IProducer

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager *pkgJWT.Manager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		db:          cfg.DB,
		redisClient: cfg.RedisClient,
		producer:    cfg.Producer,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	// producer is optional, activity events fall back to a no-op emitter

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
