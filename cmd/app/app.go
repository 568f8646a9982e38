package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/projeto-evento/evento-api/internal/api"
	"github.com/projeto-evento/evento-api/internal/api/middleware"
	"github.com/projeto-evento/evento-api/internal/config"
	"github.com/projeto-evento/evento-api/internal/db"
	"github.com/projeto-evento/evento-api/internal/logger"
	"github.com/projeto-evento/evento-api/internal/pkg/ratelimit"
	"github.com/projeto-evento/evento-api/internal/repository/dao"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	conf.Watch(func(e fsnotify.Event) {
		zap.L().Info("config file changed, restart to apply", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})

	database, err := OpenDatabase(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(database); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	s := api.NewServer(conf, database, newLoginLimiter(conf))

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// OpenDatabase prefers DATABASE_URL, then a configured SQLite file, then the postgres section.
func OpenDatabase(conf *config.AppConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return db.OpenPostgresWithURL(dbURL)
	}

	if conf.SQLite != nil && conf.SQLite.Path != "" {
		zap.L().Info("using sqlite database", zap.String("path", conf.SQLite.Path))
		return db.OpenSQLite(conf.SQLite.Path)
	}

	return db.OpenPostgres(conf.Postgres)
}

func newLoginLimiter(conf *config.AppConfig) middleware.Limiter {
	if conf.Redis == nil || conf.Redis.Addr == "" {
		zap.L().Warn("redis.addr is empty, login rate limiting is disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis is unreachable, login requests are not limited until it comes back", zap.Error(err))
	}

	return ratelimit.NewRedisLimiter(client, conf.Redis.Prefix, conf.API.LoginRateLimit, conf.API.LoginRateWindow)
}
