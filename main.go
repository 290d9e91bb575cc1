package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aziendachimica/website/backend/content-api/handlers"
	"github.com/aziendachimica/website/backend/content-api/internal/config"
	contenthandler "github.com/aziendachimica/website/backend/content-api/internal/content/handler"
	"github.com/aziendachimica/website/backend/content-api/internal/content/service"
	"github.com/aziendachimica/website/backend/content-api/internal/database"
	"github.com/aziendachimica/website/backend/content-api/internal/store"
	"github.com/aziendachimica/website/backend/content-api/pkg/logger"
	"github.com/aziendachimica/website/backend/content-api/pkg/metrics"
	"github.com/aziendachimica/website/backend/content-api/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: driver=%s database_url=%v redis=%v", cfg.Database.Driver, cfg.Database.URL != "", cfg.Redis.Host != "")

	ctx := context.Background()
	st, closeStore := database.OpenStore(ctx, cfg.Database)
	defer func() { _ = closeStore(context.Background()) }()

	rdb := connectRedis(ctx, cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := newRouter(cfg, st, rdb)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Infof("Starting content API on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("server failed: %v", err)
	}
}

// connectRedis returns a client only when REDIS_HOST is set and answers a ping.
func connectRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if cfg.Redis.Host == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		_ = client.Close()
		return nil
	}
	logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
	return client
}

// submitLimiter throttles the submission endpoints, or returns nil when disabled.
func submitLimiter(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	if cfg.RateLimit.UseRedis && rdb != nil {
		win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		return middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
	}
	return middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}

func newRouter(cfg *config.Config, st store.Store, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.CORS(), middleware.Logging(), middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// ready only when the store answers
	r.GET("/ready", func(c *gin.Context) {
		_, err := st.CollectionNames(c.Request.Context())
		deps := gin.H{"store": err == nil}
		if cfg.RateLimit.UseRedis {
			deps["redis"] = rdb != nil
		}
		uptime := fmt.Sprintf("%s", time.Since(startTime))
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterSwagger(r)

	env := contenthandler.EnvStatus{
		DatabaseURLSet:  cfg.Database.URL != "",
		DatabaseNameSet: cfg.Database.Name != "",
	}
	h := contenthandler.New(service.New(st), st, env)
	if limiter := submitLimiter(cfg, rdb); limiter != nil {
		h.Register(r, limiter)
	} else {
		h.Register(r)
	}
	return r
}
