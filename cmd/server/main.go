package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightbooking/internal/cache"
	"github.com/dharmasatrya/flightbooking/internal/handler"
	"github.com/dharmasatrya/flightbooking/internal/provider"
	"github.com/dharmasatrya/flightbooking/internal/ratelimit"
)

type Config struct {
	Port          string
	AmadeusID     string
	AmadeusSecret string
	AmadeusURL    string
	CacheEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisTTL      time.Duration
}

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := loadConfig()
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	limiter := ratelimit.NewOperationLimiterWithDefaults()
	limiter.SetOperationLimit(provider.OpSearchFlights, 10, 20)
	limiter.SetOperationLimit(provider.OpSearchLocations, 20, 40)
	limiter.SetOperationLimit(provider.OpConfirmPrice, 5, 10)
	limiter.SetOperationLimit(provider.OpCreateBooking, 2, 5)

	var prov provider.Provider
	if cfg.AmadeusID == "" || cfg.AmadeusSecret == "" {
		log.Warn("AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set; using sandbox provider with mock booking references")
		prov = provider.NewSandbox()
	} else {
		prov = provider.NewAmadeus(provider.AmadeusConfig{
			ClientID:     cfg.AmadeusID,
			ClientSecret: cfg.AmadeusSecret,
			BaseURL:      cfg.AmadeusURL,
		}, limiter, log)
	}

	var offerCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.WithError(err).Fatal("failed to connect to Redis")
		}
		offerCache = redisCache
		log.WithFields(logrus.Fields{
			"host": cfg.RedisHost + ":" + cfg.RedisPort,
			"ttl":  cfg.RedisTTL,
		}).Info("Redis cache enabled")
	} else {
		offerCache = cache.NewNoOpCache()
		log.Info("cache disabled")
	}

	searchHandler := handler.NewSearchHandler(prov, offerCache, log)
	locationsHandler := handler.NewLocationsHandler(prov, log)
	bookingHandler := handler.NewBookingHandler(prov, log)

	api := e.Group("/api/v1")
	api.GET("/flights/search", searchHandler.Search)
	api.GET("/locations/search", locationsHandler.Search)
	api.POST("/flights/confirm-price", bookingHandler.ConfirmPrice)
	api.POST("/bookings", bookingHandler.Create)
	e.GET("/health", handler.HealthHandler)

	log.WithField("port", cfg.Port).Info("starting flight booking server")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}

func loadConfig() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		AmadeusID:     getEnv("AMADEUS_CLIENT_ID", ""),
		AmadeusSecret: getEnv("AMADEUS_CLIENT_SECRET", ""),
		AmadeusURL:    getEnv("AMADEUS_BASE_URL", ""),
		CacheEnabled:  getEnvBool("CACHE_ENABLED", true),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisTTL:      getEnvDuration("REDIS_TTL", 5*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
