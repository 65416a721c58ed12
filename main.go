package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/config"
	"github.com/parkinvoice/validation-service/app/controllers"
	"github.com/parkinvoice/validation-service/app/services"
	"github.com/parkinvoice/validation-service/internal/geo"
	"github.com/parkinvoice/validation-service/internal/vehicle"
	"github.com/parkinvoice/validation-service/routes"
)

func main() {
	// 1. Load configuration
	loadConfig()
	if err := config.Load(viper.GetString("config.path")); err != nil {
		log.Printf("Warning: cannot read tuning config, using defaults: %v", err)
		config.Defaults()
	}

	// 2. Logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting ParkInvoice Validation Service")

	// 3. Address search pipeline
	gazetteer := geo.NewGazetteer()
	directory := geo.NewDirectory()

	providers := []geo.Provider{
		geo.NewNominatimProvider(config.C.Search.Nominatim.BaseURL, config.C.Search.Nominatim.Timeout()),
		geo.NewPhotonProvider(config.C.Search.Photon.BaseURL, config.C.Search.Photon.Timeout()),
	}
	mapboxKey := viper.GetString("mapbox.api_key")
	if mapboxKey != "" {
		providers = append(providers, geo.NewMapBoxProvider(config.C.Search.MapBox.BaseURL, mapboxKey, config.C.Search.MapBox.Timeout()))
	} else {
		logger.Info("MapBox API key not set, provider disabled")
	}

	aggregator := geo.NewAggregator(gazetteer, providers, logger)

	// 4. Cache (L1 LRU, plus Redis L2 when reachable)
	l1, err := services.NewLRUCacheService(config.C.Cache.L1Size, logger)
	if err != nil {
		logger.Fatal("Failed to initialize LRU cache", zap.Error(err))
	}

	var cacheService services.ICacheService = l1
	var redisCache *services.RedisCacheService
	redisURL := viper.GetString("redis.url")
	if redisURL != "" {
		redisCache, err = services.NewRedisCacheService(redisURL, config.C.Cache.TTL(), logger)
		if err != nil {
			logger.Warn("Redis unavailable, running with in-memory cache only", zap.Error(err))
		} else {
			cacheService = services.NewHybridCacheService(l1, redisCache, logger)
		}
	}
	defer cacheService.Close()

	// 5. Services
	addressService := services.NewAddressService(aggregator, directory, cacheService, logger)
	vehicleService := services.NewVehicleService(vehicle.NewLookup(viper.GetString("vehicle.report_url"), logger), logger)

	var invoiceService *services.InvoiceService
	if redisCache != nil {
		invoiceService = services.NewInvoiceService(redisCache.Client(), logger)
	} else {
		invoiceService = services.NewInvoiceService(nil, logger)
	}

	// 6. Controllers
	ctrl := routes.Controllers{
		Fiscal:  controllers.NewFiscalController(logger),
		Address: controllers.NewAddressController(addressService, logger),
		Vehicle: controllers.NewVehicleController(vehicleService, logger),
		Invoice: controllers.NewInvoiceController(invoiceService, logger),
	}

	// 7. Router
	if getEnv("APP_ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, ctrl)

	// 8. Serve
	port := viper.GetString("app.port")
	logger.Info("Validation service listening", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// loadConfig sets viper defaults and binds env vars.
func loadConfig() {
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("config.path", "./config/app.yaml")
	viper.SetDefault("redis.url", "redis://localhost:6379")
	viper.SetDefault("mapbox.api_key", "")
	viper.SetDefault("vehicle.report_url", "")

	viper.AutomaticEnv()
	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("redis.url", "REDIS_URL")
	viper.BindEnv("mapbox.api_key", "MAPBOX_API_KEY")
	viper.BindEnv("vehicle.report_url", "VEHICLE_REPORT_URL")
	viper.BindEnv("config.path", "CONFIG_PATH")
}

// initLogger builds the structured logger for the current environment.
func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", "development")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	return logger
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
