package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"dacops.xyz/dac-monitor-service/pkg/common"
	"dacops.xyz/dac-monitor-service/pkg/dac"
	"dacops.xyz/dac-monitor-service/pkg/db"
	dacHttp "dacops.xyz/dac-monitor-service/pkg/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	cfg, err := common.LoadAppConfig()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	var dbInstance *db.DB
	switch cfg.DBType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal("DAC_POSTGRES_DSN must be set when DAC_DB_TYPE is postgres")
		}
		dbInstance = db.GetInstance(db.UsePostgresDialector(cfg.PostgresDSN))
	default:
		log.Fatal("Unknown DAC_DB_TYPE: " + cfg.DBType)
	}

	logger := common.GetLogger()

	dacCore := dac.DAC{
		Db: *dbInstance,
	}
	dacCore.WithServices(dac.ServiceOpts{
		Unit:     dacCore.GetIUnit(),
		Sensor:   dacCore.GetISensor(),
		TestRun:  dacCore.GetITestRun(),
		Executor: dacCore.GetIExecutor(dac.ExecutorOpts{}),
	})

	var limiterStore *dac.RateLimiterStore
	if cfg.RateLimiting {
		limiterStore = dac.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst)
		logger.Info("Rate limiting enabled",
			zap.Float64("default_rate", cfg.DefaultRate),
			zap.Int("default_burst", cfg.DefaultBurst))
	}

	httpHostPort := cfg.HTTPHostPort
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":8000"
	}

	rs := &dacHttp.RestfulServer{
		Server:           gin.Default(),
		Dac:              &dacCore,
		RateLimiterStore: limiterStore,
		CorsOrigins:      cfg.CorsOrigins,
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
