package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"dacops.xyz/dac-monitor-service/pkg/dac"
)

type RestfulServer struct {
	Server           *gin.Engine
	Dac              *dac.DAC
	RateLimiterStore *dac.RateLimiterStore
	CorsOrigins      []string
}

func (rs *RestfulServer) GetLimiter(unitID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(unitID)
	}
}

func (rs *RestfulServer) CheckUnitLimiter(unitID string) bool {
	limiter := rs.GetLimiter(unitID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(unitID string, unitRate float64, unitBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(unitID, rate.Limit(unitRate), unitBurst)
}

func (rs *RestfulServer) Setup() {
	if len(rs.CorsOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = rs.CorsOrigins
		corsConfig.AllowCredentials = true
		rs.Server.Use(cors.New(corsConfig))
	}

	rs.Server.GET("/", rs.Root)
	rs.Server.GET("/health", rs.HealthCheck)

	api := rs.Server.Group("/api")

	units := api.Group("/units")
	{
		units.GET("", rs.GetUnits)
		units.GET("/:unit_id", rs.GetUnit)
		units.PATCH("/:unit_id/status", rs.UpdateUnitStatus)
	}

	sensors := api.Group("/sensors")
	{
		sensors.GET("/readings", rs.GetSensorReadings)
		sensors.GET("/types/:unit_id", rs.GetSensorTypes)
		sensors.POST("/readings", rs.CreateSensorReading)
	}

	tests := api.Group("/tests")
	{
		tests.GET("/runs", rs.GetTestRuns)
		tests.POST("/runs", rs.CreateTestRun)
		tests.GET("/runs/:run_id", rs.GetTestRun)
		tests.PATCH("/runs/:run_id/status", rs.UpdateTestRunStatus)
		tests.POST("/runs/:run_id/results", rs.CreateTestResult)
	}
}

func (rs *RestfulServer) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "DAC Monitor API"})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	if err := rs.Dac.Db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
}
