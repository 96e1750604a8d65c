package http

import (
	"net/http"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dacops.xyz/dac-monitor-service/pkg/models"
)

func (rs *RestfulServer) GetSensorReadings(c *gin.Context) {
	unitID, err := uuid.Parse(c.Query("unitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid unitId"})
		return
	}

	sensorType := models.SensorType(c.Query("sensorType"))
	if !sensorType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid sensorType"})
		return
	}

	startTime, err := time.Parse(time.RFC3339, c.Query("startTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid startTime"})
		return
	}

	endTime, err := time.Parse(time.RFC3339, c.Query("endTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid endTime"})
		return
	}

	readings, err := rs.Dac.Sensor.GetReadings(unitID, sensorType, startTime, endTime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetSensorTypes(c *gin.Context) {
	unitID, ok := parseUUIDParam(c, "unit_id")
	if !ok {
		return
	}

	types, err := rs.Dac.Sensor.GetSensorTypes(unitID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

type SensorReadingRequest struct {
	UnitID     string    `json:"unitId"`
	SensorType string    `json:"sensorType"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	Timestamp  time.Time `json:"timestamp"`
}

var sensorReadingRequestSchema = z.Struct(z.Shape{
	"UnitID":     z.String().Required(),
	"SensorType": z.String().Required(),
	"Value":      z.Float64().Required(),
	"Unit":       z.String().Required().Max(50),
	"Timestamp":  z.Time().Required(),
})

func (rs *RestfulServer) CreateSensorReading(c *gin.Context) {
	var req SensorReadingRequest
	if err := sensorReadingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid unitId"})
		return
	}

	sensorType := models.SensorType(req.SensorType)
	if !sensorType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid sensorType"})
		return
	}

	if containsUnsafeText(req.Unit) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid unit"})
		return
	}

	if !rs.CheckUnitLimiter(req.UnitID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	reading, err := rs.Dac.Sensor.CreateReading(&models.SensorReading{
		UnitID:     unitID,
		SensorType: sensorType,
		Value:      req.Value,
		Unit:       req.Unit,
		Timestamp:  req.Timestamp,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reading)
}
