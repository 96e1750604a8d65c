// Seeds the store with sample units and 24 hours of sensor readings, for
// local development against the dashboard frontend.
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"dacops.xyz/dac-monitor-service/pkg/common"
	"dacops.xyz/dac-monitor-service/pkg/db"
	"dacops.xyz/dac-monitor-service/pkg/models"
)

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

type sensorProfile struct {
	base      float64
	variation float64
	unit      string
}

var sensorProfiles = map[models.SensorType]sensorProfile{
	models.SensorTypeCO2:         {base: 420, variation: 50, unit: "ppm"},
	models.SensorTypeTemperature: {base: 25, variation: 5, unit: "°C"},
	models.SensorTypeAirflow:     {base: 45, variation: 10, unit: "m³/s"},
	models.SensorTypeEfficiency:  {base: 85, variation: 8, unit: "%"},
}

func main() {
	_ = godotenv.Load()

	var dbInstance *db.DB
	switch dbType := os.Getenv(common.EnvKeyDACDBType); dbType {
	case "", "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector(os.Getenv(common.EnvKeyDACPostgresDSN)))
	default:
		log.Fatal("Unknown DAC_DB_TYPE: " + dbType)
	}

	now := time.Now().UTC()
	units := []models.DacUnit{
		sampleUnit("DAC Unit Alpha", models.UnitStatusHealthy, "Building A, Floor 2", now),
		sampleUnit("DAC Unit Beta", models.UnitStatusWarning, "Building A, Floor 3", now.Add(-1*time.Hour)),
		sampleUnit("DAC Unit Gamma", models.UnitStatusHealthy, "Building B, Floor 1", now.Add(-30*time.Minute)),
		sampleUnit("DAC Unit Delta", models.UnitStatusCritical, "Building B, Floor 2", now.Add(-2*time.Hour)),
	}

	for i := range units {
		if err := dbInstance.Conn.Create(&units[i]).Error; err != nil {
			log.Fatal("Failed to create unit: ", err)
		}
	}

	startTime := now.Add(-24 * time.Hour)
	interval := 5 * time.Minute

	var readings []models.SensorReading
	for current := startTime; !current.After(now); current = current.Add(interval) {
		for i := range units {
			for sensorType, profile := range sensorProfiles {
				trend := math.Sin(current.Sub(startTime).Hours()) * 0.3
				variation := (rnd.Float64() - 0.5) * profile.variation
				value := math.Max(0, profile.base+trend*profile.variation+variation)

				readings = append(readings, models.SensorReading{
					UnitID:     units[i].ID,
					SensorType: sensorType,
					Value:      value,
					Unit:       profile.unit,
					Timestamp:  current,
				})
			}
		}
	}

	if err := dbInstance.Conn.CreateInBatches(readings, 500).Error; err != nil {
		log.Fatal("Failed to create sensor readings: ", err)
	}

	fmt.Printf("seeded %v units and %v sensor readings\n", len(units), len(readings))
}

func sampleUnit(name string, status models.UnitStatus, location string, lastUpdated time.Time) models.DacUnit {
	return models.DacUnit{
		Name:        name,
		Status:      status,
		Location:    &location,
		LastUpdated: &lastUpdated,
	}
}
