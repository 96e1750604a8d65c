package dac

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dacops.xyz/dac-monitor-service/pkg/common"
	"dacops.xyz/dac-monitor-service/pkg/models"
)

func (d *DAC) createReading(input *models.SensorReading) (*models.SensorReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDACCore,
		zap.String(common.LoggerFieldDACCategory, common.LoggerCategoryDACSensor),
	)

	if _, err := d.getUnit(input.UnitID); err != nil {
		return nil, err
	}

	reading := models.SensorReading{
		UnitID:     input.UnitID,
		SensorType: input.SensorType,
		Value:      input.Value,
		Unit:       input.Unit,
		Timestamp:  input.Timestamp,
	}

	err := d.Db.RunInTransaction(func(tx *gorm.DB) error {
		return tx.Create(&reading).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Created sensor reading", zap.Reflect("reading", reading))
	return &reading, nil
}

// getReadings returns readings for one unit and sensor type inside the
// inclusive [start, end] window, ordered by timestamp ascending.
func (d *DAC) getReadings(unitID uuid.UUID, sensorType models.SensorType, start, end time.Time) ([]models.SensorReading, error) {
	if _, err := d.getUnit(unitID); err != nil {
		return nil, err
	}

	var readings []models.SensorReading
	err := d.Db.Conn.
		Where("unit_id = ? AND sensor_type = ? AND timestamp >= ? AND timestamp <= ?",
			unitID, sensorType, start, end).
		Order("timestamp").
		Find(&readings).Error
	return readings, err
}

func (d *DAC) getSensorTypes(unitID uuid.UUID) ([]models.SensorType, error) {
	if _, err := d.getUnit(unitID); err != nil {
		return nil, err
	}

	var types []models.SensorType
	err := d.Db.Conn.
		Model(&models.SensorReading{}).
		Where("unit_id = ?", unitID).
		Distinct().
		Pluck("sensor_type", &types).Error
	if err != nil {
		return nil, err
	}

	if len(types) == 0 {
		return models.DefaultSensorTypes(), nil
	}
	return types, nil
}

type ISensorImpl struct {
	dac *DAC
}

func (is *ISensorImpl) CreateReading(input *models.SensorReading) (*models.SensorReading, error) {
	return is.dac.createReading(input)
}

func (is *ISensorImpl) GetReadings(unitID uuid.UUID, sensorType models.SensorType, start, end time.Time) ([]models.SensorReading, error) {
	return is.dac.getReadings(unitID, sensorType, start, end)
}

func (is *ISensorImpl) GetSensorTypes(unitID uuid.UUID) ([]models.SensorType, error) {
	return is.dac.getSensorTypes(unitID)
}

func (d *DAC) GetISensor() ISensor {
	return &ISensorImpl{dac: d}
}
