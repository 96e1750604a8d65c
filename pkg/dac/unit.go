package dac

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dacops.xyz/dac-monitor-service/pkg/common"
	"dacops.xyz/dac-monitor-service/pkg/models"
)

func (d *DAC) createUnit(input *models.DacUnit) error {
	logger := common.GetLoggerWith(
		common.LoggerNameDACCore,
		zap.String(common.LoggerFieldDACCategory, common.LoggerCategoryDACUnit),
	)

	if err := d.Db.Conn.Create(input).Error; err != nil {
		return err
	}

	logger.Info("Created unit", zap.Reflect("unit", input))
	return nil
}

func (d *DAC) getUnit(unitID uuid.UUID) (*models.DacUnit, error) {
	var unit models.DacUnit
	err := d.Db.Conn.First(&unit, "id = ?", unitID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// listUnits keeps only the most-recently-updated row per (name, location)
// pair. Duplicate unit rows can exist after re-registration; readers should
// only ever see the newest one.
func (d *DAC) listUnits(skip, limit int) ([]models.DacUnit, error) {
	var units []models.DacUnit
	err := d.Db.Conn.Raw(`
		SELECT id, name, status, location, last_updated, created_at, updated_at
		FROM (
			SELECT *, ROW_NUMBER() OVER (
				PARTITION BY name, COALESCE(location, '')
				ORDER BY updated_at DESC
			) AS row_rank
			FROM dac_units
		) ranked
		WHERE row_rank = 1
		ORDER BY name, COALESCE(location, ''), updated_at DESC
		LIMIT ? OFFSET ?`, limit, skip,
	).Scan(&units).Error
	return units, err
}

func (d *DAC) updateUnitStatus(unitID uuid.UUID, status models.UnitStatus) (*models.DacUnit, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDACCore,
		zap.String(common.LoggerFieldDACCategory, common.LoggerCategoryDACUnit),
	)

	var unit models.DacUnit
	err := d.Db.RunInTransaction(func(tx *gorm.DB) error {
		if err := tx.First(&unit, "id = ?", unitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnitNotFound
			}
			return err
		}

		// Status and last_updated always change together.
		now := time.Now().UTC()
		unit.Status = status
		unit.LastUpdated = &now
		return tx.Save(&unit).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Updated unit status",
		zap.String("unit_id", unitID.String()),
		zap.String("status", string(status)))
	return &unit, nil
}

type IUnitImpl struct {
	dac *DAC
}

func (iu *IUnitImpl) CreateUnit(input *models.DacUnit) error {
	return iu.dac.createUnit(input)
}

func (iu *IUnitImpl) GetUnit(unitID uuid.UUID) (*models.DacUnit, error) {
	return iu.dac.getUnit(unitID)
}

func (iu *IUnitImpl) ListUnits(skip, limit int) ([]models.DacUnit, error) {
	return iu.dac.listUnits(skip, limit)
}

func (iu *IUnitImpl) UpdateUnitStatus(unitID uuid.UUID, status models.UnitStatus) (*models.DacUnit, error) {
	return iu.dac.updateUnitStatus(unitID, status)
}

func (d *DAC) GetIUnit() IUnit {
	return &IUnitImpl{dac: d}
}
