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

func (d *DAC) createRun(unitID uuid.UUID) (*models.TestRun, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDACCore,
		zap.String(common.LoggerFieldDACCategory, common.LoggerCategoryDACTest),
	)

	if _, err := d.getUnit(unitID); err != nil {
		return nil, err
	}

	run := models.TestRun{
		UnitID:    unitID,
		Status:    models.TestRunStatusPending,
		StartedAt: time.Now().UTC(),
	}

	err := d.Db.RunInTransaction(func(tx *gorm.DB) error {
		return tx.Create(&run).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Created test run",
		zap.String("test_run_id", run.ID.String()),
		zap.String("unit_id", unitID.String()))
	return &run, nil
}

func (d *DAC) getRun(runID uuid.UUID) (*models.TestRun, error) {
	var run models.TestRun
	err := d.Db.Conn.
		Preload("Result.Metrics").
		First(&run, "id = ?", runID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTestRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (d *DAC) listRuns(unitID *uuid.UUID, skip, limit int) ([]models.TestRun, error) {
	query := d.Db.Conn.Preload("Result.Metrics")
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}

	var runs []models.TestRun
	err := query.
		Order("started_at desc").
		Offset(skip).
		Limit(limit).
		Find(&runs).Error
	return runs, err
}

// patchRunStatus is a manual override of run state. It does no version
// checking against the executor's own transitions; the last writer wins.
func (d *DAC) patchRunStatus(runID uuid.UUID, patch models.TestRunPatch) (*models.TestRun, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDACCore,
		zap.String(common.LoggerFieldDACCategory, common.LoggerCategoryDACTest),
	)

	var run models.TestRun
	err := d.Db.RunInTransaction(func(tx *gorm.DB) error {
		if err := tx.First(&run, "id = ?", runID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTestRunNotFound
			}
			return err
		}

		if patch.Status != nil {
			run.Status = *patch.Status
		}

		if patch.CompletedAt != nil {
			run.CompletedAt = patch.CompletedAt
		} else if patch.Status != nil && patch.Status.Terminal() {
			now := time.Now().UTC()
			run.CompletedAt = &now
		}

		if patch.Error != nil {
			run.Error = patch.Error
		}

		return tx.Save(&run).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Patched test run status",
		zap.String("test_run_id", runID.String()),
		zap.String("status", string(run.Status)))
	return &run, nil
}

func (d *DAC) createResult(runID uuid.UUID, input *models.TestResult) (*models.TestResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDACCore,
		zap.String(common.LoggerFieldDACCategory, common.LoggerCategoryDACTest),
	)

	result := models.TestResult{
		TestRunID: runID,
		Passed:    input.Passed,
		Summary:   input.Summary,
		Metrics:   input.Metrics,
	}

	err := d.Db.RunInTransaction(func(tx *gorm.DB) error {
		var run models.TestRun
		if err := tx.Preload("Result").First(&run, "id = ?", runID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTestRunNotFound
			}
			return err
		}

		if run.Result != nil {
			return ErrResultExists
		}

		// The result row and all its metric rows commit together.
		return tx.Create(&result).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Created test result",
		zap.String("test_run_id", runID.String()),
		zap.Bool("passed", result.Passed))
	return &result, nil
}

type ITestRunImpl struct {
	dac *DAC
}

func (it *ITestRunImpl) CreateRun(unitID uuid.UUID) (*models.TestRun, error) {
	return it.dac.createRun(unitID)
}

func (it *ITestRunImpl) GetRun(runID uuid.UUID) (*models.TestRun, error) {
	return it.dac.getRun(runID)
}

func (it *ITestRunImpl) ListRuns(unitID *uuid.UUID, skip, limit int) ([]models.TestRun, error) {
	return it.dac.listRuns(unitID, skip, limit)
}

func (it *ITestRunImpl) PatchRunStatus(runID uuid.UUID, patch models.TestRunPatch) (*models.TestRun, error) {
	return it.dac.patchRunStatus(runID, patch)
}

func (it *ITestRunImpl) CreateResult(runID uuid.UUID, input *models.TestResult) (*models.TestResult, error) {
	return it.dac.createResult(runID, input)
}

func (d *DAC) GetITestRun() ITestRun {
	return &ITestRunImpl{dac: d}
}
