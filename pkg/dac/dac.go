package dac

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"dacops.xyz/dac-monitor-service/pkg/db"
	"dacops.xyz/dac-monitor-service/pkg/models"
)

var (
	ErrUnitNotFound    = errors.New("unit not found")
	ErrTestRunNotFound = errors.New("test run not found")
	ErrResultExists    = errors.New("test result already exists")
)

type IUnit interface {
	CreateUnit(input *models.DacUnit) error
	GetUnit(unitID uuid.UUID) (*models.DacUnit, error)
	ListUnits(skip, limit int) ([]models.DacUnit, error)
	UpdateUnitStatus(unitID uuid.UUID, status models.UnitStatus) (*models.DacUnit, error)
}

type ISensor interface {
	CreateReading(input *models.SensorReading) (*models.SensorReading, error)
	GetReadings(unitID uuid.UUID, sensorType models.SensorType, start, end time.Time) ([]models.SensorReading, error)
	GetSensorTypes(unitID uuid.UUID) ([]models.SensorType, error)
}

type ITestRun interface {
	CreateRun(unitID uuid.UUID) (*models.TestRun, error)
	GetRun(runID uuid.UUID) (*models.TestRun, error)
	ListRuns(unitID *uuid.UUID, skip, limit int) ([]models.TestRun, error)
	PatchRunStatus(runID uuid.UUID, patch models.TestRunPatch) (*models.TestRun, error)
	CreateResult(runID uuid.UUID, input *models.TestResult) (*models.TestResult, error)
}

// IExecutor drives one test run to a terminal state. Execute is scheduled
// exactly once per run, at creation time, and has no caller to report to.
type IExecutor interface {
	Execute(testRunID uuid.UUID, unitID uuid.UUID)
}

type DAC struct {
	Db       db.DB
	Unit     IUnit
	Sensor   ISensor
	TestRun  ITestRun
	Executor IExecutor
}

type ServiceOpts struct {
	Unit     IUnit
	Sensor   ISensor
	TestRun  ITestRun
	Executor IExecutor
}

func (d *DAC) WithServices(opts ServiceOpts) *DAC {
	if opts.Unit != nil {
		d.Unit = opts.Unit
	}
	if opts.Sensor != nil {
		d.Sensor = opts.Sensor
	}
	if opts.TestRun != nil {
		d.TestRun = opts.TestRun
	}
	if opts.Executor != nil {
		d.Executor = opts.Executor
	}
	return d
}
