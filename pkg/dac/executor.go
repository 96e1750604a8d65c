package dac

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dacops.xyz/dac-monitor-service/pkg/common"
	"dacops.xyz/dac-monitor-service/pkg/models"
)

// Observation keys produced by a Collector.
const (
	ObsCaptureRate = "co2_capture_rate"
	ObsEfficiency  = "energy_efficiency"
	ObsPressure    = "system_pressure"
)

// Collector is the extension point for swapping in a real sensor-polling
// client: it returns a mapping of named numeric observations, or fails.
type Collector interface {
	Collect(unitID uuid.UUID) (map[string]float64, error)
}

// SimulatedCollector draws observations from fixed ranges in place of real
// sensor polling.
type SimulatedCollector struct{}

func (SimulatedCollector) Collect(unitID uuid.UUID) (map[string]float64, error) {
	return map[string]float64{
		ObsCaptureRate: 70 + rand.Float64()*25,
		ObsEfficiency:  75 + rand.Float64()*23,
		ObsPressure:    0.8 + rand.Float64()*1.2,
	}, nil
}

const (
	summaryPassed = "All systems operating within normal parameters."
	summaryFailed = "Some metrics exceeded acceptable thresholds."
)

type metricSpec struct {
	key      string
	name     string
	unit     string
	min      float64
	max      float64
	decimals int
}

var metricSpecs = []metricSpec{
	{key: ObsCaptureRate, name: "CO₂ Capture Rate", unit: "%", min: 70, max: 100, decimals: 1},
	{key: ObsEfficiency, name: "Energy Efficiency", unit: "%", min: 80, max: 100, decimals: 1},
	{key: ObsPressure, name: "System Pressure", unit: "bar", min: 0.8, max: 2.0, decimals: 2},
}

type testOutcome struct {
	Passed  bool
	Summary string
	Metrics []models.TestMetric
}

// evaluateThresholds checks every observation against its inclusive band.
// Comparison happens pre-rounding; stored values are rounded for display.
func evaluateThresholds(observations map[string]float64) (*testOutcome, error) {
	for _, spec := range metricSpecs {
		if _, ok := observations[spec.key]; !ok {
			return nil, fmt.Errorf("missing observation: %s", spec.key)
		}
	}

	passed := common.Reducer(metricSpecs, func(acc bool, spec metricSpec) bool {
		value := observations[spec.key]
		return acc && value >= spec.min && value <= spec.max
	}, true)

	metrics := common.Mapper(metricSpecs, func(spec metricSpec) models.TestMetric {
		thresholdMin, thresholdMax := spec.min, spec.max
		return models.TestMetric{
			Name:         spec.name,
			Value:        roundTo(observations[spec.key], spec.decimals),
			Unit:         spec.unit,
			ThresholdMin: &thresholdMin,
			ThresholdMax: &thresholdMax,
		}
	})

	summary := summaryFailed
	if passed {
		summary = summaryPassed
	}

	return &testOutcome{Passed: passed, Summary: summary, Metrics: metrics}, nil
}

func roundTo(value float64, decimals int) float64 {
	multiplier := math.Pow10(decimals)
	return math.Round(value*multiplier) / multiplier
}

// ExecutorOpts configures the executor. Zero values pick the production
// defaults: simulated collection with a 2-5s latency window.
type ExecutorOpts struct {
	Collector Collector
	MinDelay  time.Duration
	MaxDelay  time.Duration
}

type IExecutorImpl struct {
	dac  *DAC
	opts ExecutorOpts
}

func (d *DAC) GetIExecutor(opts ExecutorOpts) IExecutor {
	if opts.Collector == nil {
		opts.Collector = SimulatedCollector{}
	}
	if opts.MinDelay == 0 {
		opts.MinDelay = 2 * time.Second
	}
	if opts.MaxDelay == 0 {
		opts.MaxDelay = 5 * time.Second
	}
	return &IExecutorImpl{dac: d, opts: opts}
}

// Execute drives one test run from pending to a terminal state. It runs
// out-of-band from the request that created the run and opens its own
// transactions on the store. Errors are never propagated; a failing run is
// transitioned to failed on a best-effort basis.
func (e *IExecutorImpl) Execute(testRunID uuid.UUID, unitID uuid.UUID) {
	logger := common.GetLoggerWith(
		common.LoggerNameExecutor,
		zap.String("test_run_id", testRunID.String()),
		zap.String("unit_id", unitID.String()),
	)

	logger.Info("Starting test execution")

	var run models.TestRun
	if err := e.dac.Db.Conn.First(&run, "id = ?", testRunID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Race with deletion: nothing to do and no state to change.
			logger.Warn("Test run not found, aborting")
			return
		}
		logger.Error("Failed to load test run", zap.Error(err))
		e.markFailed(testRunID, err, logger)
		return
	}

	// Simulated collection latency; the run sits in pending for this window.
	time.Sleep(e.randomDelay())

	vanished, err := e.transitionToRunning(testRunID)
	if vanished {
		logger.Warn("Test run not found during status update, aborting")
		return
	}
	if err != nil {
		logger.Error("Failed to transition test run to running", zap.Error(err))
		e.markFailed(testRunID, err, logger)
		return
	}

	logger.Debug("Test run status updated to running")

	observations, err := e.opts.Collector.Collect(unitID)
	if err != nil {
		logger.Error("Sensor data collection failed", zap.Error(err))
		e.markFailed(testRunID, err, logger)
		return
	}

	outcome, err := evaluateThresholds(observations)
	if err != nil {
		logger.Error("Failed to evaluate observations", zap.Error(err))
		e.markFailed(testRunID, err, logger)
		return
	}

	vanished, err = e.commitResult(testRunID, outcome)
	if vanished {
		logger.Warn("Test run not found during result creation, aborting")
		return
	}
	if err != nil {
		logger.Error("Failed to commit test result", zap.Error(err))
		e.markFailed(testRunID, err, logger)
		return
	}

	logger.Info("Test execution completed successfully", zap.Bool("passed", outcome.Passed))
}

func (e *IExecutorImpl) randomDelay() time.Duration {
	window := e.opts.MaxDelay - e.opts.MinDelay
	if window <= 0 {
		return e.opts.MinDelay
	}
	return e.opts.MinDelay + time.Duration(rand.Int63n(int64(window)))
}

func (e *IExecutorImpl) transitionToRunning(testRunID uuid.UUID) (vanished bool, err error) {
	err = e.dac.Db.RunInTransaction(func(tx *gorm.DB) error {
		var run models.TestRun
		if err := tx.First(&run, "id = ?", testRunID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				vanished = true
				return nil
			}
			return err
		}
		return tx.Model(&run).Update("status", models.TestRunStatusRunning).Error
	})
	return vanished, err
}

// commitResult inserts the result with its metric rows and marks the run
// completed, all in one transaction.
func (e *IExecutorImpl) commitResult(testRunID uuid.UUID, outcome *testOutcome) (vanished bool, err error) {
	err = e.dac.Db.RunInTransaction(func(tx *gorm.DB) error {
		var run models.TestRun
		if err := tx.First(&run, "id = ?", testRunID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				vanished = true
				return nil
			}
			return err
		}

		result := models.TestResult{
			TestRunID: testRunID,
			Passed:    outcome.Passed,
			Summary:   outcome.Summary,
			Metrics:   outcome.Metrics,
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		return tx.Model(&run).Updates(map[string]any{
			"status":       models.TestRunStatusCompleted,
			"completed_at": time.Now().UTC(),
		}).Error
	})
	return vanished, err
}

// markFailed is the best-effort failure transition. If it fails too, the
// error is logged and swallowed; the run may be left stuck in a non-terminal
// state with no retry or timeout.
func (e *IExecutorImpl) markFailed(testRunID uuid.UUID, cause error, logger *zap.Logger) {
	err := e.dac.Db.RunInTransaction(func(tx *gorm.DB) error {
		var run models.TestRun
		if err := tx.First(&run, "id = ?", testRunID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return tx.Model(&run).Updates(map[string]any{
			"status":       models.TestRunStatusFailed,
			"error":        cause.Error(),
			"completed_at": time.Now().UTC(),
		}).Error
	})
	if err != nil {
		logger.Error("Failed to update test run status to failed", zap.Error(err))
	}
}
