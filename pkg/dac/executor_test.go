package dac

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dacops.xyz/dac-monitor-service/pkg/common"
	"dacops.xyz/dac-monitor-service/pkg/dac/mocks"
	"dacops.xyz/dac-monitor-service/pkg/models"
	_ "dacops.xyz/dac-monitor-service/pkg/testing"
)

func passingObservations() map[string]float64 {
	return map[string]float64{
		ObsCaptureRate: 85.25,
		ObsEfficiency:  92.0,
		ObsPressure:    1.234,
	}
}

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name         string
		observations map[string]float64
		wantPassed   bool
	}{
		{
			name:         "all within bands",
			observations: passingObservations(),
			wantPassed:   true,
		},
		{
			name: "boundary values are inclusive",
			observations: map[string]float64{
				ObsCaptureRate: 70.0,
				ObsEfficiency:  100.0,
				ObsPressure:    2.0,
			},
			wantPassed: true,
		},
		{
			name: "lower pressure boundary",
			observations: map[string]float64{
				ObsCaptureRate: 100.0,
				ObsEfficiency:  80.0,
				ObsPressure:    0.8,
			},
			wantPassed: true,
		},
		{
			name: "capture rate below band",
			observations: map[string]float64{
				ObsCaptureRate: 69.9,
				ObsEfficiency:  90.0,
				ObsPressure:    1.0,
			},
			wantPassed: false,
		},
		{
			name: "efficiency below band",
			observations: map[string]float64{
				ObsCaptureRate: 85.0,
				ObsEfficiency:  79.9,
				ObsPressure:    1.0,
			},
			wantPassed: false,
		},
		{
			name: "pressure above band",
			observations: map[string]float64{
				ObsCaptureRate: 85.0,
				ObsEfficiency:  90.0,
				ObsPressure:    2.01,
			},
			wantPassed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := evaluateThresholds(tt.observations)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPassed, outcome.Passed)
			if tt.wantPassed {
				assert.Equal(t, "All systems operating within normal parameters.", outcome.Summary)
			} else {
				assert.Equal(t, "Some metrics exceeded acceptable thresholds.", outcome.Summary)
			}
			require.Len(t, outcome.Metrics, 3)
		})
	}
}

func TestEvaluateThresholds_MetricShape(t *testing.T) {
	outcome, err := evaluateThresholds(passingObservations())
	require.NoError(t, err)

	byName := map[string]models.TestMetric{}
	for _, m := range outcome.Metrics {
		byName[m.Name] = m
	}

	capture, ok := byName["CO₂ Capture Rate"]
	require.True(t, ok)
	assert.Equal(t, 85.3, capture.Value, "rounded to one decimal")
	assert.Equal(t, "%", capture.Unit)
	require.NotNil(t, capture.ThresholdMin)
	require.NotNil(t, capture.ThresholdMax)
	assert.Equal(t, 70.0, *capture.ThresholdMin)
	assert.Equal(t, 100.0, *capture.ThresholdMax)

	efficiency, ok := byName["Energy Efficiency"]
	require.True(t, ok)
	assert.Equal(t, 92.0, efficiency.Value)
	assert.Equal(t, "%", efficiency.Unit)

	pressure, ok := byName["System Pressure"]
	require.True(t, ok)
	assert.Equal(t, 1.23, pressure.Value, "rounded to two decimals")
	assert.Equal(t, "bar", pressure.Unit)
	require.NotNil(t, pressure.ThresholdMin)
	assert.Equal(t, 0.8, *pressure.ThresholdMin)
	assert.Equal(t, 2.0, *pressure.ThresholdMax)
}

func TestEvaluateThresholds_MissingObservation(t *testing.T) {
	observations := passingObservations()
	delete(observations, ObsPressure)

	_, err := evaluateThresholds(observations)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ObsPressure)
}

func TestEvaluateThresholds_ComparesBeforeRounding(t *testing.T) {
	// 69.96 rounds to 70.0 but still sits below the band.
	observations := passingObservations()
	observations[ObsCaptureRate] = 69.96

	outcome, err := evaluateThresholds(observations)
	require.NoError(t, err)
	assert.False(t, outcome.Passed)
	for _, m := range outcome.Metrics {
		if m.Name == "CO₂ Capture Rate" {
			assert.Equal(t, 70.0, m.Value)
		}
	}
}

func TestExecute_CompletesRunWithResult(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, dacObj, _, _, _ := GetMockDACWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockCollector(ctrl)
	mockCollector.EXPECT().
		Collect(gomock.Any()).
		Return(passingObservations(), nil).
		Times(1)

	executor := dacObj.GetIExecutor(ExecutorOpts{
		Collector: mockCollector,
		MinDelay:  testExecutorOpts.MinDelay,
		MaxDelay:  testExecutorOpts.MaxDelay,
	})

	unit := createTestUnit(t, dacObj)
	run, err := dacObj.TestRun.CreateRun(unit.ID)
	require.NoError(t, err)

	executor.Execute(run.ID, unit.ID)

	saved, err := dacObj.TestRun.GetRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TestRunStatusCompleted, saved.Status)
	require.NotNil(t, saved.CompletedAt)
	assert.Nil(t, saved.Error)
	require.NotNil(t, saved.Result)
	assert.True(t, saved.Result.Passed)
	assert.Len(t, saved.Result.Metrics, 3)
}

func TestExecute_FailedThresholdsStillComplete(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, dacObj, _, _, _ := GetMockDACWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	observations := passingObservations()
	observations[ObsEfficiency] = 50.0

	mockCollector := mocks.NewMockCollector(ctrl)
	mockCollector.EXPECT().
		Collect(gomock.Any()).
		Return(observations, nil).
		Times(1)

	executor := dacObj.GetIExecutor(ExecutorOpts{
		Collector: mockCollector,
		MinDelay:  testExecutorOpts.MinDelay,
		MaxDelay:  testExecutorOpts.MaxDelay,
	})

	unit := createTestUnit(t, dacObj)
	run, err := dacObj.TestRun.CreateRun(unit.ID)
	require.NoError(t, err)

	executor.Execute(run.ID, unit.ID)

	// Threshold violations are a completed run with a failing result,
	// not a failed run.
	saved, err := dacObj.TestRun.GetRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TestRunStatusCompleted, saved.Status)
	require.NotNil(t, saved.Result)
	assert.False(t, saved.Result.Passed)
	assert.Equal(t, "Some metrics exceeded acceptable thresholds.", saved.Result.Summary)
}

func TestExecute_CollectorErrorMarksRunFailed(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, dacObj, _, _, _ := GetMockDACWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockCollector(ctrl)
	mockCollector.EXPECT().
		Collect(gomock.Any()).
		Return(nil, errors.New("sensor bus timeout")).
		Times(1)

	executor := dacObj.GetIExecutor(ExecutorOpts{
		Collector: mockCollector,
		MinDelay:  testExecutorOpts.MinDelay,
		MaxDelay:  testExecutorOpts.MaxDelay,
	})

	unit := createTestUnit(t, dacObj)
	run, err := dacObj.TestRun.CreateRun(unit.ID)
	require.NoError(t, err)

	executor.Execute(run.ID, unit.ID)

	saved, err := dacObj.TestRun.GetRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TestRunStatusFailed, saved.Status)
	require.NotNil(t, saved.CompletedAt)
	require.NotNil(t, saved.Error)
	assert.Equal(t, "sensor bus timeout", *saved.Error)
	assert.Nil(t, saved.Result)
}

func TestExecute_VanishedRunIsNoOp(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, dacObj, _, _, _ := GetMockDACWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	// The collector must never be consulted for a run that does not exist.
	mockCollector := mocks.NewMockCollector(ctrl)
	mockCollector.EXPECT().Collect(gomock.Any()).Times(0)

	executor := dacObj.GetIExecutor(ExecutorOpts{
		Collector: mockCollector,
		MinDelay:  testExecutorOpts.MinDelay,
		MaxDelay:  testExecutorOpts.MaxDelay,
	})

	executor.Execute(uuid.New(), uuid.New())
}

func TestExecute_DefaultOpts(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, dacObj, _, _, _ := GetMockDACWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	executor := dacObj.GetIExecutor(ExecutorOpts{})
	impl, ok := executor.(*IExecutorImpl)
	require.True(t, ok)
	assert.IsType(t, SimulatedCollector{}, impl.opts.Collector)
	assert.Greater(t, impl.opts.MaxDelay, impl.opts.MinDelay)
}

func TestSimulatedCollector_ProducesAllObservations(t *testing.T) {
	observations, err := SimulatedCollector{}.Collect(uuid.New())
	require.NoError(t, err)

	require.Contains(t, observations, ObsCaptureRate)
	require.Contains(t, observations, ObsEfficiency)
	require.Contains(t, observations, ObsPressure)

	assert.GreaterOrEqual(t, observations[ObsCaptureRate], 70.0)
	assert.LessOrEqual(t, observations[ObsCaptureRate], 95.0)
	assert.GreaterOrEqual(t, observations[ObsEfficiency], 75.0)
	assert.LessOrEqual(t, observations[ObsEfficiency], 98.0)
	assert.GreaterOrEqual(t, observations[ObsPressure], 0.8)
	assert.LessOrEqual(t, observations[ObsPressure], 2.0)
}
