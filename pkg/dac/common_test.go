package dac

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"dacops.xyz/dac-monitor-service/pkg/dac/mocks"
	"dacops.xyz/dac-monitor-service/pkg/db"
)

// Executor delays are shrunk to milliseconds so lifecycle tests finish fast.
var testExecutorOpts = ExecutorOpts{
	MinDelay: time.Millisecond,
	MaxDelay: 5 * time.Millisecond,
}

func GetMockDACWithMemorySqliteDialector(t *testing.T, useMockIUnit, useMockISensor, useMockITestRun bool) (
	*gomock.Controller,
	*DAC,
	*mocks.MockIUnit,
	*mocks.MockISensor,
	*mocks.MockITestRun,
) {
	ctrl := gomock.NewController(t)

	mockIUnit := mocks.NewMockIUnit(ctrl)
	mockISensor := mocks.NewMockISensor(ctrl)
	mockITestRun := mocks.NewMockITestRun(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	dacInstance := (&DAC{Db: *dbInstance})

	unitService := dacInstance.GetIUnit()
	if useMockIUnit {
		unitService = mockIUnit
	}

	sensorService := dacInstance.GetISensor()
	if useMockISensor {
		sensorService = mockISensor
	}

	testRunService := dacInstance.GetITestRun()
	if useMockITestRun {
		testRunService = mockITestRun
	}

	dacInstance.WithServices(ServiceOpts{
		Unit:     unitService,
		Sensor:   sensorService,
		TestRun:  testRunService,
		Executor: dacInstance.GetIExecutor(testExecutorOpts),
	})

	return ctrl, dacInstance, mockIUnit, mockISensor, mockITestRun
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
