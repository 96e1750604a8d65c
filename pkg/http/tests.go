package http

import (
	"net/http"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dacops.xyz/dac-monitor-service/pkg/common"
	"dacops.xyz/dac-monitor-service/pkg/models"
)

func (rs *RestfulServer) GetTestRuns(c *gin.Context) {
	skip, limit := parsePagination(c)

	var unitID *uuid.UUID
	if raw := c.Query("unitId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid unitId"})
			return
		}
		unitID = &id
	}

	runs, err := rs.Dac.TestRun.ListRuns(unitID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, runs)
}

type TestRunCreateRequest struct {
	UnitID string `json:"unitId"`
}

var testRunCreateRequestSchema = z.Struct(z.Shape{
	"UnitID": z.String().Required(),
})

func (rs *RestfulServer) CreateTestRun(c *gin.Context) {
	var req TestRunCreateRequest
	if err := testRunCreateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid unitId"})
		return
	}

	if !rs.CheckUnitLimiter(req.UnitID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	run, err := rs.Dac.TestRun.CreateRun(unitID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Fire-and-forget: the executor owns its own store transactions and
	// outlives this request. Scheduled exactly once, here.
	go rs.Dac.Executor.Execute(run.ID, run.UnitID)

	c.JSON(http.StatusOK, run)
}

func (rs *RestfulServer) GetTestRun(c *gin.Context) {
	runID, ok := parseUUIDParam(c, "run_id")
	if !ok {
		return
	}

	run, err := rs.Dac.TestRun.GetRun(runID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, run)
}

type TestRunUpdateRequest struct {
	Status      string    `json:"status"`
	CompletedAt time.Time `json:"completedAt"`
	Error       string    `json:"error"`
}

var testRunUpdateRequestSchema = z.Struct(z.Shape{
	"Status":      z.String(),
	"CompletedAt": z.Time(),
	"Error":       z.String().Max(maxFreeTextLen),
})

func (rs *RestfulServer) UpdateTestRunStatus(c *gin.Context) {
	runID, ok := parseUUIDParam(c, "run_id")
	if !ok {
		return
	}

	var req TestRunUpdateRequest
	if err := testRunUpdateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	var patch models.TestRunPatch

	if req.Status != "" {
		status := models.TestRunStatus(req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid status"})
			return
		}
		patch.Status = &status
	}

	if !req.CompletedAt.IsZero() {
		patch.CompletedAt = &req.CompletedAt
	}

	if req.Error != "" {
		if containsUnsafeText(req.Error) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid error text"})
			return
		}
		patch.Error = &req.Error
	}

	run, err := rs.Dac.TestRun.PatchRunStatus(runID, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, run)
}

type TestMetricRequest struct {
	Name         string   `json:"name"`
	Value        float64  `json:"value"`
	Unit         string   `json:"unit"`
	ThresholdMin *float64 `json:"thresholdMin"`
	ThresholdMax *float64 `json:"thresholdMax"`
}

type TestResultCreateRequest struct {
	Passed  bool                `json:"passed"`
	Summary string              `json:"summary"`
	Metrics []TestMetricRequest `json:"metrics"`
}

func (rs *RestfulServer) CreateTestResult(c *gin.Context) {
	runID, ok := parseUUIDParam(c, "run_id")
	if !ok {
		return
	}

	var req TestResultCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	if !validFreeText(req.Summary, maxFreeTextLen) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid summary"})
		return
	}

	for _, metric := range req.Metrics {
		if !validFreeText(metric.Name, maxNameLen) || !validFreeText(metric.Unit, 50) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid metric"})
			return
		}
	}

	metrics := common.Mapper(req.Metrics, func(m TestMetricRequest) models.TestMetric {
		return models.TestMetric{
			Name:         m.Name,
			Value:        m.Value,
			Unit:         m.Unit,
			ThresholdMin: m.ThresholdMin,
			ThresholdMax: m.ThresholdMax,
		}
	})

	result, err := rs.Dac.TestRun.CreateResult(runID, &models.TestResult{
		Passed:  req.Passed,
		Summary: req.Summary,
		Metrics: metrics,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
