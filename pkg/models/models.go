package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnitStatus string

const (
	UnitStatusHealthy  UnitStatus = "healthy"
	UnitStatusWarning  UnitStatus = "warning"
	UnitStatusCritical UnitStatus = "critical"
)

func (s UnitStatus) Valid() bool {
	switch s {
	case UnitStatusHealthy, UnitStatusWarning, UnitStatusCritical:
		return true
	}
	return false
}

type SensorType string

const (
	SensorTypeCO2         SensorType = "co2"
	SensorTypeTemperature SensorType = "temperature"
	SensorTypeAirflow     SensorType = "airflow"
	SensorTypeEfficiency  SensorType = "efficiency"
)

func (s SensorType) Valid() bool {
	switch s {
	case SensorTypeCO2, SensorTypeTemperature, SensorTypeAirflow, SensorTypeEfficiency:
		return true
	}
	return false
}

// DefaultSensorTypes is the full set reported for units with no readings yet.
func DefaultSensorTypes() []SensorType {
	return []SensorType{SensorTypeCO2, SensorTypeTemperature, SensorTypeAirflow, SensorTypeEfficiency}
}

type TestRunStatus string

const (
	TestRunStatusPending   TestRunStatus = "pending"
	TestRunStatusRunning   TestRunStatus = "running"
	TestRunStatusCompleted TestRunStatus = "completed"
	TestRunStatusFailed    TestRunStatus = "failed"
)

func (s TestRunStatus) Valid() bool {
	switch s {
	case TestRunStatusPending, TestRunStatusRunning, TestRunStatusCompleted, TestRunStatusFailed:
		return true
	}
	return false
}

func (s TestRunStatus) Terminal() bool {
	return s == TestRunStatusCompleted || s == TestRunStatusFailed
}

// TestRunPatch is a manual override of run state. Nil fields are left as-is.
type TestRunPatch struct {
	Status      *TestRunStatus `json:"status"`
	CompletedAt *time.Time     `json:"completedAt"`
	Error       *string        `json:"error"`
}

type DacUnit struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Status      UnitStatus `gorm:"type:varchar(20);not null;check:status IN ('healthy','warning','critical')" json:"status"`
	Location    *string    `gorm:"size:255" json:"location"`
	LastUpdated *time.Time `json:"lastUpdated"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	SensorReadings []SensorReading `gorm:"foreignKey:UnitID" json:"-"`
	TestRuns       []TestRun       `gorm:"foreignKey:UnitID" json:"-"`
}

func (u *DacUnit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type SensorReading struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UnitID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"unitId"`
	SensorType SensorType `gorm:"type:varchar(20);not null;check:sensor_type IN ('co2','temperature','airflow','efficiency')" json:"sensorType"`
	Value      float64    `gorm:"not null" json:"value"`
	Unit       string     `gorm:"size:50;not null" json:"unit"`
	Timestamp  time.Time  `gorm:"not null;index" json:"timestamp"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (r *SensorReading) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type TestRun struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UnitID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"unitId"`
	Status      TestRunStatus `gorm:"type:varchar(20);not null;check:status IN ('pending','running','completed','failed')" json:"status"`
	StartedAt   time.Time     `gorm:"not null" json:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt"`
	Error       *string       `gorm:"type:text" json:"error"`
	CreatedAt   time.Time     `json:"createdAt"`

	Result *TestResult `gorm:"foreignKey:TestRunID" json:"result,omitempty"`
}

func (t *TestRun) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TestResult struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TestRunID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"testRunId"`
	Passed    bool      `gorm:"not null" json:"passed"`
	Summary   string    `gorm:"type:text;not null" json:"summary"`
	CreatedAt time.Time `json:"createdAt"`

	Metrics []TestMetric `gorm:"foreignKey:TestResultID" json:"metrics"`
}

func (r *TestResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type TestMetric struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TestResultID uuid.UUID `gorm:"type:uuid;not null;index" json:"testResultId"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Value        float64   `gorm:"not null" json:"value"`
	Unit         string    `gorm:"size:50;not null" json:"unit"`
	ThresholdMin *float64  `json:"thresholdMin"`
	ThresholdMax *float64  `json:"thresholdMax"`
}

func (m *TestMetric) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
