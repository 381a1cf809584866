package models

import (
	"fmt"
	"time"
)

// StressLevel is one of the three classification labels produced by the
// external predictive model. The underlying values are the literals of the
// source system and must stay byte-exact; business logic only ever touches
// the constants, never the literal text.
type StressLevel string

const (
	StressLevelLow    StressLevel = "Низкий уровень стресса"
	StressLevelMedium StressLevel = "Средний уровень стресса"
	StressLevelHigh   StressLevel = "Высокий уровень стресса"
)

// StressLevels lists the closed set in ascending severity order.
func StressLevels() []StressLevel {
	return []StressLevel{StressLevelLow, StressLevelMedium, StressLevelHigh}
}

// Label returns the stored literal for boundary serialization.
func (s StressLevel) Label() string {
	return string(s)
}

// Valid reports whether s belongs to the enumerated set. Write-path code does
// not call this; the store's CHECK constraint is the source of truth.
func (s StressLevel) Valid() bool {
	switch s {
	case StressLevelLow, StressLevelMedium, StressLevelHigh:
		return true
	}
	return false
}

// ParseStressLevel maps a boundary string onto the closed set.
func ParseStressLevel(label string) (StressLevel, error) {
	level := StressLevel(label)
	if !level.Valid() {
		return "", fmt.Errorf("unknown stress level %q", label)
	}
	return level, nil
}

// StressPrediction is one logged classification. The prediction_date is
// assigned at insertion time, never by the caller, so log order reflects
// actual recording time.
type StressPrediction struct {
	StressPredictionID int         `gorm:"column:stress_prediction_id;primaryKey;autoIncrement"                                                                                                                                        json:"-"`
	WorkerID           int         `gorm:"column:worker_id;not null;index"                                                                                                                                                             json:"-"`
	StressLevel        StressLevel `gorm:"column:stress_level;type:varchar(100);not null;check:chk_stress_predictions_stress_level,stress_level IN ('Низкий уровень стресса','Средний уровень стресса','Высокий уровень стресса')"     json:"stress_level"`
	// Write-protected: the column is filled by the store's DEFAULT at insert,
	// so a caller-supplied value can never spoof the log order.
	PredictionDate time.Time `gorm:"column:prediction_date;not null;default:CURRENT_TIMESTAMP;->" json:"prediction_date"`
}

func (StressPrediction) TableName() string {
	return "stress_predictions"
}
