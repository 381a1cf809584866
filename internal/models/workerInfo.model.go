package models

import "time"

// Measurements are the ten bounded self-report scores of one feature snapshot.
// Ranges are enforced by the store's CHECK constraints, not by Go code; the
// gorm tags mirror the migration so AutoMigrate-created schemas stay honest.
type Measurements struct {
	Anxiety                   int `gorm:"not null;check:chk_workers_info_anxiety,anxiety BETWEEN 0 AND 21"                                               json:"anxiety"`
	SelfEsteem                int `gorm:"not null;check:chk_workers_info_self_esteem,self_esteem BETWEEN 0 AND 30"                                       json:"self_esteem"`
	Depression                int `gorm:"not null;check:chk_workers_info_depression,depression BETWEEN 0 AND 27"                                         json:"depression"`
	Headache                  int `gorm:"not null;check:chk_workers_info_headache,headache BETWEEN 0 AND 5"                                              json:"headache"`
	BloodPressure             int `gorm:"not null;check:chk_workers_info_blood_pressure,blood_pressure BETWEEN 1 AND 3"                                  json:"blood_pressure"`
	SleepQuality              int `gorm:"not null;check:chk_workers_info_sleep_quality,sleep_quality BETWEEN 0 AND 5"                                    json:"sleep_quality"`
	BreathingProblem          int `gorm:"not null;check:chk_workers_info_breathing_problem,breathing_problem BETWEEN 0 AND 5"                            json:"breathing_problem"`
	NoiseLevel                int `gorm:"not null;check:chk_workers_info_noise_level,noise_level BETWEEN 0 AND 5"                                        json:"noise_level"`
	SocialSupport             int `gorm:"not null;check:chk_workers_info_social_support,social_support BETWEEN 0 AND 3"                                  json:"social_support"`
	ExtracurricularActivities int `gorm:"not null;check:chk_workers_info_extracurricular_activities,extracurricular_activities BETWEEN 0 AND 5"          json:"extracurricular_activities"`
}

// WorkerInfo is one feature snapshot. Rows are insert-only and removed solely
// by the cascade when the owning worker is deregistered. Duplicate snapshots
// at the same info_date are permitted.
type WorkerInfo struct {
	WorkerInfoID int       `gorm:"column:worker_info_id;primaryKey;autoIncrement" json:"-"`
	WorkerID     int       `gorm:"column:worker_id;not null;index"                json:"-"`
	InfoDate     time.Time `gorm:"column:info_date;not null"                      json:"info_date"`
	Measurements `gorm:"embedded"`
}

func (WorkerInfo) TableName() string {
	return "workers_info"
}
