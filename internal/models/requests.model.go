package models

import "time"

// InfoDateLayout is the wire format for snapshot timestamps, kept identical to
// the source system's "%Y-%m-%d %H:%M:%S".
const InfoDateLayout = "2006-01-02 15:04:05"

type CreateWorkerRequest struct {
	WorkerKey
	MentalHealthHistory bool `json:"mental_health_history"`
}

type DeleteWorkerRequest struct {
	WorkerKey
}

type WorkerFeaturesRequest struct {
	WorkerKey
	InfoDate string `json:"info_date"`
	Measurements
}

// InfoTime parses the wire-format snapshot timestamp.
func (r WorkerFeaturesRequest) InfoTime() (time.Time, error) {
	return time.Parse(InfoDateLayout, r.InfoDate)
}

type WorkerPredictionRequest struct {
	WorkerKey
	StressLevel string `json:"stress_level"`
}

type WorkerPredictionResponse struct {
	WorkerKey
	StressLevel string `json:"stress_level"`
}
