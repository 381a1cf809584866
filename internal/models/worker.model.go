package models

// Worker is the registry entity. External callers identify a worker by the
// natural key (first name, last name, surname); the surrogate worker_id never
// leaves the storage layer.
type Worker struct {
	WorkerID            int    `gorm:"column:worker_id;primaryKey;autoIncrement"                            json:"-"`
	FirstName           string `gorm:"type:varchar(100);not null;uniqueIndex:uq_workers_natural_key"        json:"first_name"`
	LastName            string `gorm:"type:varchar(100);not null;uniqueIndex:uq_workers_natural_key"        json:"last_name"`
	Surname             string `gorm:"type:varchar(100);not null;uniqueIndex:uq_workers_natural_key"        json:"surname"`
	MentalHealthHistory bool   `gorm:"not null"                                                             json:"mental_health_history"`

	Infos       []WorkerInfo       `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE" json:"-"`
	Predictions []StressPrediction `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Worker) TableName() string {
	return "workers"
}

// WorkerKey is the natural key every access procedure resolves before writing.
type WorkerKey struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Surname   string `json:"surname"`
}
