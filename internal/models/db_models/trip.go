package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TripStatus string

const (
	TripStatusPlanning  TripStatus = "planning"
	TripStatusPlanned   TripStatus = "planned"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

var TripStatuses = []TripStatus{
	TripStatusPlanning, TripStatusPlanned, TripStatusOngoing, TripStatusCompleted, TripStatusCancelled,
}

func (s TripStatus) Valid() bool {
	for _, v := range TripStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Trip struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description string
	StartDate   time.Time      `gorm:"type:date;not null"`
	EndDate     time.Time      `gorm:"type:date;not null"`
	Budget      *float64       `gorm:"type:numeric(12,2)"`
	Currency    string         `gorm:"size:3;default:USD"`
	Status      TripStatus     `gorm:"size:16;index;default:planning"`
	IsPublic    bool           `gorm:"default:false"`
	Tags        pq.StringArray `gorm:"type:text[]"`

	Stops []TripStop `gorm:"foreignKey:TripID"`
}
