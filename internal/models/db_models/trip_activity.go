package db_models

import (
	"time"

	"github.com/google/uuid"
)

type TripActivityStatus string

const (
	TripActivityPlanned   TripActivityStatus = "planned"
	TripActivityBooked    TripActivityStatus = "booked"
	TripActivityCompleted TripActivityStatus = "completed"
	TripActivityCancelled TripActivityStatus = "cancelled"
)

// TripActivity schedules a catalog Activity inside a stop. Activities of one stop never overlap.
type TripActivity struct {
	BaseModel
	TripStopID uuid.UUID `gorm:"type:uuid;index;not null"`
	ActivityID uuid.UUID `gorm:"type:uuid;index;not null"`
	StartTime  time.Time `gorm:"not null"`
	EndTime    time.Time `gorm:"not null"`
	Cost       *float64  `gorm:"type:numeric(12,2)"`
	Notes      string
	Status     TripActivityStatus `gorm:"size:16;default:planned"`

	Activity Activity `gorm:"foreignKey:ActivityID"`
}
