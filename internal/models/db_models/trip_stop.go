package db_models

import (
	"time"

	"github.com/google/uuid"
)

type StopStatus string

const (
	StopStatusPlanned   StopStatus = "planned"
	StopStatusConfirmed StopStatus = "confirmed"
	StopStatusCompleted StopStatus = "completed"
	StopStatusCancelled StopStatus = "cancelled"
)

// TripStop is a city visit inside a trip. Stops of one trip never overlap.
type TripStop struct {
	BaseModel
	TripID        uuid.UUID `gorm:"type:uuid;index;not null"`
	CityID        uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderIndex    int       `gorm:"not null;check:order_index >= 1"`
	ArrivalDate   time.Time `gorm:"type:date;not null"`
	DepartureDate time.Time `gorm:"type:date;not null"`
	EstimatedCost *float64  `gorm:"type:numeric(12,2)"`
	Notes         string
	Status        StopStatus `gorm:"size:16;default:planned"`

	City       City           `gorm:"foreignKey:CityID"`
	Activities []TripActivity `gorm:"foreignKey:TripStopID;constraint:OnDelete:CASCADE"`
}
