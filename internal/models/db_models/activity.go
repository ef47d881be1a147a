package db_models

import "github.com/google/uuid"

type ActivityType string

const (
	ActivityTypeSightseeing   ActivityType = "sightseeing"
	ActivityTypeFood          ActivityType = "food"
	ActivityTypeAdventure     ActivityType = "adventure"
	ActivityTypeCulture       ActivityType = "culture"
	ActivityTypeShopping      ActivityType = "shopping"
	ActivityTypeEntertainment ActivityType = "entertainment"
	ActivityTypeRelaxation    ActivityType = "relaxation"
	ActivityTypeTransport     ActivityType = "transport"
	ActivityTypeOther         ActivityType = "other"
)

var ActivityTypes = []ActivityType{
	ActivityTypeSightseeing, ActivityTypeFood, ActivityTypeAdventure, ActivityTypeCulture,
	ActivityTypeShopping, ActivityTypeEntertainment, ActivityTypeRelaxation, ActivityTypeTransport,
	ActivityTypeOther,
}

func (t ActivityType) Valid() bool {
	for _, v := range ActivityTypes {
		if t == v {
			return true
		}
	}
	return false
}

type CostType string

const (
	CostTypePerPerson CostType = "per_person"
	CostTypePerGroup  CostType = "per_group"
	CostTypeFixed     CostType = "fixed"
	CostTypeFree      CostType = "free"
)

// Activity is a catalog entry scoped to a city.
type Activity struct {
	BaseModel
	CityID          uuid.UUID    `gorm:"type:uuid;index;not null"`
	Name            string       `gorm:"not null"`
	Description     string
	Type            ActivityType `gorm:"size:32;index"`
	DurationMinutes int          `gorm:"check:duration_minutes >= 0"`
	Cost            *float64     `gorm:"type:numeric(12,2);check:cost >= 0"`
	Currency        string       `gorm:"size:3;default:USD"`
	CostType        CostType     `gorm:"size:16;default:fixed"`
	Latitude        float64
	Longitude       float64
	Difficulty      string
	Rating          float64
	ReviewCount     int

	City City `gorm:"foreignKey:CityID"`
}
