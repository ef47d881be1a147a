package db_models

import "gorm.io/datatypes"

// City is read-mostly reference data.
type City struct {
	BaseModel
	Name            string `gorm:"index;not null"`
	Country         string `gorm:"index;not null"`
	Region          string
	Latitude        float64
	Longitude       float64
	CostIndex       float64 `gorm:"type:numeric(6,2)"`
	PopularityScore float64 `gorm:"index"`
	Description     string
	ImageURL        string
	Timezone        string
	Metadata        datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Activities []Activity `gorm:"foreignKey:CityID"`
}
