package model

import (
	"time"

	"github.com/google/uuid"
)

// TravelStoryModel mirrors the 'travel_stories' table. UserID references
// users.id; visited locations ride in a jsonb column.
type TravelStoryModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Story            string    `gorm:"type:text;not null"`
	VisitedLocations []string  `gorm:"type:jsonb;serializer:json"`
	ImageURL         string    `gorm:"type:text"`
	VisitedDate      time.Time `gorm:"not null;index"`
	IsFavourite      bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (TravelStoryModel) TableName() string {
	return "travel_stories"
}
