package models

import "time"

type Recommendation struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Message   string    `gorm:"column:message;size:255;not null;uniqueIndex:uk_recommendations_message" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Recommendation) TableName() string { return "recommendations" }
