package models

import "time"

// LikeRecord 点赞记录
// 对应表 likes
// 唯一键: client_id, 存在即已点赞
type LikeRecord struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ClientID  string    `gorm:"column:client_id;size:128;not null;uniqueIndex:uk_likes_client_id" json:"clientId"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (LikeRecord) TableName() string { return "likes" }
