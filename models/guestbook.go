package models

import "time"

// GuestbookEntry 留言
// 对应表 guestbook, 创建后只允许删除
type GuestbookEntry struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:50;not null" json:"name"`
	Message   string    `gorm:"column:message;size:500;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_guestbook_created_at" json:"createdAt"`
}

func (GuestbookEntry) TableName() string { return "guestbook" }
