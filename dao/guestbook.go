package dao

import (
	"Portfolio/models"
	"context"

	"gorm.io/gorm"
)

type GuestbookDAO struct {
	Repo[models.GuestbookEntry]
}

func NewGuestbookDAO(db *gorm.DB) *GuestbookDAO {
	return &GuestbookDAO{Repo: NewRepo[models.GuestbookEntry](db)}
}

// ListNewest 全量按创建时间倒序, id 倒序兜底同一时间戳
func (d *GuestbookDAO) ListNewest(ctx context.Context) ([]*models.GuestbookEntry, error) {
	items := make([]*models.GuestbookEntry, 0)
	err := d.Db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByID 返回是否真的删除了记录
func (d *GuestbookDAO) DeleteByID(ctx context.Context, id uint64) (bool, error) {
	res := d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.GuestbookEntry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
