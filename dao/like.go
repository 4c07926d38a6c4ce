package dao

import (
	"Portfolio/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeDAO struct {
	Repo[models.LikeRecord]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.LikeRecord](db)}
}

// Add 插入点赞记录, 依赖 client_id 唯一键去重
// 返回 false 表示之前已经点过赞
func (d *LikeDAO) Add(ctx context.Context, clientID string) (bool, error) {
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}},
			DoNothing: true,
		}).
		Create(&models.LikeRecord{ClientID: clientID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Remove 删除点赞记录, 返回 false 表示本来就没点赞
func (d *LikeDAO) Remove(ctx context.Context, clientID string) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&models.LikeRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *LikeDAO) IsLiked(ctx context.Context, clientID string) (bool, error) {
	return d.IsExist(ctx, "client_id = ?", clientID)
}
