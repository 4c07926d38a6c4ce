package dao

import (
	"Portfolio/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecommendationDAO struct {
	Repo[models.Recommendation]
}

func NewRecommendationDAO(db *gorm.DB) *RecommendationDAO {
	return &RecommendationDAO{Repo: NewRepo[models.Recommendation](db)}
}

func (d *RecommendationDAO) Messages(ctx context.Context) ([]string, error) {
	messages := make([]string, 0)
	err := d.Model(ctx).Order("id ASC").Pluck("message", &messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// InsertMissing 只插入库里没有的文案, 返回实际插入条数
func (d *RecommendationDAO) InsertMissing(ctx context.Context, messages []string) (int, error) {
	if len(messages) == 0 {
		return 0, nil
	}

	var existing []string
	if err := d.Model(ctx).Where("message IN ?", messages).Pluck("message", &existing).Error; err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		seen[m] = struct{}{}
	}

	inserted := 0
	for _, m := range messages {
		if _, ok := seen[m]; ok {
			continue
		}
		res := d.Db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Recommendation{Message: m})
		if res.Error != nil {
			return inserted, res.Error
		}
		inserted += int(res.RowsAffected)
		seen[m] = struct{}{}
	}
	return inserted, nil
}
