package service

import (
	"Portfolio/dao"
	"Portfolio/dao/cache"
	pctx "Portfolio/pkg/context"
	"Portfolio/pkg/log"
	"Portfolio/pkg/response"
	"Portfolio/pkg/rocketmq"
	"Portfolio/types"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const MaxClientIDLength = 128

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	GetStatus(ctx context.Context, clientID string) (*types.LikeStatus, error)
	Toggle(ctx context.Context, clientID string, action string) (*types.ToggleLikeResponse, error)
}

type LikeService struct {
	LikeDAO    *dao.LikeDAO
	CountCache *cache.LikeCountStorage
	Publisher  rocketmq.Publisher
}

func normalizeClientID(clientID string) string {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return pctx.AnonymousClient
	}
	return clientID
}

// GetStatus 匿名用户允许读取
func (s *LikeService) GetStatus(ctx context.Context, clientID string) (*types.LikeStatus, error) {
	clientID = normalizeClientID(clientID)

	var (
		count int64
		liked bool
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		c, err := s.count(ctx)
		count = c
		return err
	})
	if clientID != pctx.AnonymousClient {
		p.Go(func(ctx context.Context) error {
			l, err := s.LikeDAO.IsLiked(ctx, clientID)
			liked = l
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("get like status: %w", err)
	}

	return &types.LikeStatus{Count: count, IsLiked: liked}, nil
}

// Toggle 点赞状态切换, 状态是否变化由唯一键决定
func (s *LikeService) Toggle(ctx context.Context, clientID string, action string) (*types.ToggleLikeResponse, error) {
	clientID = normalizeClientID(clientID)
	if clientID == pctx.AnonymousClient {
		return nil, response.NewAuthError("client id required")
	}
	if utf8.RuneCountInString(clientID) > MaxClientIDLength {
		return nil, response.NewValidationError("client id too long")
	}

	var (
		changed bool
		err     error
		resp    = &types.ToggleLikeResponse{}
	)
	switch action {
	case types.LikeActionLike:
		changed, err = s.LikeDAO.Add(ctx, clientID)
		resp.IsLiked = true
		resp.Message = types.LikeResultAdded
		if !changed {
			resp.Message = types.LikeResultAlreadyLiked
		}
	case types.LikeActionUnlike:
		changed, err = s.LikeDAO.Remove(ctx, clientID)
		resp.IsLiked = false
		resp.Message = types.LikeResultRemoved
		if !changed {
			resp.Message = types.LikeResultNotLiked
		}
	default:
		return nil, response.NewValidationError("action must be like or unlike")
	}
	if err != nil {
		return nil, fmt.Errorf("toggle like %s: %w", action, err)
	}

	if changed {
		if err := s.CountCache.Invalidate(ctx); err != nil {
			log.L.Warn("invalidate like count cache", zap.Error(err))
		}
	}

	count, err := s.count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	resp.Count = count

	if changed {
		s.Publisher.Publish(ctx, rocketmq.TagLikeToggled, map[string]any{
			"clientId": clientID,
			"action":   action,
			"count":    count,
		})
	}
	return resp, nil
}

// count 先读缓存, 未命中回源; 回填带版本号, 期间有写入则放弃回填. 结果不小于 0
func (s *LikeService) count(ctx context.Context) (int64, error) {
	if cached, ok, err := s.CountCache.Get(ctx); err != nil {
		log.L.Warn("read like count cache", zap.Error(err))
	} else if ok {
		return max(cached, 0), nil
	}

	version, verErr := s.CountCache.Version(ctx)
	if verErr != nil {
		log.L.Warn("read like count cache version", zap.Error(verErr))
	}

	count, err := s.LikeDAO.Count(ctx)
	if err != nil {
		return 0, err
	}
	count = max(count, 0)

	if verErr == nil {
		if _, err := s.CountCache.Refill(ctx, version, count); err != nil {
			log.L.Warn("refill like count cache", zap.Error(err))
		}
	}
	return count, nil
}
