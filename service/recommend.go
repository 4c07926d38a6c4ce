package service

import (
	"Portfolio/config"
	"Portfolio/dao"
	"Portfolio/pkg/response"
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
)

// DefaultRecommendations 配置未提供种子时写入
var DefaultRecommendations = []string{
	"처음은 누구나 어렵습니다. 하지만 당신의 열정은 코드를 움직이는 가장 강력한 엔진입니다!",
	"실수는 성장의 기회입니다. 버그는 당신을 더 강하게 만들 것입니다.",
	"매일 작은 코드라도 작성해보세요. 꾸준함이 비범함을 만듭니다.",
	"동료들과 지식을 나누세요. 함께 성장하는 것이 더 즐겁습니다.",
	"당신의 코드는 세상에 긍정적인 영향을 미칠 수 있습니다. 힘내세요!",
	"Vibe Coding은 코딩을 즐기는 문화입니다. 당신의 고유한 바이브를 찾으세요!",
	"깔끔한 코드는 예술입니다. 당신의 코드를 아름답게 만들어보세요.",
	"막다른 길에 부딪혔을 때는 잠시 쉬어가세요. 새로운 아이디어가 떠오를 것입니다.",
	"코딩은 마법과 같습니다. 당신의 상상력을 현실로 만들어보세요.",
	"Vibe Coding과 함께라면 어떤 도전도 이겨낼 수 있습니다. 화이팅!",
}

var _ IRecommendService = (*RecommendService)(nil)

type IRecommendService interface {
	SeedIfEmpty(ctx context.Context, messages []string) (int, error)
	Seed(ctx context.Context) (int, error)
	GetRandom(ctx context.Context) (string, error)
}

type RecommendService struct {
	RecommendationDAO *dao.RecommendationDAO
	Config            *config.Recommend
}

// Seed 使用配置中的种子, 未配置时用内置列表
func (s *RecommendService) Seed(ctx context.Context) (int, error) {
	seeds := DefaultRecommendations
	if s.Config != nil && len(s.Config.Seeds) > 0 {
		seeds = s.Config.Seeds
	}
	return s.SeedIfEmpty(ctx, seeds)
}

// SeedIfEmpty 已存在的文案不重复写入, 可重复执行
func (s *RecommendService) SeedIfEmpty(ctx context.Context, messages []string) (int, error) {
	distinct := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, m := range messages {
		if strings.TrimSpace(m) == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		distinct = append(distinct, m)
	}

	n, err := s.RecommendationDAO.InsertMissing(ctx, distinct)
	if err != nil {
		return n, fmt.Errorf("seed recommendations: %w", err)
	}
	return n, nil
}

func (s *RecommendService) GetRandom(ctx context.Context) (string, error) {
	pool, err := s.RecommendationDAO.Messages(ctx)
	if err != nil {
		return "", fmt.Errorf("load recommendations: %w", err)
	}
	if len(pool) == 0 {
		return "", response.NewNotFoundError("no recommendations available")
	}
	return pool[rand.IntN(len(pool))], nil
}
