package service

import (
	"Portfolio/config"
	"Portfolio/dao"
	"Portfolio/dao/cache"
	"Portfolio/pkg/response"
	"Portfolio/pkg/rocketmq"
	"Portfolio/types"
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLikeService(t *testing.T, withRedis bool) (*LikeService, *recordingPublisher) {
	t.Helper()
	db := newTestDB(t)
	conf := &config.Config{Redis: &config.Redis{LikeCountTTL: 60}}

	var rdb *redis.Client
	if withRedis {
		mr := miniredis.RunT(t)
		rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
	}

	pub := &recordingPublisher{}
	return &LikeService{
		LikeDAO:    dao.NewLikeDAO(db),
		CountCache: cache.NewLikeCountStorage(rdb, conf),
		Publisher:  pub,
	}, pub
}

func TestLikeService_TransitionTable(t *testing.T) {
	for _, withRedis := range []bool{false, true} {
		s, pub := newLikeService(t, withRedis)
		ctx := context.Background()

		res, err := s.Toggle(ctx, "visitor-1", types.LikeActionUnlike)
		require.NoError(t, err)
		assert.Equal(t, types.LikeResultNotLiked, res.Message)
		assert.False(t, res.IsLiked)
		assert.Equal(t, int64(0), res.Count)

		res, err = s.Toggle(ctx, "visitor-1", types.LikeActionLike)
		require.NoError(t, err)
		assert.Equal(t, types.LikeResultAdded, res.Message)
		assert.True(t, res.IsLiked)
		assert.Equal(t, int64(1), res.Count)

		res, err = s.Toggle(ctx, "visitor-1", types.LikeActionLike)
		require.NoError(t, err)
		assert.Equal(t, types.LikeResultAlreadyLiked, res.Message)
		assert.True(t, res.IsLiked)
		assert.Equal(t, int64(1), res.Count, "second like must not increment")

		res, err = s.Toggle(ctx, "visitor-1", types.LikeActionUnlike)
		require.NoError(t, err)
		assert.Equal(t, types.LikeResultRemoved, res.Message)
		assert.False(t, res.IsLiked)
		assert.Equal(t, int64(0), res.Count)

		// 只有状态变化才发事件
		assert.Equal(t, []string{rocketmq.TagLikeToggled, rocketmq.TagLikeToggled}, pub.Tags())
	}
}

func TestLikeService_Symmetry(t *testing.T) {
	s, _ := newLikeService(t, true)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := s.Toggle(ctx, id, types.LikeActionLike)
		require.NoError(t, err)
	}
	before, err := s.GetStatus(ctx, "d")
	require.NoError(t, err)

	_, err = s.Toggle(ctx, "d", types.LikeActionLike)
	require.NoError(t, err)
	after, err := s.Toggle(ctx, "d", types.LikeActionUnlike)
	require.NoError(t, err)

	assert.Equal(t, before.Count, after.Count)
	assert.False(t, after.IsLiked)
}

func TestLikeService_GetStatus(t *testing.T) {
	s, _ := newLikeService(t, true)
	ctx := context.Background()

	status, err := s.GetStatus(ctx, "anonymous")
	require.NoError(t, err)
	assert.Equal(t, &types.LikeStatus{Count: 0, IsLiked: false}, status)

	_, err = s.Toggle(ctx, "visitor-1", types.LikeActionLike)
	require.NoError(t, err)

	status, err = s.GetStatus(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, &types.LikeStatus{Count: 1, IsLiked: true}, status)

	status, err = s.GetStatus(ctx, "visitor-2")
	require.NoError(t, err)
	assert.Equal(t, &types.LikeStatus{Count: 1, IsLiked: false}, status)

	status, err = s.GetStatus(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.Count)
	assert.False(t, status.IsLiked)
}

func TestLikeService_AnonymousCannotToggle(t *testing.T) {
	s, pub := newLikeService(t, false)
	ctx := context.Background()

	for _, id := range []string{"anonymous", "", "   "} {
		for _, action := range []string{types.LikeActionLike, types.LikeActionUnlike} {
			_, err := s.Toggle(ctx, id, action)
			assert.Truef(t, response.IsStatus(err, http.StatusUnauthorized), "client %q action %s: %v", id, action, err)
		}
	}

	status, err := s.GetStatus(ctx, "anonymous")
	require.NoError(t, err)
	assert.Zero(t, status.Count)
	assert.Empty(t, pub.Tags())
}

func TestLikeService_InvalidInput(t *testing.T) {
	s, _ := newLikeService(t, false)
	ctx := context.Background()

	_, err := s.Toggle(ctx, "visitor-1", "love")
	assert.True(t, response.IsStatus(err, http.StatusBadRequest))

	_, err = s.Toggle(ctx, strings.Repeat("x", MaxClientIDLength+1), types.LikeActionLike)
	assert.True(t, response.IsStatus(err, http.StatusBadRequest))
}

func TestLikeService_CacheInvalidatedOnToggle(t *testing.T) {
	s, _ := newLikeService(t, true)
	ctx := context.Background()

	status, err := s.GetStatus(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Zero(t, status.Count)

	cached, ok, err := s.CountCache.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok, "read should populate the cache")
	assert.Zero(t, cached)

	_, err = s.Toggle(ctx, "visitor-1", types.LikeActionLike)
	require.NoError(t, err)

	status, err = s.GetStatus(ctx, "visitor-2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.Count)
}

func TestLikeService_CountNeverNegative(t *testing.T) {
	s, _ := newLikeService(t, true)
	ctx := context.Background()

	_, err := s.CountCache.Refill(ctx, "0", -3)
	require.NoError(t, err)
	status, err := s.GetStatus(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.Count)
}

// 匿名读取 COUNT(*) 返回后、回填缓存前, 另一个请求完成点赞
func TestLikeService_ToggleDuringCountRead(t *testing.T) {
	s, _ := newLikeService(t, true)
	ctx := context.Background()

	var armed, fired atomic.Bool
	err := s.LikeDAO.Db.Callback().Query().After("gorm:query").Register("test:toggle_during_count", func(tx *gorm.DB) {
		if !armed.Load() || !fired.CompareAndSwap(false, true) {
			return
		}
		res, err := s.Toggle(ctx, "visitor-1", types.LikeActionLike)
		if err != nil {
			t.Errorf("toggle: %v", err)
			return
		}
		assert.Equal(t, int64(1), res.Count)
	})
	require.NoError(t, err)
	armed.Store(true)

	status, err := s.GetStatus(ctx, "anonymous")
	require.NoError(t, err)
	require.True(t, fired.Load())
	assert.Zero(t, status.Count, "the racing read saw the store before the insert")

	rows, err := s.LikeDAO.Count(ctx)
	require.NoError(t, err)
	status, err = s.GetStatus(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, &types.LikeStatus{Count: rows, IsLiked: true}, status)
	assert.Equal(t, int64(1), rows)

	cached, ok, err := s.CountCache.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), cached)
}

func TestLikeService_ConcurrentLikesSameClient(t *testing.T) {
	s, _ := newLikeService(t, false)
	ctx := context.Background()

	const n = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			res, err := s.Toggle(ctx, "visitor-1", types.LikeActionLike)
			if err != nil {
				t.Errorf("toggle: %v", err)
				return
			}
			if res.Message == types.LikeResultAdded {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, added, "exactly one concurrent like may insert")
	status, err := s.GetStatus(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, &types.LikeStatus{Count: 1, IsLiked: true}, status)
}

func TestLikeService_StoreFailure(t *testing.T) {
	s, _ := newLikeService(t, false)
	sqlDB, err := s.LikeDAO.Db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = s.GetStatus(context.Background(), "visitor-1")
	require.Error(t, err)
	var be *response.BizError
	assert.NotErrorAs(t, err, &be, "store faults are internal errors")
}
