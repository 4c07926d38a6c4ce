package service

import (
	"Portfolio/config"
	"Portfolio/pkg/database"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.MySQL{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// recordingPublisher 记录发布的事件类型
type recordingPublisher struct {
	mu   sync.Mutex
	tags []string
}

func (p *recordingPublisher) Publish(_ context.Context, tag string, _ any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tags = append(p.tags, tag)
}

func (p *recordingPublisher) Tags() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.tags...)
}

func uintToString(v uint64) string {
	return fmt.Sprintf("%d", v)
}
