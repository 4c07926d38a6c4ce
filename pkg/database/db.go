package database

import (
	"Portfolio/config"
	"Portfolio/models"
	"Portfolio/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.MySQL)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.MySQL.DriverName()))
	return db
}

// Open 按 driver 打开 mysql 或 sqlite
func Open(conf *config.MySQL) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.DriverName() {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.Dsn())
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.DriverName() == config.DriverSQLite {
		// sqlite 单写者, 内存库多连接时各自独立
		sqlDB.SetMaxOpenConns(1)
	} else {
		if conf.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
		}
		if conf.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
		}
		sqlDB.SetConnMaxLifetime(conf.Lifetime())
	}

	return db, nil
}

// Migrate 建表, likes.client_id 唯一索引由模型声明
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.GuestbookEntry{},
		&models.LikeRecord{},
		&models.Recommendation{},
	)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
