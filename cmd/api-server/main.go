package main

import (
	"Portfolio/config"
	"Portfolio/pkg/database"
	"Portfolio/pkg/log"
	"Portfolio/pkg/server"
	"Portfolio/service"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store migrate / seed 只需要数据库, 不连接 redis 和 rocketmq
type Store struct {
	DB               *gorm.DB
	RecommendService service.IRecommendService
}

func main() {
	if err := newApp(loadConfig).Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
	_ = log.L.Sync()
}

func loadConfig() *config.Config {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	cfg := config.New(fmt.Sprintf("configs/config.%s.yaml", env))
	log.SetDebug(cfg.Debug())
	return cfg
}

// newApp 依赖在各命令的 Action 中构建, 解析参数和 --help 不触发任何连接
func newApp(load func() *config.Config) *cli.App {
	return &cli.App{
		Name:  "api-server",
		Usage: "portfolio guestbook / like / recommend api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "migrate, seed and start http server",
				Action: func(ctx *cli.Context) error {
					app := InitServer(load())
					defer shutdown(app)

					store := &Store{DB: app.DB, RecommendService: app.RecommendService}
					if err := migrate(store); err != nil {
						return err
					}
					if err := seed(ctx, store); err != nil {
						return err
					}
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update tables",
				Action: func(ctx *cli.Context) error {
					return migrate(InitStore(load()))
				},
			},
			{
				Name:  "seed",
				Usage: "insert missing recommendation messages",
				Action: func(ctx *cli.Context) error {
					return seed(ctx, InitStore(load()))
				},
			},
		},
	}
}

func migrate(store *Store) error {
	if err := database.Migrate(store.DB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.L.Info("migrate success")
	return nil
}

func seed(ctx *cli.Context, store *Store) error {
	n, err := store.RecommendService.Seed(ctx.Context)
	if err != nil {
		return err
	}
	log.L.Info("seed recommendations", zap.Int("inserted", n))
	return nil
}

func shutdown(app *server.AppProvider) {
	if p, ok := app.Publisher.(interface{ Shutdown() error }); ok {
		if err := p.Shutdown(); err != nil {
			log.L.Warn("shutdown producer", zap.Error(err))
		}
	}
}
