//go:build wireinject
// +build wireinject

package main

import (
	"Portfolio/config"
	"Portfolio/dao"
	"Portfolio/dao/cache"
	"Portfolio/handler"
	"Portfolio/pkg/client"
	"Portfolio/pkg/database"
	"Portfolio/pkg/rocketmq"
	"Portfolio/pkg/server"
	"Portfolio/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		config.ProvideRocketMQConfig,
		config.ProvideRecommendConfig,
		rocketmq.NewPublisher,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Guestbook), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Recommend), "*"),
		wire.Struct(new(handler.Health), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}

func InitStore(cfg *config.Config) *Store {
	wire.Build(
		config.ProvideRecommendConfig,
		dao.NewRecommendationDAO,
		wire.Struct(new(service.RecommendService), "*"),
		wire.Bind(new(service.IRecommendService), new(*service.RecommendService)),
		wire.Struct(new(Store), "*"),
		database.NewDB,
	)
	return nil
}
