package di

import (
	"go.uber.org/fx"

	"github.com/sel3a/sel3a/internal/app"
	"github.com/sel3a/sel3a/internal/config"
	"github.com/sel3a/sel3a/internal/logger"
	"github.com/sel3a/sel3a/internal/pkg/auth"
	"github.com/sel3a/sel3a/internal/server/http/handlers"
	"github.com/sel3a/sel3a/internal/server/http/router"
	"github.com/sel3a/sel3a/internal/storage/postgres"
	"github.com/sel3a/sel3a/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.StoreFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
