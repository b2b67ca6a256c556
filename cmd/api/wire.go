//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后执行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"github.com/xiebiao/bookcatalog/internal/application"
	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	appgenre "github.com/xiebiao/bookcatalog/internal/application/genre"
	applibrary "github.com/xiebiao/bookcatalog/internal/application/library"
	appreview "github.com/xiebiao/bookcatalog/internal/application/review"
	appuser "github.com/xiebiao/bookcatalog/internal/application/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	provideDB,
	rdb.NewTxManager,
	wire.Bind(new(application.Transactor), new(*rdb.TxManager)),
	rdb.NewUserRepository,
	rdb.NewBookRepository,
	rdb.NewAuthorRepository,
	rdb.NewGenreRepository,
	rdb.NewReviewRepository,
	rdb.NewLibraryRepository,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewUseCase,
	appbook.NewUseCase,
	appauthor.NewUseCase,
	appgenre.NewUseCase,
	appreview.NewUseCase,
	applibrary.NewUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	handler.NewGenreHandler,
	handler.NewReviewHandler,
	handler.NewLibraryHandler,
	wire.Struct(new(router.Handlers), "*"),
)

// InitializeServer 组装Gin引擎
// cleanup负责关闭数据库连接
func InitializeServer(cfg *config.Config) (*gin.Engine, func(), error) {
	wire.Build(
		repositorySet,
		applicationSet,
		handlerSet,
		router.New,
	)
	return nil, nil, nil
}
