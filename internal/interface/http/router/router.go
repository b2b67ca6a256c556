package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookcatalog/docs"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
)

// Handlers 所有HTTP处理器
type Handlers struct {
	User    *handler.UserHandler
	Book    *handler.BookHandler
	Author  *handler.AuthorHandler
	Genre   *handler.GenreHandler
	Review  *handler.ReviewHandler
	Library *handler.LibraryHandler
}

// New 创建Gin引擎并注册全部路由
//
// 中间件顺序:Recovery → Logger → Tracing → Metrics → CORS
func New(cfg *config.Config, h Handlers) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Logger(cfg.Server.SlowRequest),
	)
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	if cfg.Server.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", h.User.List)
			users.POST("", h.User.Add)
			users.PUT("/", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
			users.GET("/:id/library", h.Library.ListByUser)
		}

		books := api.Group("/books")
		{
			books.GET("", h.Book.List)
			books.POST("", h.Book.Add)
			books.DELETE("/:id", h.Book.Delete)
		}

		genres := api.Group("/genres")
		{
			genres.GET("", h.Genre.List)
			genres.POST("", h.Genre.Add)
			genres.DELETE("/:id", h.Genre.Delete)
		}

		authors := api.Group("/authors")
		{
			authors.GET("", h.Author.List)
			authors.POST("", h.Author.Add)
			authors.DELETE("/:id", h.Author.Delete)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", h.Review.List)
			reviews.POST("", h.Review.Add)
			reviews.DELETE("/:id", h.Review.Delete)
		}

		library := api.Group("/library")
		{
			library.POST("", h.Library.Save)
			library.DELETE("/:userID/:bookID", h.Library.Remove)
		}
	}

	return r
}
