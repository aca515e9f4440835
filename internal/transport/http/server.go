package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "reportshelf/internal/app"
	"reportshelf/internal/bootstrap"
	"reportshelf/internal/cache"
	"reportshelf/internal/scanner"
	"reportshelf/internal/transport/http/handler"
	"reportshelf/internal/transport/http/middleware"
	"reportshelf/internal/transport/http/response"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.CORS())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	var textCache cache.TextCache = cache.NoopTextCache{}
	if app.Redis != nil {
		textCache = cache.NewRedisTextCache(app.Redis,
			time.Duration(app.Config.Redis.TextTTLSeconds)*time.Second)
	}

	sc := scanner.New(app.Config.Library.Root,
		scanner.WithCache(textCache),
		scanner.WithWorkers(app.Config.Library.ScanWorkers),
		scanner.WithMaxFileBytes(app.Config.Library.MaxExtractBytes),
	)
	libraryService := appsvc.NewLibraryService(sc)
	searchService := appsvc.NewSearchService(sc,
		app.Config.Library.SnippetRadius,
		app.Config.Library.MaxSnippets,
	)

	libraryHandler := handler.NewLibraryHandler(libraryService)
	searchHandler := handler.NewSearchHandler(searchService)
	documentHandler := handler.NewDocumentHandler(libraryService)

	v1 := router.Group("/api/v1")
	v1.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "PDF report library API"})
	})
	v1.GET("/folders", libraryHandler.ListFolders)
	v1.GET("/search", searchHandler.Search)
	v1.GET("/pdf/:folder/:filename", documentHandler.Fetch)
	v1.GET("/pdf-info/:folder/:filename", documentHandler.Info)

	return router
}
