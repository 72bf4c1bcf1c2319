package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	authMW echo.MiddlewareFunc,
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	roadmapCtrl interface {
		Generate(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		PatchTask(echo.Context) error
		Graph(echo.Context) error
	},
	exportCtrl interface{ Export(echo.Context) error },
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.GET("/devlogin", authCtrl.DevLogin)

	api := e.Group("", authMW)
	api.GET("/whoami", authCtrl.WhoAmI)

	g := api.Group("/roadmaps")
	g.POST("/generate", roadmapCtrl.Generate)
	g.GET("", roadmapCtrl.List)
	g.GET("/:id", roadmapCtrl.Get)
	g.PATCH("/:id/tasks/:index", roadmapCtrl.PatchTask)
	g.GET("/:id/prerequisite-graph", roadmapCtrl.Graph)
	g.GET("/:id/export", exportCtrl.Export)

	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)

	return e
}
