package main

import (
	"log"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"studymap/config"
	"studymap/database"
	"studymap/router"

	// Auth
	authCtrlImp "studymap/pkg/auth/controllerImp"
	"studymap/pkg/middleware"

	// Roadmap
	roadmapCtrlImp "studymap/pkg/roadmap/controllerImp"
	roadmapRepoImp "studymap/pkg/roadmap/repositoryImp"
	roadmapSvcImp "studymap/pkg/roadmap/serviceImp"

	// LLM
	"studymap/pkg/ai"

	// KB
	kbCtrlImp "studymap/pkg/kb/controllerImp"
	kbEmbedder "studymap/pkg/kb/embedder"
	kbRepoImp "studymap/pkg/kb/repositoryImp"
	kbSvcImp "studymap/pkg/kb/serviceImp"

	// Export
	"studymap/pkg/export"

	// Health
	healthCtrlImp "studymap/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.AllowOrigins, ","),
	}))

	// 4) LLM (mock fallback when no key is set)
	var llm ai.Client
	if cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("[ai] no LLM_API_KEY set, using mock client")
		llm = ai.NewMock()
	}

	// 5) KB wiring
	emb := kbEmbedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbSvcImp.New(kbRepo, emb)
	kbCtrl := kbCtrlImp.New(kbSvc, cfg.KBAllowedDomains)

	// 6) Roadmap wiring
	rRepo := roadmapRepoImp.New(db)
	rSvc := roadmapSvcImp.NewRoadmapService(llm, rRepo, kbSvc)
	rCtrl := roadmapCtrlImp.NewRoadmapCtrl(rSvc)

	// 7) Export + Auth + Health
	expCtrl := export.NewExportCtrl(rRepo)
	authCtrl := authCtrlImp.NewAuthController(cfg.JWTSecret)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(
		e,
		middleware.JWT(cfg.JWTSecret),
		authCtrl,
		rCtrl,
		expCtrl,
		kbCtrl,
		hCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
