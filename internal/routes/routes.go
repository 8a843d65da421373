package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vlad-d/RiseOnBack/internal/config"
	"github.com/vlad-d/RiseOnBack/internal/events"
	"github.com/vlad-d/RiseOnBack/internal/handlers"
	"github.com/vlad-d/RiseOnBack/internal/middleware"
	"github.com/vlad-d/RiseOnBack/internal/repository"
	"github.com/vlad-d/RiseOnBack/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	appStateRepo := repository.NewAppStateRepository(db)

	profileStore := services.NewProfileStore(db)
	exporter := services.NewFeatureExporter(profileStore)
	appFlow := services.NewAppFlow(appStateRepo, profileStore)
	wizards := services.NewWizardService(profileStore)

	hub := events.NewHub()
	go hub.Run()

	flowHandler := handlers.NewFlowHandler(appFlow, hub)
	surveyHandler := handlers.NewSurveyHandler(wizards, appFlow, exporter, hub)
	profileHandler := handlers.NewProfileHandler(profileStore, exporter)

	api := app.Group("/api")

	flow := api.Group("/v1/flow")
	flow.Get("/state", flowHandler.State)
	flow.Post("/launch", flowHandler.Launch)
	flow.Post("/login", flowHandler.Login)
	flow.Post("/logout", flowHandler.Logout)
	flow.Post("/reset", flowHandler.Reset)

	// Event stream for the recommendation consumer; listen-only.
	api.Get("/v1/ws", websocket.New(func(conn *websocket.Conn) {
		client := events.NewClient(hub, conn)
		hub.Register(client)
		go client.WritePump()
		client.ReadPump()
	}))

	authed := api.Group("/v1", middleware.AuthGate(appFlow))

	surveyGroup := authed.Group("/survey")
	surveyGroup.Post("/start", surveyHandler.Start)
	surveyGroup.Get("/:id", surveyHandler.Get)
	surveyGroup.Put("/:id/answers", surveyHandler.SubmitAnswers)
	surveyGroup.Post("/:id/advance", surveyHandler.Advance)
	surveyGroup.Post("/:id/retreat", surveyHandler.Retreat)
	surveyGroup.Delete("/:id", surveyHandler.Abandon)

	profile := authed.Group("/profile")
	profile.Get("", profileHandler.Get)
	profile.Get("/progress", profileHandler.Progress)
	profile.Get("/export", profileHandler.Export)

	authed.Get("/features", profileHandler.Features)

	registerDocs(app, cfg)
}
