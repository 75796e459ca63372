package v1

import (
	"log"

	"recruitly/internal/config"
	"recruitly/internal/database"
	"recruitly/internal/delivery/http/handler"
	"recruitly/internal/delivery/http/middleware"
	"recruitly/internal/infrastructure/cache"
	"recruitly/internal/pkg/session"
	"recruitly/internal/repository"
	"recruitly/internal/usecase"
	"recruitly/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	sessionSvc := session.NewHMACService(cfg.Session.Secret, cfg.Session.TTL)

	personRepo := repository.NewPostgresPersonRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)
	compRepo := repository.NewPostgresCompetenceRepository(db)

	gate := middleware.NewSessionMiddleware(sessionSvc, personRepo)

	var notifier usecase.Notifier
	if hub != nil {
		notifier = ws.NewSubmissionNotifier(hub)
	}
	var compCache usecase.CompetenceCache
	if redisCache != nil {
		compCache = redisCache
	}

	authUC := usecase.NewAuthUsecase(personRepo, sessionSvc)
	appUC := usecase.NewApplicationUsecase(db, appRepo, compRepo, personRepo, compCache, cfg.Redis.TTL, notifier, logger)

	authHandler := handler.NewAuthHandler(authUC, sessionSvc)
	appHandler := handler.NewApplicationHandler(appUC)
	compHandler := handler.NewCompetenceHandler(appUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	// Any logged-in person may read the competence catalogue and submit.
	sessionGroup := r.Group("", gate.RequireSession())
	compHandler.RegisterRoutes(sessionGroup.Group("/competences"))
	appHandler.RegisterApplicantRoutes(sessionGroup.Group("/applications"))

	// Listing, detail inspection and triage are recruiter-only.
	recruiterGroup := r.Group("", gate.RequireRecruiter())
	appHandler.RegisterRecruiterRoutes(recruiterGroup.Group("/applications"))

	if hub != nil {
		wsHandler := ws.NewHandler(hub, logger)
		recruiterGroup.Get("/ws/applications", wsHandler.HandleApplicationsWS)
	}
}
