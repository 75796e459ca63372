package routes

import (
	"log"

	"recruitly/internal/config"
	"recruitly/internal/database"
	"recruitly/internal/delivery/http/handler"
	"recruitly/internal/infrastructure/cache"
	"recruitly/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(app *fiber.App, cfg config.Config, db database.DB, redisCache *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(db)
	health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), cfg, db, redisCache, hub, logger)
}
