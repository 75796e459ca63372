package routes

import (
	"log"

	"recruitly/internal/config"
	"recruitly/internal/database"
	v1 "recruitly/internal/delivery/http/routes/v1"
	"recruitly/internal/infrastructure/cache"
	"recruitly/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redisCache, hub, logger)
}
