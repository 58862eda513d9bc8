package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "agendai_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up EventRoutes...")
	routeDetails.EventRoutes(app, db)

	log.Println("[INFO] Setting up UniversityRoutes...")
	routeDetails.UniversityRoutes(app, db)

	log.Println("[INFO] Setting up NotificacaoRoutes...")
	routeDetails.NotificacaoRoutes(app, db)

	log.Println("[INFO] ✅ Todas as rotas registradas")
}
