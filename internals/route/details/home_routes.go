package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifcontroller "agendai_backend/internals/features/home/notifications/controller"
	authmw "agendai_backend/internals/middlewares/auth"
)

func NotificacaoRoutes(app *fiber.App, db *gorm.DB) {
	ctl := notifcontroller.NewNotificacaoController(db)

	grupo := app.Group("/api/notificacoes", authmw.AuthMiddleware())
	grupo.Get("/", ctl.Listar)
	grupo.Delete("/:id", ctl.Deletar)
}
