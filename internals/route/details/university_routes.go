package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cursocontroller "agendai_backend/internals/features/university/cursos/controller"
)

func UniversityRoutes(app *fiber.App, db *gorm.DB) {
	cursos := cursocontroller.NewCursoController(db)

	app.Get("/api/cursos", cursos.Listar)
}
