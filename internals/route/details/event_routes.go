package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventcontroller "agendai_backend/internals/features/agenda/events/controller"
	authmw "agendai_backend/internals/middlewares/auth"
)

// EventRoutes registra a superfície de eventos: série, ocorrências e
// convidados. A consulta de ocorrência é pública; o resto exige token.
func EventRoutes(app *fiber.App, db *gorm.DB) {
	eventos := eventcontroller.NewEventoController(db)
	ocorrencias := eventcontroller.NewOcorrenciaController(db)
	convidados := eventcontroller.NewConvidadoController(db)

	grupo := app.Group("/api/events")

	// série
	grupo.Post("/", authmw.AuthMiddleware(), eventos.Criar)
	grupo.Delete("/:id_evento", authmw.AuthMiddleware(), eventos.Deletar)

	// convidados (antes das rotas :data para o roteador não engolir "convidados")
	grupo.Get("/:id_evento/convidados", authmw.AuthMiddleware(), convidados.Listar)
	grupo.Post("/:id_evento/convidados", authmw.AuthMiddleware(), convidados.Convidar)
	grupo.Delete("/:id_evento/convidados", authmw.AuthMiddleware(), convidados.Desconvidar)

	// ocorrências
	grupo.Get("/:id_evento/:data", ocorrencias.Buscar)
	grupo.Put("/:id_evento/:data", authmw.AuthMiddleware(), ocorrencias.Atualizar)
	grupo.Delete("/:id_evento/:data", authmw.AuthMiddleware(), ocorrencias.Cancelar)
}
