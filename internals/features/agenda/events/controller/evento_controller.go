package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agendai_backend/internals/features/agenda/events/dto"
	"agendai_backend/internals/features/agenda/events/model"
	"agendai_backend/internals/features/agenda/events/service"
	helper "agendai_backend/internals/helpers"
)

type EventoController struct {
	DB       *gorm.DB
	Service  *service.EventoService
	Validate *validator.Validate
}

func NewEventoController(db *gorm.DB) *EventoController {
	return &EventoController{
		DB:       db,
		Service:  service.NewEventoService(db),
		Validate: validator.New(),
	}
}

// ========================== CREATE ==========================
// POST /api/events
func (ctl *EventoController) Criar(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CriarEventoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ev, err := req.ToModel(email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Campos de data/hora inválidos: "+err.Error())
	}

	var disc *model.DisciplinaModel
	if req.Disciplina != nil {
		if disc, err = req.Disciplina.ToModel(); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Dados da disciplina inválidos: "+err.Error())
		}
	}

	ocorrencias, err := ctl.Service.CriarEvento(ev, disc)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Evento criado", dto.CriarEventoResponse{
		Evento:      ev,
		Ocorrencias: len(ocorrencias),
	})
}

// ========================== DELETE ==========================
// DELETE /api/events/:id_evento
func (ctl *EventoController) Deletar(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventoID, err := uuid.Parse(c.Params("id_evento"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de evento inválido")
	}

	if err := ctl.Service.DeletarEvento(eventoID, email); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Evento deletado", fiber.Map{"evento_id": eventoID})
}
