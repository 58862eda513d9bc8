package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agendai_backend/internals/features/agenda/events/dto"
	"agendai_backend/internals/features/agenda/events/service"
	helper "agendai_backend/internals/helpers"
)

type ConvidadoController struct {
	DB       *gorm.DB
	Service  *service.ConvidadoService
	Validate *validator.Validate
}

func NewConvidadoController(db *gorm.DB) *ConvidadoController {
	return &ConvidadoController{
		DB:       db,
		Service:  service.NewConvidadoService(db),
		Validate: validator.New(),
	}
}

func (ctl *ConvidadoController) parseConvite(c *fiber.Ctx) (uuid.UUID, string, string, string, error) {
	email, err := helper.GetUserEmailFromToken(c)
	if err != nil {
		return uuid.Nil, "", "", "", err
	}
	papel, err := helper.GetRoleFromToken(c)
	if err != nil {
		return uuid.Nil, "", "", "", err
	}
	eventoID, err := uuid.Parse(c.Params("id_evento"))
	if err != nil {
		return uuid.Nil, "", "", "", fiber.NewError(fiber.StatusBadRequest, "ID de evento inválido")
	}

	var req dto.ConviteRequest
	if err := c.BodyParser(&req); err != nil {
		return uuid.Nil, "", "", "", fiber.NewError(fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return uuid.Nil, "", "", "", err
	}
	return eventoID, req.Email, email, papel, nil
}

// POST /api/events/:id_evento/convidados
func (ctl *ConvidadoController) Convidar(c *fiber.Ctx) error {
	eventoID, alvo, _, papel, err := ctl.parseConvite(c)
	if err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, err)
		}
		return helper.FromFiberError(c, err)
	}

	resultado, err := ctl.Service.Convidar(eventoID, alvo, papel)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Convites processados", resultado)
}

// DELETE /api/events/:id_evento/convidados
func (ctl *ConvidadoController) Desconvidar(c *fiber.Ctx) error {
	eventoID, alvo, email, _, err := ctl.parseConvite(c)
	if err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, err)
		}
		return helper.FromFiberError(c, err)
	}

	if err := ctl.Service.Desconvidar(eventoID, alvo, email); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Convidado removido", fiber.Map{"email": alvo})
}

// GET /api/events/:id_evento/convidados
func (ctl *ConvidadoController) Listar(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventoID, err := uuid.Parse(c.Params("id_evento"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de evento inválido")
	}

	emails, err := ctl.Service.ListarConvidados(eventoID, email)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"convidados": emails})
}
