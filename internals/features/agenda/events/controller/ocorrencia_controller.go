package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agendai_backend/internals/features/agenda/events/dto"
	"agendai_backend/internals/features/agenda/events/service"
	helper "agendai_backend/internals/helpers"
)

type OcorrenciaController struct {
	DB       *gorm.DB
	Service  *service.OcorrenciaService
	Validate *validator.Validate
}

func NewOcorrenciaController(db *gorm.DB) *OcorrenciaController {
	return &OcorrenciaController{
		DB:       db,
		Service:  service.NewOcorrenciaService(db),
		Validate: validator.New(),
	}
}

func paramsEventoData(c *fiber.Ctx) (uuid.UUID, time.Time, error) {
	eventoID, err := uuid.Parse(c.Params("id_evento"))
	if err != nil {
		return uuid.Nil, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "ID de evento inválido")
	}
	data, err := time.Parse("2006-01-02", c.Params("data"))
	if err != nil {
		return uuid.Nil, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Data inválida, use AAAA-MM-DD")
	}
	return eventoID, data, nil
}

// ========================== GET ==========================
// GET /api/events/:id_evento/:data (público)
func (ctl *OcorrenciaController) Buscar(c *fiber.Ctx) error {
	eventoID, data, err := paramsEventoData(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	det, err := ctl.Service.BuscarOcorrencia(eventoID, data)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToOcorrenciaResponse(det))
}

// ========================== UPDATE ==========================
// PUT /api/events/:id_evento/:data
func (ctl *OcorrenciaController) Atualizar(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventoID, data, err := paramsEventoData(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AtualizarOcorrenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	patch, err := req.ToPatch()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Campos de data/hora inválidos: "+err.Error())
	}

	oc, err := ctl.Service.AtualizarOcorrencia(eventoID, data, patch, email)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Ocorrência atualizada", oc)
}

// ========================== CANCEL ==========================
// DELETE /api/events/:id_evento/:data
func (ctl *OcorrenciaController) Cancelar(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventoID, data, err := paramsEventoData(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.Service.CancelarOcorrencia(eventoID, data, email); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Ocorrência cancelada", fiber.Map{
		"evento_id": eventoID,
		"data":      data.Format("2006-01-02"),
	})
}
