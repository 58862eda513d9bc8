package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agendai_backend/internals/features/home/notifications/service"
	usermodel "agendai_backend/internals/features/users/user/model"
	helper "agendai_backend/internals/helpers"
)

type NotificacaoController struct {
	DB      *gorm.DB
	Service *service.NotificacaoService
}

func NewNotificacaoController(db *gorm.DB) *NotificacaoController {
	return &NotificacaoController{
		DB:      db,
		Service: service.NewNotificacaoService(db),
	}
}

func (ctl *NotificacaoController) usuarioDoToken(c *fiber.Ctx) (uuid.UUID, error) {
	email, err := helper.GetUserEmailFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	var u usermodel.UsuarioModel
	if err := ctl.DB.Where("usuario_email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o usuário")
	}
	return u.UsuarioID, nil
}

// GET /api/notificacoes
func (ctl *NotificacaoController) Listar(c *fiber.Ctx) error {
	usuarioID, err := ctl.usuarioDoToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lista, err := ctl.Service.ListarPorUsuario(usuarioID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", lista)
}

// DELETE /api/notificacoes/:id
func (ctl *NotificacaoController) Deletar(c *fiber.Ctx) error {
	usuarioID, err := ctl.usuarioDoToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	notificacaoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de notificação inválido")
	}
	if err := ctl.Service.Deletar(notificacaoID, usuarioID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Notificação removida", fiber.Map{"notificacao_id": notificacaoID})
}
