package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agendai_backend/internals/features/home/notifications/model"
)

type NotificacaoService struct {
	DB *gorm.DB
}

func NewNotificacaoService(db *gorm.DB) *NotificacaoService {
	return &NotificacaoService{DB: db}
}

func (s *NotificacaoService) Criar(usuarioID uuid.UUID, eventoID *uuid.UUID, mensagem string) (*model.NotificacaoModel, error) {
	n := model.NotificacaoModel{
		NotificacaoUsuarioID: usuarioID,
		NotificacaoEventoID:  eventoID,
		NotificacaoMensagem:  mensagem,
	}
	if err := s.DB.Create(&n).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar a notificação")
	}
	return &n, nil
}

func (s *NotificacaoService) ListarPorUsuario(usuarioID uuid.UUID) ([]model.NotificacaoModel, error) {
	var lista []model.NotificacaoModel
	if err := s.DB.
		Where("notificacao_usuario_id = ?", usuarioID).
		Order("notificacao_data DESC").
		Find(&lista).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar notificações")
	}
	return lista, nil
}

// Deletar remove uma notificação do próprio usuário. Não deixa apagar a dos
// outros.
func (s *NotificacaoService) Deletar(notificacaoID, usuarioID uuid.UUID) error {
	var n model.NotificacaoModel
	if err := s.DB.Where("notificacao_id = ?", notificacaoID).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Notificação não encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar a notificação")
	}
	if n.NotificacaoUsuarioID != usuarioID {
		return fiber.NewError(fiber.StatusForbidden, "A notificação pertence a outro usuário")
	}
	if err := s.DB.Delete(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao deletar a notificação")
	}
	return nil
}

// NotificarConvite registra "você foi convidado" para cada usuário. Efeito
// colateral de melhor esforço: falha é logada e engolida, nunca desfaz o
// convite que já foi persistido.
func (s *NotificacaoService) NotificarConvite(eventoID uuid.UUID, nomeEvento string, usuarioIDs []uuid.UUID) {
	if len(usuarioIDs) == 0 {
		return
	}
	lote := make([]model.NotificacaoModel, 0, len(usuarioIDs))
	evID := eventoID
	for _, uid := range usuarioIDs {
		lote = append(lote, model.NotificacaoModel{
			NotificacaoUsuarioID: uid,
			NotificacaoEventoID:  &evID,
			NotificacaoMensagem:  "Você foi convidado para o evento: " + nomeEvento,
		})
	}
	if err := s.DB.Create(&lote).Error; err != nil {
		log.Printf("[WARN] Falha ao notificar convite do evento %s: %v", eventoID, err)
	}
}
