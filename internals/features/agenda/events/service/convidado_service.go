package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agendai_backend/internals/constants"
	"agendai_backend/internals/features/agenda/events/model"
	notifservice "agendai_backend/internals/features/home/notifications/service"
	universitymodel "agendai_backend/internals/features/university/cursos/model"
	usermodel "agendai_backend/internals/features/users/user/model"
)

type ConvidadoService struct {
	DB           *gorm.DB
	Notificacoes *notifservice.NotificacaoService
}

func NewConvidadoService(db *gorm.DB) *ConvidadoService {
	return &ConvidadoService{
		DB:           db,
		Notificacoes: notifservice.NewNotificacaoService(db),
	}
}

// ResultadoConvite separa quem entrou agora de quem já estava na lista.
// Convidar de novo não é erro — a operação é idempotente.
type ResultadoConvite struct {
	Adicionados  []string `json:"adicionados"`
	JaConvidados []string `json:"ja_convidados"`
}

// Convidar resolve um endereço para a lista de usuários e os adiciona como
// convidados do evento. Ordem de resolução:
//  1. curinga "todos@<domínio>"  → todos os usuários do domínio e subdomínios
//  2. email de contato de curso  → alunos matriculados no curso
//  3. email individual           → aquele usuário
//
// Curinga e curso são reservados ao papel institucional; convite individual
// vale para qualquer autenticado. Só o desconvite exige o proprietário.
func (s *ConvidadoService) Convidar(eventoID uuid.UUID, email, callerRole string) (*ResultadoConvite, error) {
	var ev model.EventoModel
	if err := s.DB.Where("evento_id = ?", eventoID).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Evento não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o evento")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Email de convite inválido")
	}

	var usuarios []usermodel.UsuarioModel

	switch {
	case strings.HasPrefix(email, "todos@"):
		if callerRole != constants.RoleUniversidade {
			return nil, fiber.NewError(fiber.StatusForbidden, "Convite por domínio é reservado à universidade")
		}
		dominio := strings.TrimPrefix(email, "todos@")
		if dominio == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Domínio do curinga não informado")
		}
		// "@dom" pega o domínio exato; ".dom" pega os subdomínios
		// (aluno.uece.br cai sob uece.br)
		if err := s.DB.
			Where("usuario_email LIKE ? OR usuario_email LIKE ?", "%@"+dominio, "%."+dominio).
			Find(&usuarios).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao resolver o domínio")
		}

	default:
		var curso universitymodel.CursoModel
		err := s.DB.Where("curso_email = ?", email).First(&curso).Error
		switch {
		case err == nil:
			if callerRole != constants.RoleUniversidade {
				return nil, fiber.NewError(fiber.StatusForbidden, "Convite por curso é reservado à universidade")
			}
			if err := s.DB.
				Joins("JOIN alunos ON alunos.aluno_usuario_id = usuarios.usuario_id").
				Where("alunos.aluno_curso_id = ?", curso.CursoID).
				Find(&usuarios).Error; err != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao resolver os alunos do curso")
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			var u usermodel.UsuarioModel
			if err := s.DB.Where("usuario_email = ?", email).First(&u).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado para o email informado")
				}
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o usuário")
			}
			usuarios = append(usuarios, u)

		default:
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o curso")
		}
	}

	// quem já está na lista não entra de novo
	var existentes []uuid.UUID
	if err := s.DB.Model(&model.ConvidadoModel{}).
		Where("convidado_evento_id = ?", eventoID).
		Pluck("convidado_usuario_id", &existentes).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar convidados existentes")
	}
	jaEsta := make(map[uuid.UUID]bool, len(existentes))
	for _, id := range existentes {
		jaEsta[id] = true
	}

	resultado := &ResultadoConvite{Adicionados: []string{}, JaConvidados: []string{}}
	var novos []model.ConvidadoModel
	var novosIDs []uuid.UUID
	for _, u := range usuarios {
		if jaEsta[u.UsuarioID] {
			resultado.JaConvidados = append(resultado.JaConvidados, u.UsuarioEmail)
			continue
		}
		jaEsta[u.UsuarioID] = true
		novos = append(novos, model.ConvidadoModel{
			ConvidadoEventoID:  eventoID,
			ConvidadoUsuarioID: u.UsuarioID,
		})
		novosIDs = append(novosIDs, u.UsuarioID)
		resultado.Adicionados = append(resultado.Adicionados, u.UsuarioEmail)
	}

	if len(novos) > 0 {
		if err := s.DB.Create(&novos).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar os convidados")
		}
		// melhor esforço, nunca bloqueia a resposta
		go s.Notificacoes.NotificarConvite(eventoID, ev.EventoNome, novosIDs)
	}

	return resultado, nil
}

// Desconvidar remove um usuário da lista de convidados do evento.
func (s *ConvidadoService) Desconvidar(eventoID uuid.UUID, email, callerEmail string) error {
	var ev model.EventoModel
	if err := s.DB.Where("evento_id = ?", eventoID).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Evento não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o evento")
	}
	if ev.EventoProprietarioEmail != callerEmail {
		return fiber.NewError(fiber.StatusForbidden, "Somente o proprietário pode desconvidar do evento")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	var u usermodel.UsuarioModel
	if err := s.DB.Where("usuario_email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado para o email informado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o usuário")
	}

	res := s.DB.
		Where("convidado_evento_id = ? AND convidado_usuario_id = ?", eventoID, u.UsuarioID).
		Delete(&model.ConvidadoModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover o convidado")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "O usuário não é convidado deste evento")
	}
	return nil
}

// ListarConvidados devolve os emails convidados de um evento do proprietário.
func (s *ConvidadoService) ListarConvidados(eventoID uuid.UUID, callerEmail string) ([]string, error) {
	var ev model.EventoModel
	if err := s.DB.Where("evento_id = ?", eventoID).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Evento não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o evento")
	}
	if ev.EventoProprietarioEmail != callerEmail {
		return nil, fiber.NewError(fiber.StatusForbidden, "Somente o proprietário pode listar os convidados")
	}

	var emails []string
	if err := s.DB.Model(&model.ConvidadoModel{}).
		Joins("JOIN usuarios ON usuarios.usuario_id = convidados.convidado_usuario_id").
		Where("convidado_evento_id = ?", eventoID).
		Order("usuarios.usuario_email").
		Pluck("usuarios.usuario_email", &emails).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar os convidados")
	}
	return emails, nil
}
