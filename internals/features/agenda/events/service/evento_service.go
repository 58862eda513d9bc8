package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agendai_backend/internals/features/agenda/events/model"
)

type EventoService struct {
	DB *gorm.DB
}

func NewEventoService(db *gorm.DB) *EventoService {
	return &EventoService{DB: db}
}

var recorrenciasValidas = map[string]bool{
	model.RecorrenciaUnico:      true,
	model.RecorrenciaDiaria:     true,
	model.RecorrenciaDiasUteis:  true,
	model.RecorrenciaSemanal:    true,
	model.RecorrenciaDisciplina: true,
}

// CriarEvento valida a série, decodifica a grade (quando for disciplina),
// expande a recorrência e persiste evento + disciplina + dias + ocorrências
// em uma única transação. Qualquer falha desfaz tudo — nunca fica série
// parcialmente materializada.
func (s *EventoService) CriarEvento(ev *model.EventoModel, disc *model.DisciplinaModel) ([]model.OcorrenciaModel, error) {
	if !recorrenciasValidas[ev.EventoRecorrencia] {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tipo de recorrência inválido")
	}

	inicio := time.Time(ev.EventoDataInicio)
	termino := time.Time(ev.EventoDataTermino)
	if ev.EventoRecorrencia != model.RecorrenciaUnico && !termino.After(inicio) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "A data de término deve ser posterior à data de início")
	}

	var grade *GradeHoraria
	if ev.EventoRecorrencia == model.RecorrenciaDisciplina {
		if disc == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Recorrência por disciplina exige os dados da disciplina")
		}
		g, err := ParseCodigoHorario(disc.DisciplinaHorario)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		grade = g
	} else if disc != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Disciplina só é aceita com recorrência por disciplina")
	}

	slots, err := ExpandirRecorrencia(ev, grade)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var ocorrencias []model.OcorrenciaModel
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ev).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar o evento")
		}

		if disc != nil {
			disc.DisciplinaEventoID = ev.EventoID
			if err := tx.Create(disc).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar a disciplina")
			}
			dias := make([]model.DisciplinaDiaModel, 0, len(grade.Siglas))
			for _, sigla := range grade.Siglas {
				dias = append(dias, model.DisciplinaDiaModel{
					DisciplinaDiaDisciplinaID: disc.DisciplinaEventoID,
					DisciplinaDiaDia:          sigla,
				})
			}
			if err := tx.Create(&dias).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar os dias da disciplina")
			}
		}

		ocorrencias = make([]model.OcorrenciaModel, 0, len(slots))
		for _, slot := range slots {
			oc := model.OcorrenciaModel{
				OcorrenciaEventoID:    ev.EventoID,
				OcorrenciaData:        toDate(slot.Data),
				OcorrenciaHoraInicio:  slot.HoraInicio,
				OcorrenciaHoraTermino: slot.HoraTermino,
				OcorrenciaLocal:       ev.EventoLocalPadrao,
			}
			ocorrencias = append(ocorrencias, oc)
		}
		if len(ocorrencias) > 0 {
			if err := tx.Create(&ocorrencias).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao materializar as ocorrências")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] Evento %s materializado com %d ocorrência(s)", ev.EventoID, len(ocorrencias))
	return ocorrencias, nil
}

// DeletarEvento remove a série e toda a sua cadeia (convidados, ocorrências,
// dias da disciplina, disciplina) em uma transação. Somente o proprietário.
func (s *EventoService) DeletarEvento(eventoID uuid.UUID, callerEmail string) error {
	var ev model.EventoModel
	if err := s.DB.Where("evento_id = ?", eventoID).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Evento não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o evento")
	}
	if ev.EventoProprietarioEmail != callerEmail {
		return fiber.NewError(fiber.StatusForbidden, "Somente o proprietário pode deletar o evento")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("convidado_evento_id = ?", eventoID).
			Delete(&model.ConvidadoModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover convidados")
		}
		if err := tx.Where("ocorrencia_evento_id = ?", eventoID).
			Delete(&model.OcorrenciaModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover ocorrências")
		}
		if err := tx.Where("disciplina_dia_disciplina_id = ?", eventoID).
			Delete(&model.DisciplinaDiaModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover dias da disciplina")
		}
		if err := tx.Where("disciplina_evento_id = ?", eventoID).
			Delete(&model.DisciplinaModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover a disciplina")
		}
		if err := tx.Delete(&ev).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover o evento")
		}
		return nil
	})
}
