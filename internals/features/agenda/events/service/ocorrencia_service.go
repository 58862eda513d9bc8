package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"agendai_backend/internals/features/agenda/events/model"
	"agendai_backend/internals/helpers/dbtime"
)

type OcorrenciaService struct {
	DB *gorm.DB
}

func NewOcorrenciaService(db *gorm.DB) *OcorrenciaService {
	return &OcorrenciaService{DB: db}
}

func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// AtualizacaoOcorrencia é o patch de uma ocorrência. Campos nil não mudam.
type AtualizacaoOcorrencia struct {
	Local       *string
	Data        *time.Time
	HoraInicio  *dbtime.Tod
	HoraTermino *dbtime.Tod
}

func (a AtualizacaoOcorrencia) vazia() bool {
	return a.Local == nil && a.Data == nil && a.HoraInicio == nil && a.HoraTermino == nil
}

// DetalheOcorrencia junta a ocorrência com os campos de exibição da série.
// Dias só vem preenchido para recorrência por disciplina.
type DetalheOcorrencia struct {
	Ocorrencia  model.OcorrenciaModel
	Nome        string
	Descricao   string
	Categoria   string
	Recorrencia string
	Dias        []string
}

func (s *OcorrenciaService) buscarEventoDoProprietario(eventoID uuid.UUID, callerEmail string) (*model.EventoModel, error) {
	var ev model.EventoModel
	if err := s.DB.Where("evento_id = ?", eventoID).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Evento não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o evento")
	}
	if ev.EventoProprietarioEmail != callerEmail {
		return nil, fiber.NewError(fiber.StatusForbidden, "Somente o proprietário pode alterar ocorrências deste evento")
	}
	return &ev, nil
}

// AtualizarOcorrencia aplica um override em uma única ocorrência.
// A série é um gerador: depois de materializada, mexer em uma ocorrência
// nunca altera a definição do evento nem as irmãs.
func (s *OcorrenciaService) AtualizarOcorrencia(eventoID uuid.UUID, data time.Time, patch AtualizacaoOcorrencia, callerEmail string) (*model.OcorrenciaModel, error) {
	ev, err := s.buscarEventoDoProprietario(eventoID, callerEmail)
	if err != nil {
		return nil, err
	}

	if patch.vazia() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	var oc model.OcorrenciaModel
	if err := s.DB.
		Where("ocorrencia_evento_id = ? AND ocorrencia_data = ?", eventoID, toDate(data)).
		First(&oc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ocorrência não encontrada para esta data")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar a ocorrência")
	}

	updates := map[string]interface{}{}

	if patch.Data != nil {
		nova := soData(*patch.Data)
		inicio := soData(time.Time(ev.EventoDataInicio))
		termino := soData(time.Time(ev.EventoDataTermino))
		if nova.Before(inicio) || nova.After(termino) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "A nova data está fora da janela do evento")
		}
		updates["ocorrencia_data"] = toDate(nova)
	}
	if patch.Local != nil {
		updates["ocorrencia_local"] = *patch.Local
	}

	// janela resultante: usa o valor novo quando informado, senão o atual
	horaInicio := oc.OcorrenciaHoraInicio
	horaTermino := oc.OcorrenciaHoraTermino
	if patch.HoraInicio != nil {
		horaInicio = *patch.HoraInicio
		updates["ocorrencia_hora_inicio"] = *patch.HoraInicio
	}
	if patch.HoraTermino != nil {
		horaTermino = *patch.HoraTermino
		updates["ocorrencia_hora_termino"] = *patch.HoraTermino
	}
	if !horaInicio.IsZero() && !horaTermino.IsZero() && !horaTermino.Depois(horaInicio) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "O horário de término deve ser posterior ao de início")
	}

	if err := s.DB.Model(&oc).Updates(updates).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar a ocorrência")
	}

	// recarrega o registro atualizado
	if err := s.DB.Where("ocorrencia_id = ?", oc.OcorrenciaID).First(&oc).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao recarregar a ocorrência")
	}
	return &oc, nil
}

// CancelarOcorrencia remove permanentemente a ocorrência de uma data.
// A expansão nunca roda de novo, então o cancelamento não é ressuscitado.
func (s *OcorrenciaService) CancelarOcorrencia(eventoID uuid.UUID, data time.Time, callerEmail string) error {
	if _, err := s.buscarEventoDoProprietario(eventoID, callerEmail); err != nil {
		return err
	}

	res := s.DB.
		Where("ocorrencia_evento_id = ? AND ocorrencia_data = ?", eventoID, toDate(data)).
		Delete(&model.OcorrenciaModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao cancelar a ocorrência")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Ocorrência não encontrada para esta data")
	}
	return nil
}

// BuscarOcorrencia devolve a ocorrência de uma data junto com os campos de
// exibição da série e, para disciplina, a lista ordenada de dias da semana.
func (s *OcorrenciaService) BuscarOcorrencia(eventoID uuid.UUID, data time.Time) (*DetalheOcorrencia, error) {
	var ev model.EventoModel
	if err := s.DB.Where("evento_id = ?", eventoID).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Evento não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar o evento")
	}

	var oc model.OcorrenciaModel
	if err := s.DB.
		Where("ocorrencia_evento_id = ? AND ocorrencia_data = ?", eventoID, toDate(data)).
		First(&oc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ocorrência não encontrada para esta data")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar a ocorrência")
	}

	det := &DetalheOcorrencia{
		Ocorrencia:  oc,
		Nome:        ev.EventoNome,
		Descricao:   ev.EventoDescricao,
		Categoria:   ev.EventoCategoria,
		Recorrencia: ev.EventoRecorrencia,
	}

	if ev.EventoRecorrencia == model.RecorrenciaDisciplina {
		var dias pq.StringArray
		row := s.DB.Raw(`
			SELECT COALESCE(array_agg(disciplina_dia_dia ORDER BY
				array_position(ARRAY['SEG','TER','QUA','QUI','SEX','SAB']::text[], disciplina_dia_dia)), '{}')
			FROM disciplina_dias
			WHERE disciplina_dia_disciplina_id = ?`, eventoID).Row()
		if err := row.Scan(&dias); err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar os dias da disciplina")
		}
		det.Dias = []string(dias)
	}

	return det, nil
}
