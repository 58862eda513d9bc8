package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"agendai_backend/internals/features/agenda/events/model"
	"agendai_backend/internals/helpers/dbtime"
)

// CriarEventoRequest cobre todas as recorrências. Para "disciplina" o bloco
// Disciplina é obrigatório e a janela horária vem do código, não dos campos
// hora_inicio/hora_termino.
type CriarEventoRequest struct {
	Nome           string `json:"nome"            validate:"required,min=3,max=255"`
	Descricao      string `json:"descricao"       validate:"omitempty,max=1000"`
	UniversidadeID string `json:"universidade_id" validate:"required,uuid4"`
	DataInicio     string `json:"data_inicio"     validate:"required,datetime=2006-01-02"`
	DataTermino    string `json:"data_termino"    validate:"omitempty,datetime=2006-01-02"`
	HoraInicio     string `json:"hora_inicio"     validate:"omitempty"`
	HoraTermino    string `json:"hora_termino"    validate:"omitempty"`
	Local          string `json:"local"           validate:"omitempty,max=255"`
	Recorrencia    string `json:"recorrencia"     validate:"required,oneof=unico diaria dias_uteis semanal disciplina"`
	Categoria      string `json:"categoria"       validate:"omitempty,max=100"`

	Disciplina *DisciplinaRequest `json:"disciplina" validate:"omitempty"`
}

type DisciplinaRequest struct {
	ProfessorID string `json:"professor_id" validate:"required,uuid4"`
	Nome        string `json:"nome"         validate:"required,min=3,max=255"`
	Horario     string `json:"horario"      validate:"required,min=5,max=10"`
}

// ToModel monta o EventoModel (sem ID; o banco gera) a partir da requisição
// já validada. Datas e horas chegam como string e são convertidas aqui.
func (r *CriarEventoRequest) ToModel(proprietarioEmail string) (*model.EventoModel, error) {
	inicio, err := time.Parse("2006-01-02", r.DataInicio)
	if err != nil {
		return nil, err
	}
	termino := inicio
	if r.DataTermino != "" {
		if termino, err = time.Parse("2006-01-02", r.DataTermino); err != nil {
			return nil, err
		}
	}

	var horaInicio, horaTermino dbtime.Tod
	if r.HoraInicio != "" {
		if horaInicio, err = dbtime.Parse(r.HoraInicio); err != nil {
			return nil, err
		}
	}
	if r.HoraTermino != "" {
		if horaTermino, err = dbtime.Parse(r.HoraTermino); err != nil {
			return nil, err
		}
	}

	universidadeID, err := uuid.Parse(r.UniversidadeID)
	if err != nil {
		return nil, err
	}

	return &model.EventoModel{
		EventoNome:              r.Nome,
		EventoDescricao:         r.Descricao,
		EventoUniversidadeID:    universidadeID,
		EventoDataInicio:        datatypes.Date(inicio),
		EventoDataTermino:       datatypes.Date(termino),
		EventoHoraInicioPadrao:  horaInicio,
		EventoHoraTerminoPadrao: horaTermino,
		EventoLocalPadrao:       r.Local,
		EventoRecorrencia:       r.Recorrencia,
		EventoCategoria:         r.Categoria,
		EventoProprietarioEmail: proprietarioEmail,
	}, nil
}

func (r *DisciplinaRequest) ToModel() (*model.DisciplinaModel, error) {
	professorID, err := uuid.Parse(r.ProfessorID)
	if err != nil {
		return nil, err
	}
	return &model.DisciplinaModel{
		DisciplinaProfessorID: professorID,
		DisciplinaNome:        r.Nome,
		DisciplinaHorario:     r.Horario,
	}, nil
}

// CriarEventoResponse devolve a série criada com o total materializado.
type CriarEventoResponse struct {
	Evento      *model.EventoModel `json:"evento"`
	Ocorrencias int                `json:"ocorrencias_criadas"`
}
