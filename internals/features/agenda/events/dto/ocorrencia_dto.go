package dto

import (
	"time"

	"agendai_backend/internals/features/agenda/events/service"
	"agendai_backend/internals/helpers/dbtime"
)

// AtualizarOcorrenciaRequest: todos os campos opcionais; enviar nenhum é 400.
type AtualizarOcorrenciaRequest struct {
	Local       *string `json:"local"        validate:"omitempty,max=255"`
	Data        *string `json:"data"         validate:"omitempty,datetime=2006-01-02"`
	HoraInicio  *string `json:"hora_inicio"  validate:"omitempty"`
	HoraTermino *string `json:"hora_termino" validate:"omitempty"`
}

func (r *AtualizarOcorrenciaRequest) ToPatch() (service.AtualizacaoOcorrencia, error) {
	var patch service.AtualizacaoOcorrencia
	patch.Local = r.Local

	if r.Data != nil {
		d, err := time.Parse("2006-01-02", *r.Data)
		if err != nil {
			return patch, err
		}
		patch.Data = &d
	}
	if r.HoraInicio != nil {
		h, err := dbtime.Parse(*r.HoraInicio)
		if err != nil {
			return patch, err
		}
		patch.HoraInicio = &h
	}
	if r.HoraTermino != nil {
		h, err := dbtime.Parse(*r.HoraTermino)
		if err != nil {
			return patch, err
		}
		patch.HoraTermino = &h
	}
	return patch, nil
}

// OcorrenciaResponse achata a ocorrência com os campos de exibição da série.
type OcorrenciaResponse struct {
	EventoID    string   `json:"evento_id"`
	Nome        string   `json:"nome"`
	Descricao   string   `json:"descricao,omitempty"`
	Categoria   string   `json:"categoria,omitempty"`
	Recorrencia string   `json:"recorrencia"`
	Data        string   `json:"data"`
	HoraInicio  string   `json:"hora_inicio"`
	HoraTermino string   `json:"hora_termino"`
	Local       string   `json:"local,omitempty"`
	Dias        []string `json:"dias,omitempty"`
}

func ToOcorrenciaResponse(det *service.DetalheOcorrencia) OcorrenciaResponse {
	oc := det.Ocorrencia
	return OcorrenciaResponse{
		EventoID:    oc.OcorrenciaEventoID.String(),
		Nome:        det.Nome,
		Descricao:   det.Descricao,
		Categoria:   det.Categoria,
		Recorrencia: det.Recorrencia,
		Data:        time.Time(oc.OcorrenciaData).Format("2006-01-02"),
		HoraInicio:  oc.OcorrenciaHoraInicio.Format("15:04:05"),
		HoraTermino: oc.OcorrenciaHoraTermino.Format("15:04:05"),
		Local:       oc.OcorrenciaLocal,
		Dias:        det.Dias,
	}
}
