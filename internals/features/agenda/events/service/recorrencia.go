package service

import (
	"sort"
	"time"

	"agendai_backend/internals/features/agenda/events/model"
	"agendai_backend/internals/helpers/dbtime"
)

// Slot é uma posição concreta no calendário produzida pela expansão de uma
// série: uma data e a janela de horário daquele dia.
type Slot struct {
	Data        time.Time // meia-noite UTC, só a parte de data interessa
	HoraInicio  dbtime.Tod
	HoraTermino dbtime.Tod
}

func soData(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ExpandirRecorrencia materializa a lista ordenada de slots de uma série.
// Função pura e determinística: mesma série (e grade) → mesmos slots.
// Para recorrência "disciplina" a janela horária vem da grade, não dos
// padrões do evento. Janela sem nenhum dia compatível devolve zero slots,
// o que é válido.
func ExpandirRecorrencia(ev *model.EventoModel, grade *GradeHoraria) ([]Slot, error) {
	inicio := soData(time.Time(ev.EventoDataInicio))
	termino := soData(time.Time(ev.EventoDataTermino))

	// "unico" ignora a data de término por completo
	if ev.EventoRecorrencia == model.RecorrenciaUnico {
		return []Slot{{
			Data:        inicio,
			HoraInicio:  ev.EventoHoraInicioPadrao,
			HoraTermino: ev.EventoHoraTerminoPadrao,
		}}, nil
	}

	if inicio.After(termino) {
		return nil, &ErroIntervalo{Inicio: inicio, Termino: termino}
	}

	switch ev.EventoRecorrencia {
	case model.RecorrenciaDiaria:
		var slots []Slot
		for d := inicio; !d.After(termino); d = d.AddDate(0, 0, 1) {
			slots = append(slots, Slot{d, ev.EventoHoraInicioPadrao, ev.EventoHoraTerminoPadrao})
		}
		return slots, nil

	case model.RecorrenciaDiasUteis:
		var slots []Slot
		for d := inicio; !d.After(termino); d = d.AddDate(0, 0, 1) {
			if wd := d.Weekday(); wd >= time.Monday && wd <= time.Friday {
				slots = append(slots, Slot{d, ev.EventoHoraInicioPadrao, ev.EventoHoraTerminoPadrao})
			}
		}
		return slots, nil

	case model.RecorrenciaSemanal:
		var slots []Slot
		for d := inicio; !d.After(termino); d = d.AddDate(0, 0, 7) {
			slots = append(slots, Slot{d, ev.EventoHoraInicioPadrao, ev.EventoHoraTerminoPadrao})
		}
		return slots, nil

	case model.RecorrenciaDisciplina:
		if grade == nil {
			return nil, ErrGradeAusente
		}
		var slots []Slot
		for _, wd := range grade.Dias {
			// primeira data >= início caindo nesse dia da semana
			delta := (int(wd) - int(inicio.Weekday()) + 7) % 7
			for d := inicio.AddDate(0, 0, delta); !d.After(termino); d = d.AddDate(0, 0, 7) {
				slots = append(slots, Slot{d, grade.HoraInicio, grade.HoraTermino})
			}
		}
		sort.Slice(slots, func(i, j int) bool { return slots[i].Data.Before(slots[j].Data) })
		return slots, nil

	default:
		return nil, ErrRecorrenciaInvalida
	}
}
