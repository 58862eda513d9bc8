package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"agendai_backend/internals/features/agenda/events/model"
	"agendai_backend/internals/helpers/dbtime"
)

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	require.NoError(t, err)
	return tod
}

func eventoDeTeste(t *testing.T, recorrencia, inicio, termino string) *model.EventoModel {
	t.Helper()
	di, err := time.Parse("2006-01-02", inicio)
	require.NoError(t, err)
	dt, err := time.Parse("2006-01-02", termino)
	require.NoError(t, err)
	return &model.EventoModel{
		EventoNome:              "Reunião do colegiado",
		EventoRecorrencia:       recorrencia,
		EventoDataInicio:        datatypes.Date(di),
		EventoDataTermino:       datatypes.Date(dt),
		EventoHoraInicioPadrao:  mustTod(t, "10:00"),
		EventoHoraTerminoPadrao: mustTod(t, "11:00"),
	}
}

func TestExpandirRecorrenciaUnico(t *testing.T) {
	// "unico" ignora a data de término, mesmo incoerente
	ev := eventoDeTeste(t, model.RecorrenciaUnico, "2024-03-10", "2024-01-01")

	slots, err := ExpandirRecorrencia(ev, nil)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "2024-03-10", slots[0].Data.Format("2006-01-02"))
	assert.Equal(t, ev.EventoHoraInicioPadrao, slots[0].HoraInicio)
	assert.Equal(t, ev.EventoHoraTerminoPadrao, slots[0].HoraTermino)
}

func TestExpandirRecorrenciaDiaria(t *testing.T) {
	ev := eventoDeTeste(t, model.RecorrenciaDiaria, "2024-03-01", "2024-03-10")

	slots, err := ExpandirRecorrencia(ev, nil)
	require.NoError(t, err)
	// dias = (término - início) + 1
	require.Len(t, slots, 10)
	assert.Equal(t, "2024-03-01", slots[0].Data.Format("2006-01-02"))
	assert.Equal(t, "2024-03-10", slots[9].Data.Format("2006-01-02"))
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 24*time.Hour, slots[i].Data.Sub(slots[i-1].Data))
	}
}

func TestExpandirRecorrenciaDiasUteis(t *testing.T) {
	// 2024-03-01 é sexta; 02/03 e 09/10 caem no fim de semana
	ev := eventoDeTeste(t, model.RecorrenciaDiasUteis, "2024-03-01", "2024-03-10")

	slots, err := ExpandirRecorrencia(ev, nil)
	require.NoError(t, err)
	require.Len(t, slots, 6)
	for _, s := range slots {
		wd := s.Data.Weekday()
		assert.True(t, wd >= time.Monday && wd <= time.Friday, "dia %s caiu em %s", s.Data.Format("2006-01-02"), wd)
	}
}

func TestExpandirRecorrenciaSemanal(t *testing.T) {
	ev := eventoDeTeste(t, model.RecorrenciaSemanal, "2024-03-04", "2024-03-25")

	slots, err := ExpandirRecorrencia(ev, nil)
	require.NoError(t, err)
	require.Len(t, slots, 4)
	for i, s := range slots {
		assert.Equal(t, time.Monday, s.Data.Weekday())
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, s.Data.Sub(slots[i-1].Data))
		}
	}
}

func TestExpandirRecorrenciaDisciplina(t *testing.T) {
	grade, err := ParseCodigoHorario("24-AB-tarde")
	require.NoError(t, err)

	// 4 semanas cheias: segundas 04/11/18/25, quartas 06/13/20/27
	ev := eventoDeTeste(t, model.RecorrenciaDisciplina, "2024-03-04", "2024-03-31")

	slots, err := ExpandirRecorrencia(ev, grade)
	require.NoError(t, err)
	require.Len(t, slots, 8)

	// ordenados por data, janela vinda da grade (não dos padrões do evento)
	for i, s := range slots {
		if i > 0 {
			assert.True(t, s.Data.After(slots[i-1].Data))
		}
		wd := s.Data.Weekday()
		assert.True(t, wd == time.Monday || wd == time.Wednesday)
		assert.Equal(t, "13:30:00", s.HoraInicio.Format("15:04:05"))
		assert.Equal(t, "15:10:00", s.HoraTermino.Format("15:04:05"))
	}

	t.Run("sem grade", func(t *testing.T) {
		_, err := ExpandirRecorrencia(ev, nil)
		assert.ErrorIs(t, err, ErrGradeAusente)
	})
}

func TestExpandirRecorrenciaIntervaloInvalido(t *testing.T) {
	for _, tipo := range []string{
		model.RecorrenciaDiaria,
		model.RecorrenciaDiasUteis,
		model.RecorrenciaSemanal,
	} {
		t.Run(tipo, func(t *testing.T) {
			ev := eventoDeTeste(t, tipo, "2024-03-10", "2024-03-01")
			_, err := ExpandirRecorrencia(ev, nil)

			var ie *ErroIntervalo
			require.ErrorAs(t, err, &ie)
		})
	}
}

func TestExpandirRecorrenciaJanelaSemDiaCompativel(t *testing.T) {
	// grade só tem segunda; janela de terça a quinta → zero slots, sem erro
	grade, err := GradeDeSiglas([]string{"SEG"}, mustTod(t, "13:30"), mustTod(t, "15:10"))
	require.NoError(t, err)

	ev := eventoDeTeste(t, model.RecorrenciaDisciplina, "2024-03-05", "2024-03-07")
	slots, err := ExpandirRecorrencia(ev, grade)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestExpandirRecorrenciaTipoDesconhecido(t *testing.T) {
	ev := eventoDeTeste(t, "mensal", "2024-03-01", "2024-03-31")
	_, err := ExpandirRecorrencia(ev, nil)
	assert.ErrorIs(t, err, ErrRecorrenciaInvalida)
}
