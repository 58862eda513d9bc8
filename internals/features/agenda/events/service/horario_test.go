package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodigoHorario(t *testing.T) {
	t.Run("35-CD-manha", func(t *testing.T) {
		g, err := ParseCodigoHorario("35-CD-manha")
		require.NoError(t, err)

		assert.Equal(t, []time.Weekday{time.Tuesday, time.Thursday}, g.Dias)
		assert.Equal(t, []string{"TER", "QUI"}, g.Siglas)
		assert.Equal(t, "manha", g.Turno)
		// janela = início do bloco C, término do bloco D
		assert.Equal(t, "09:30:00", g.HoraInicio.Format("15:04:05"))
		assert.Equal(t, "11:00:00", g.HoraTermino.Format("15:04:05"))
	})

	t.Run("24-AB-tarde", func(t *testing.T) {
		g, err := ParseCodigoHorario("24-AB-tarde")
		require.NoError(t, err)

		assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, g.Dias)
		assert.Equal(t, "13:30:00", g.HoraInicio.Format("15:04:05"))
		assert.Equal(t, "15:10:00", g.HoraTermino.Format("15:04:05"))
	})

	t.Run("bloco unico", func(t *testing.T) {
		g, err := ParseCodigoHorario("6-A-noite")
		require.NoError(t, err)

		assert.Equal(t, []time.Weekday{time.Friday}, g.Dias)
		assert.Equal(t, "18:30:00", g.HoraInicio.Format("15:04:05"))
		assert.Equal(t, "19:20:00", g.HoraTermino.Format("15:04:05"))
	})

	t.Run("dias repetidos e fora de ordem sao normalizados", func(t *testing.T) {
		g, err := ParseCodigoHorario("532-AB-manha")
		require.NoError(t, err)
		assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Thursday}, g.Dias)
		assert.Equal(t, []string{"SEG", "TER", "QUI"}, g.Siglas)
	})

	t.Run("minusculas e maiusculas aceitas", func(t *testing.T) {
		_, err := ParseCodigoHorario("24-ab-TARDE")
		assert.NoError(t, err)
	})
}

func TestParseCodigoHorarioErros(t *testing.T) {
	casos := []struct {
		nome     string
		codigo   string
		segmento string
	}{
		{"segmentos de menos", "35-CD", "formato"},
		{"segmentos demais", "35-CD-manha-extra", "formato"},
		{"turno desconhecido", "35-CD-madrugada", "turno"},
		{"digito 1 nao existe", "15-CD-manha", "dias"},
		{"digito 8 nao existe", "38-CD-manha", "dias"},
		{"dias vazio", "-CD-manha", "dias"},
		{"blocos vazio", "35--manha", "blocos"},
		{"bloco inexistente no turno", "35-E-noite", "blocos"},
		{"blocos nao contiguos", "35-AC-manha", "blocos"},
		{"blocos decrescentes", "35-BA-manha", "blocos"},
	}

	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			_, err := ParseCodigoHorario(tc.codigo)
			require.Error(t, err)

			var he *ErroHorario
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tc.segmento, he.Segmento)
		})
	}
}

func TestGradeDeSiglas(t *testing.T) {
	inicio := mustTod(t, "13:30")
	termino := mustTod(t, "15:10")

	t.Run("ordena e remove duplicatas", func(t *testing.T) {
		g, err := GradeDeSiglas([]string{"QUI", "seg", "QUI"}, inicio, termino)
		require.NoError(t, err)
		assert.Equal(t, []time.Weekday{time.Monday, time.Thursday}, g.Dias)
		assert.Equal(t, inicio, g.HoraInicio)
		assert.Equal(t, termino, g.HoraTermino)
	})

	t.Run("sigla desconhecida", func(t *testing.T) {
		_, err := GradeDeSiglas([]string{"DOM"}, inicio, termino)
		assert.Error(t, err)
	})

	t.Run("lista vazia", func(t *testing.T) {
		_, err := GradeDeSiglas(nil, inicio, termino)
		assert.ErrorIs(t, err, ErrGradeAusente)
	})
}
