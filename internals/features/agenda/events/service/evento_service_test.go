package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendai_backend/internals/features/agenda/events/model"
)

// Caminhos de validação do CriarEvento que falham antes de tocar o banco.
func TestCriarEventoValidacao(t *testing.T) {
	s := NewEventoService(nil)

	disc := &model.DisciplinaModel{
		DisciplinaNome:    "Estrutura de Dados",
		DisciplinaHorario: "24-AB-tarde",
	}

	casos := []struct {
		nome string
		ev   *model.EventoModel
		disc *model.DisciplinaModel
	}{
		{
			nome: "recorrencia desconhecida",
			ev:   eventoDeTeste(t, "mensal", "2024-03-01", "2024-03-31"),
		},
		{
			nome: "termino antes do inicio",
			ev:   eventoDeTeste(t, model.RecorrenciaDiaria, "2024-03-31", "2024-03-01"),
		},
		{
			nome: "disciplina sem dados da disciplina",
			ev:   eventoDeTeste(t, model.RecorrenciaDisciplina, "2024-03-01", "2024-03-31"),
		},
		{
			nome: "dados de disciplina com recorrencia semanal",
			ev:   eventoDeTeste(t, model.RecorrenciaSemanal, "2024-03-01", "2024-03-31"),
			disc: disc,
		},
		{
			nome: "codigo de horario invalido",
			ev:   eventoDeTeste(t, model.RecorrenciaDisciplina, "2024-03-01", "2024-03-31"),
			disc: &model.DisciplinaModel{DisciplinaHorario: "24-AC-tarde"},
		},
	}

	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			_, err := s.CriarEvento(tc.ev, tc.disc)
			require.Error(t, err)

			fe, ok := err.(*fiber.Error)
			require.True(t, ok)
			assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		})
	}
}
