package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendai_backend/internals/constants"
)

func TestConvidarCuringaExigeUniversidade(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewConvidadoService(gdb)

	eventoID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, inicio))

	_, err := s.Convidar(eventoID, "todos@uece.br", constants.RoleProfessor)
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// O convite não é restrito ao proprietário: a universidade pode usar o
// curinga em qualquer série, e convite individual vale para qualquer
// autenticado. Só o desconvite exige o proprietário.
func TestConvidarCuringaEmSerieDeOutroProprietario(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewConvidadoService(gdb)

	eventoID := uuid.New()
	usuarioID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// série pertence a uma professora, não à universidade que convida
	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, inicio))

	mock.ExpectQuery(`SELECT \* FROM "usuarios"`).
		WillReturnRows(sqlmock.NewRows([]string{"usuario_id", "usuario_nome", "usuario_email"}).
			AddRow(usuarioID.String(), "Maria Silva", "maria.silva@aluno.uece.br"))

	mock.ExpectQuery(`SELECT "convidado_usuario_id" FROM "convidados"`).
		WillReturnRows(sqlmock.NewRows([]string{"convidado_usuario_id"}).AddRow(usuarioID.String()))

	resultado, err := s.Convidar(eventoID, "todos@uece.br", constants.RoleUniversidade)
	require.NoError(t, err)

	assert.Empty(t, resultado.Adicionados)
	assert.Equal(t, []string{"maria.silva@aluno.uece.br"}, resultado.JaConvidados)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvidarIndividualJaConvidado(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewConvidadoService(gdb)

	eventoID := uuid.New()
	usuarioID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, inicio))

	// não é email de contato de curso
	mock.ExpectQuery(`SELECT \* FROM "cursos"`).
		WillReturnRows(sqlmock.NewRows([]string{"curso_id"}))

	mock.ExpectQuery(`SELECT \* FROM "usuarios"`).
		WillReturnRows(sqlmock.NewRows([]string{"usuario_id", "usuario_nome", "usuario_email"}).
			AddRow(usuarioID.String(), "Maria Silva", "maria.silva@aluno.uece.br"))

	// já consta na lista → nenhum INSERT acontece
	mock.ExpectQuery(`SELECT "convidado_usuario_id" FROM "convidados"`).
		WillReturnRows(sqlmock.NewRows([]string{"convidado_usuario_id"}).AddRow(usuarioID.String()))

	resultado, err := s.Convidar(eventoID, "maria.silva@aluno.uece.br", constants.RoleProfessor)
	require.NoError(t, err)

	assert.Empty(t, resultado.Adicionados)
	assert.Equal(t, []string{"maria.silva@aluno.uece.br"}, resultado.JaConvidados)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvidarEmailDesconhecido(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewConvidadoService(gdb)

	eventoID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, inicio))
	mock.ExpectQuery(`SELECT \* FROM "cursos"`).
		WillReturnRows(sqlmock.NewRows([]string{"curso_id"}))
	mock.ExpectQuery(`SELECT \* FROM "usuarios"`).
		WillReturnRows(sqlmock.NewRows([]string{"usuario_id"}))

	_, err := s.Convidar(eventoID, "ninguem@uece.br", constants.RoleProfessor)
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvidarEmailMalformado(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewConvidadoService(gdb)

	eventoID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, inicio))

	_, err := s.Convidar(eventoID, "sem-arroba", constants.RoleUniversidade)
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
