package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func novoDBMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gdb, mock
}

func linhasEvento(eventoID uuid.UUID, proprietario, recorrencia string, inicio, termino time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"evento_id", "evento_nome", "evento_recorrencia",
		"evento_proprietario_email", "evento_data_inicio", "evento_data_termino",
	}).AddRow(eventoID.String(), "Reunião do colegiado", recorrencia, proprietario, inicio, termino)
}

func TestAtualizarOcorrenciaSemCampos(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewOcorrenciaService(gdb)

	eventoID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	termino := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, termino))

	_, err := s.AtualizarOcorrencia(eventoID, inicio, AtualizacaoOcorrencia{}, "ana.costa@uece.br")
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtualizarOcorrenciaNaoProprietario(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewOcorrenciaService(gdb)

	eventoID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, inicio))

	local := "Sala 204"
	_, err := s.AtualizarOcorrencia(eventoID, inicio, AtualizacaoOcorrencia{Local: &local}, "outra.pessoa@uece.br")
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func linhasOcorrencia(ocorrenciaID, eventoID uuid.UUID, data time.Time, inicio, termino, local string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"ocorrencia_id", "ocorrencia_evento_id", "ocorrencia_data",
		"ocorrencia_hora_inicio", "ocorrencia_hora_termino", "ocorrencia_local",
	}).AddRow(ocorrenciaID.String(), eventoID.String(), data, inicio, termino, local)
}

func TestAtualizarOcorrenciaJanelaHorariaInvalida(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewOcorrenciaService(gdb)

	eventoID := uuid.New()
	ocorrenciaID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	termino := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	data := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, termino))
	mock.ExpectQuery(`SELECT \* FROM "ocorrencias"`).
		WillReturnRows(linhasOcorrencia(ocorrenciaID, eventoID, data, "10:00:00", "11:00:00", "Sala 101"))

	// término novo (09:00) antes do início vigente (10:00) → nenhum UPDATE sai
	novoTermino := mustTod(t, "09:00")
	_, err := s.AtualizarOcorrencia(eventoID, data, AtualizacaoOcorrencia{HoraTermino: &novoTermino}, "ana.costa@uece.br")
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtualizarOcorrenciaDataForaDaJanela(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewOcorrenciaService(gdb)

	eventoID := uuid.New()
	ocorrenciaID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	termino := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	data := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, termino))
	mock.ExpectQuery(`SELECT \* FROM "ocorrencias"`).
		WillReturnRows(linhasOcorrencia(ocorrenciaID, eventoID, data, "10:00:00", "11:00:00", "Sala 101"))

	// 2024-04-15 cai fora de [2024-03-01, 2024-03-31] → nenhum UPDATE sai
	novaData := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	_, err := s.AtualizarOcorrencia(eventoID, data, AtualizacaoOcorrencia{Data: &novaData}, "ana.costa@uece.br")
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtualizarOcorrenciaUmCampo(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewOcorrenciaService(gdb)

	eventoID := uuid.New()
	ocorrenciaID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	termino := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	data := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, termino))
	mock.ExpectQuery(`SELECT \* FROM "ocorrencias"`).
		WillReturnRows(linhasOcorrencia(ocorrenciaID, eventoID, data, "10:00:00", "11:00:00", "Sala 101"))

	// exatamente um UPDATE, restrito à chave primária da ocorrência
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "ocorrencias" SET .* WHERE "ocorrencia_id"`).
		WithArgs("Sala 204", sqlmock.AnyArg(), ocorrenciaID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "ocorrencias"`).
		WillReturnRows(linhasOcorrencia(ocorrenciaID, eventoID, data, "10:00:00", "11:00:00", "Sala 204"))

	local := "Sala 204"
	oc, err := s.AtualizarOcorrencia(eventoID, data, AtualizacaoOcorrencia{Local: &local}, "ana.costa@uece.br")
	require.NoError(t, err)

	assert.Equal(t, "Sala 204", oc.OcorrenciaLocal)
	assert.Equal(t, "10:00:00", oc.OcorrenciaHoraInicio.Format("15:04:05"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelarOcorrencia(t *testing.T) {
	eventoID := uuid.New()
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	data := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	t.Run("sucesso", func(t *testing.T) {
		gdb, mock := novoDBMock(t)
		s := NewOcorrenciaService(gdb)

		mock.ExpectQuery(`SELECT \* FROM "eventos"`).
			WithArgs(eventoID, 1).
			WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, inicio))
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "ocorrencias"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := s.CancelarOcorrencia(eventoID, data, "ana.costa@uece.br")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("data sem ocorrencia", func(t *testing.T) {
		gdb, mock := novoDBMock(t)
		s := NewOcorrenciaService(gdb)

		mock.ExpectQuery(`SELECT \* FROM "eventos"`).
			WithArgs(eventoID, 1).
			WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "semanal", inicio, inicio))
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "ocorrencias"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := s.CancelarOcorrencia(eventoID, data, "ana.costa@uece.br")
		require.Error(t, err)

		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusNotFound, fe.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBuscarOcorrenciaDisciplina(t *testing.T) {
	gdb, mock := novoDBMock(t)
	s := NewOcorrenciaService(gdb)

	eventoID := uuid.New()
	inicio := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	termino := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	data := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "eventos"`).
		WithArgs(eventoID, 1).
		WillReturnRows(linhasEvento(eventoID, "ana.costa@uece.br", "disciplina", inicio, termino))

	mock.ExpectQuery(`SELECT \* FROM "ocorrencias"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"ocorrencia_id", "ocorrencia_evento_id", "ocorrencia_data",
			"ocorrencia_hora_inicio", "ocorrencia_hora_termino", "ocorrencia_local",
		}).AddRow(uuid.NewString(), eventoID.String(), data, "13:30:00", "15:10:00", "Bloco P, sala 5"))

	mock.ExpectQuery(`array_agg`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("{SEG,QUA}"))

	det, err := s.BuscarOcorrencia(eventoID, data)
	require.NoError(t, err)

	assert.Equal(t, "Reunião do colegiado", det.Nome)
	assert.Equal(t, "disciplina", det.Recorrencia)
	assert.Equal(t, []string{"SEG", "QUA"}, det.Dias)
	assert.Equal(t, "Bloco P, sala 5", det.Ocorrencia.OcorrenciaLocal)
	assert.Equal(t, "13:30:00", det.Ocorrencia.OcorrenciaHoraInicio.Format("15:04:05"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
