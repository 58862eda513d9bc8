package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agendai_backend/internals/features/university/cursos/model"
	helper "agendai_backend/internals/helpers"
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

type respostaLista struct {
	Success    bool               `json:"success"`
	Data       []model.CursoModel `json:"data"`
	Pagination helper.Pagination  `json:"pagination"`
}

func TestListarCursosPaginado(t *testing.T) {
	gdb, mock := novoDBMock(t)
	ctl := NewCursoController(gdb)

	app := fiber.New()
	app.Get("/api/cursos", ctl.Listar)

	uniID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cursos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "cursos"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"curso_id", "curso_universidade_id", "curso_nome", "curso_sigla", "curso_email", "curso_graduacao",
		}).
			AddRow(uuid.NewString(), uniID.String(), "Ciência da Computação", "CC", "computacao@uece.br", true).
			AddRow(uuid.NewString(), uniID.String(), "Matemática", "MAT", "matematica@uece.br", true))

	req := httptest.NewRequest("GET", "/api/cursos?per_page=2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var lista respostaLista
	require.NoError(t, json.Unmarshal(body, &lista))

	assert.True(t, lista.Success)
	assert.Len(t, lista.Data, 2)
	assert.Equal(t, "Ciência da Computação", lista.Data[0].CursoNome)
	assert.Equal(t, int64(3), lista.Pagination.Total)
	assert.Equal(t, 2, lista.Pagination.PerPage)
	assert.Equal(t, 2, lista.Pagination.TotalPages)
	assert.True(t, lista.Pagination.HasNext)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListarCursosUniversidadeInvalida(t *testing.T) {
	gdb, _ := novoDBMock(t)
	ctl := NewCursoController(gdb)

	app := fiber.New()
	app.Get("/api/cursos", ctl.Listar)

	req := httptest.NewRequest("GET", "/api/cursos?universidade_id=nao-e-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
