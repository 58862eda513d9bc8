package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agendai_backend/internals/features/university/cursos/model"
	helper "agendai_backend/internals/helpers"
)

type CursoController struct {
	DB *gorm.DB
}

func NewCursoController(db *gorm.DB) *CursoController {
	return &CursoController{DB: db}
}

// GET /api/cursos?universidade_id=&graduacao=&page=&per_page=
func (ctl *CursoController) Listar(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.CursoModel{})

	if v := c.Query("universidade_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "universidade_id inválido")
		}
		q = q.Where("curso_universidade_id = ?", id)
	}
	if v := c.Query("graduacao"); v != "" {
		q = q.Where("curso_graduacao = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar os cursos")
	}

	var cursos []model.CursoModel
	if err := q.Order("curso_nome").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&cursos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar os cursos")
	}

	return helper.JsonList(c, "OK", cursos, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
