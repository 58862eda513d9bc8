package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"agendai_backend/internals/constants"
	authdto "agendai_backend/internals/features/users/auth/dto"
	authservice "agendai_backend/internals/features/users/auth/service"
	usermodel "agendai_backend/internals/features/users/user/model"
	universidademodel "agendai_backend/internals/features/university/universidades/model"
	helper "agendai_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Reset    *authservice.RecuperacaoStore
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:       db,
		Validate: validator.New(),
		Reset:    authservice.Recuperacao,
	}
}

// papelDoEmail deduz o papel de um usuário comum pelo domínio institucional:
// matrícula de aluno vive em @aluno.<universidade>.
func papelDoEmail(email string) string {
	if strings.Contains(email, "@aluno.") {
		return constants.RoleAluno
	}
	return constants.RoleProfessor
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authdto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var u usermodel.UsuarioModel
	if err := ctl.DB.Where("usuario_email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar o usuário")
	}
	if !authservice.CompararSenha(u.UsuarioSenha, req.Senha) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	papel := papelDoEmail(email)
	access, err := authservice.CriarAccessToken(email, papel)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir o token")
	}
	refresh, err := authservice.CriarRefreshToken(email, papel)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir o refresh token")
	}

	return helper.JsonOK(c, "Login realizado", authdto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Papel:        papel,
	})
}

// POST /api/auth/login/universidade
func (ctl *AuthController) LoginUniversidade(c *fiber.Ctx) error {
	var req authdto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var uni universidademodel.UniversidadeModel
	if err := ctl.DB.Where("universidade_email = ?", email).First(&uni).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar a universidade")
	}
	if !authservice.CompararSenha(uni.UniversidadeSenha, req.Senha) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	access, err := authservice.CriarAccessToken(email, constants.RoleUniversidade)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir o token")
	}
	refresh, err := authservice.CriarRefreshToken(email, constants.RoleUniversidade)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir o refresh token")
	}

	return helper.JsonOK(c, "Login realizado", authdto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Papel:        constants.RoleUniversidade,
	})
}

// ========================== REGISTRO ==========================
// POST /api/auth/registro/aluno
func (ctl *AuthController) RegistrarAluno(c *fiber.Ctx) error {
	var req authdto.RegistroAlunoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	cursoID, _ := uuid.Parse(req.CursoID)

	if err := ctl.conferirConflitos(email, req.CPF); err != nil {
		return helper.FromFiberError(c, err)
	}
	var matriculados int64
	if err := ctl.DB.Model(&usermodel.AlunoModel{}).
		Where("aluno_matricula = ?", req.Matricula).Count(&matriculados).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar a matrícula")
	}
	if matriculados > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Matrícula já cadastrada")
	}

	hash, err := authservice.HashSenha(req.Senha)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar a senha")
	}

	u := usermodel.UsuarioModel{
		UsuarioNome:  req.Nome,
		UsuarioEmail: email,
		UsuarioCPF:   req.CPF,
		UsuarioSenha: hash,
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar o usuário")
		}
		aluno := usermodel.AlunoModel{
			AlunoUsuarioID: u.UsuarioID,
			AlunoCursoID:   cursoID,
			AlunoMatricula: req.Matricula,
		}
		if err := tx.Create(&aluno).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar o aluno")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	go authservice.EnviarBoasVindas(email, req.Nome)
	return helper.JsonCreated(c, "Aluno cadastrado", fiber.Map{"usuario_id": u.UsuarioID})
}

// POST /api/auth/registro/professor
func (ctl *AuthController) RegistrarProfessor(c *fiber.Ctx) error {
	var req authdto.RegistroProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	universidadeID, _ := uuid.Parse(req.UniversidadeID)

	if err := ctl.conferirConflitos(email, req.CPF); err != nil {
		return helper.FromFiberError(c, err)
	}

	hash, err := authservice.HashSenha(req.Senha)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar a senha")
	}

	var admissao *datatypes.Date
	if req.DataAdmissao != "" {
		t, err := time.Parse("2006-01-02", req.DataAdmissao)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data de admissão inválida")
		}
		d := datatypes.Date(t)
		admissao = &d
	}

	u := usermodel.UsuarioModel{
		UsuarioNome:  req.Nome,
		UsuarioEmail: email,
		UsuarioCPF:   req.CPF,
		UsuarioSenha: hash,
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar o usuário")
		}
		prof := usermodel.ProfessorModel{
			ProfessorUsuarioID:      u.UsuarioID,
			ProfessorUniversidadeID: universidadeID,
			ProfessorDataAdmissao:   admissao,
			ProfessorTitulacao:      req.Titulacao,
		}
		if err := tx.Create(&prof).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar o professor")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	go authservice.EnviarBoasVindas(email, req.Nome)
	return helper.JsonCreated(c, "Professor cadastrado", fiber.Map{"usuario_id": u.UsuarioID})
}

func (ctl *AuthController) conferirConflitos(email, cpf string) error {
	var n int64
	if err := ctl.DB.Model(&usermodel.UsuarioModel{}).
		Where("usuario_email = ?", email).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar o email")
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email já cadastrado")
	}
	if err := ctl.DB.Model(&usermodel.UsuarioModel{}).
		Where("usuario_cpf = ?", cpf).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar o CPF")
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusConflict, "CPF já cadastrado")
	}
	return nil
}

// ========================== REFRESH ==========================
// POST /api/auth/refresh
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req authdto.RefreshRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		// fallback: cookie usado pelo front web
		req.RefreshToken = helper.GetRefreshTokenFromCookie(c)
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token não informado")
	}

	email, papel, err := authservice.DecodificarRefresh(req.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	access, err := authservice.CriarAccessToken(email, papel)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir o token")
	}
	refresh, err := authservice.CriarRefreshToken(email, papel)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir o refresh token")
	}

	return helper.JsonOK(c, "Token renovado", authdto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Papel:        papel,
	})
}

// ========================== RECUPERAÇÃO DE SENHA ==========================
// POST /api/auth/esqueci-senha
// Resposta é 200 mesmo para email desconhecido, para não vazar cadastro.
func (ctl *AuthController) EsqueciSenha(c *fiber.Ctx) error {
	var req authdto.EsqueciSenhaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var n int64
	if err := ctl.DB.Model(&usermodel.UsuarioModel{}).
		Where("usuario_email = ?", email).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar o email")
	}
	if n > 0 {
		codigo, err := ctl.Reset.GerarCodigo(email)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar o código")
		}
		go authservice.EnviarCodigoRecuperacao(email, codigo)
	}

	return helper.JsonOK(c, "Se o email estiver cadastrado, o código foi enviado", nil)
}

// POST /api/auth/verificar-codigo
func (ctl *AuthController) VerificarCodigo(c *fiber.Ctx) error {
	var req authdto.VerificarCodigoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	token, err := ctl.Reset.VerificarCodigo(req.Email, req.Codigo)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Código verificado", fiber.Map{"token": token})
}

// POST /api/auth/redefinir-senha
func (ctl *AuthController) RedefinirSenha(c *fiber.Ctx) error {
	var req authdto.RedefinirSenhaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email, err := ctl.Reset.ConsumirToken(req.Token)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	hash, err := authservice.HashSenha(req.NovaSenha)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar a senha")
	}
	res := ctl.DB.Model(&usermodel.UsuarioModel{}).
		Where("usuario_email = ?", email).
		Update("usuario_senha", hash)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar a senha")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	return helper.JsonUpdated(c, "Senha redefinida", nil)
}

// ========================== ME ==========================
// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	papel, _ := helper.GetRoleFromToken(c)

	if papel == constants.RoleUniversidade {
		var uni universidademodel.UniversidadeModel
		if err := ctl.DB.Where("universidade_email = ?", email).First(&uni).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Universidade não encontrada")
		}
		return helper.JsonOK(c, "OK", fiber.Map{"papel": papel, "universidade": uni})
	}

	var u usermodel.UsuarioModel
	if err := ctl.DB.Where("usuario_email = ?", email).First(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"papel": papel, "usuario": u})
}
