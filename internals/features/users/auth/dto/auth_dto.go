package dto

// Requests do fluxo de autenticação. Validação via go-playground/validator.

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

type RegistroAlunoRequest struct {
	Nome      string `json:"nome"      validate:"required,min=3,max=255"`
	Email     string `json:"email"     validate:"required,email"`
	CPF       string `json:"cpf"       validate:"required,len=11,numeric"`
	Senha     string `json:"senha"     validate:"required,min=6,max=72"`
	Matricula string `json:"matricula" validate:"required,len=7,numeric"`
	CursoID   string `json:"curso_id"  validate:"required,uuid4"`
}

type RegistroProfessorRequest struct {
	Nome           string `json:"nome"            validate:"required,min=3,max=255"`
	Email          string `json:"email"           validate:"required,email"`
	CPF            string `json:"cpf"             validate:"required,len=11,numeric"`
	Senha          string `json:"senha"           validate:"required,min=6,max=72"`
	UniversidadeID string `json:"universidade_id" validate:"required,uuid4"`
	Titulacao      string `json:"titulacao"       validate:"omitempty,max=255"`
	DataAdmissao   string `json:"data_admissao"   validate:"omitempty,datetime=2006-01-02"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type EsqueciSenhaRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerificarCodigoRequest struct {
	Email  string `json:"email"  validate:"required,email"`
	Codigo string `json:"codigo" validate:"required,len=6,numeric"`
}

type RedefinirSenhaRequest struct {
	Token     string `json:"token"      validate:"required,uuid4"`
	NovaSenha string `json:"nova_senha" validate:"required,min=6,max=72"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Papel        string `json:"papel"`
}
