package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UsuarioModel struct {
	UsuarioID    uuid.UUID `gorm:"column:usuario_id;type:uuid;default:gen_random_uuid();primaryKey" json:"usuario_id"`
	UsuarioNome  string    `gorm:"column:usuario_nome;type:varchar(255);not null"          json:"usuario_nome"`
	UsuarioEmail string    `gorm:"column:usuario_email;type:varchar(255);not null;unique"  json:"usuario_email"`
	UsuarioCPF   string    `gorm:"column:usuario_cpf;type:varchar(11);not null;unique"     json:"usuario_cpf"`
	UsuarioSenha string    `gorm:"column:usuario_senha;type:varchar(255);not null"         json:"-"`

	UsuarioCreatedAt time.Time `gorm:"column:usuario_created_at;type:timestamptz;autoCreateTime" json:"usuario_created_at"`
	UsuarioUpdatedAt time.Time `gorm:"column:usuario_updated_at;type:timestamptz;autoUpdateTime" json:"usuario_updated_at"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}

// AlunoModel estende um usuário com matrícula e curso.
type AlunoModel struct {
	AlunoUsuarioID uuid.UUID `gorm:"column:aluno_usuario_id;type:uuid;primaryKey"       json:"aluno_usuario_id"`
	AlunoCursoID   uuid.UUID `gorm:"column:aluno_curso_id;type:uuid;not null;index:idx_alunos_curso_id" json:"aluno_curso_id"`
	AlunoMatricula string    `gorm:"column:aluno_matricula;type:varchar(7);not null;unique" json:"aluno_matricula"`
}

func (AlunoModel) TableName() string {
	return "alunos"
}

// ProfessorModel estende um usuário com vínculo institucional.
type ProfessorModel struct {
	ProfessorUsuarioID      uuid.UUID       `gorm:"column:professor_usuario_id;type:uuid;primaryKey"  json:"professor_usuario_id"`
	ProfessorUniversidadeID uuid.UUID       `gorm:"column:professor_universidade_id;type:uuid;not null" json:"professor_universidade_id"`
	ProfessorDataAdmissao   *datatypes.Date `gorm:"column:professor_data_admissao;type:date"          json:"professor_data_admissao,omitempty"`
	ProfessorTitulacao      string          `gorm:"column:professor_titulacao;type:varchar(255)"      json:"professor_titulacao,omitempty"`
}

func (ProfessorModel) TableName() string {
	return "professores"
}
