package model

import "github.com/google/uuid"

// CursoModel: o email de contato do curso também funciona como endereço de
// convite — convidar esse endereço expande para a lista de alunos matriculados.
type CursoModel struct {
	CursoID             uuid.UUID `gorm:"column:curso_id;type:uuid;default:gen_random_uuid();primaryKey" json:"curso_id"`
	CursoUniversidadeID uuid.UUID `gorm:"column:curso_universidade_id;type:uuid;not null;index:idx_cursos_universidade_id" json:"curso_universidade_id"`
	CursoNome           string    `gorm:"column:curso_nome;type:varchar(255);not null"       json:"curso_nome"`
	CursoSigla          string    `gorm:"column:curso_sigla;type:varchar(10)"                json:"curso_sigla"`
	CursoEmail          string    `gorm:"column:curso_email;type:varchar(255);unique"        json:"curso_email"`
	CursoGraduacao      bool      `gorm:"column:curso_graduacao;not null;default:true"       json:"curso_graduacao"`
}

func (CursoModel) TableName() string {
	return "cursos"
}
