package model

import (
	"time"

	"github.com/google/uuid"
)

type UniversidadeModel struct {
	UniversidadeID    uuid.UUID `gorm:"column:universidade_id;type:uuid;default:gen_random_uuid();primaryKey" json:"universidade_id"`
	UniversidadeNome  string    `gorm:"column:universidade_nome;type:varchar(255);not null"         json:"universidade_nome"`
	UniversidadeSigla string    `gorm:"column:universidade_sigla;type:varchar(20);not null"         json:"universidade_sigla"`
	UniversidadeCNPJ  string    `gorm:"column:universidade_cnpj;type:varchar(14);not null;unique"   json:"universidade_cnpj"`
	UniversidadeEmail string    `gorm:"column:universidade_email;type:varchar(255);unique"          json:"universidade_email"`
	UniversidadeSenha string    `gorm:"column:universidade_senha;type:varchar(255)"                 json:"-"`

	UniversidadeCreatedAt time.Time `gorm:"column:universidade_created_at;type:timestamptz;autoCreateTime" json:"universidade_created_at"`
}

func (UniversidadeModel) TableName() string {
	return "universidades"
}
