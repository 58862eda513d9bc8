package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"agendai_backend/internals/helpers/dbtime"
)

// Tipos de recorrência aceitos em evento_recorrencia.
const (
	RecorrenciaUnico      = "unico"
	RecorrenciaDiaria     = "diaria"
	RecorrenciaDiasUteis  = "dias_uteis"
	RecorrenciaSemanal    = "semanal"
	RecorrenciaDisciplina = "disciplina"
)

type EventoModel struct {
	EventoID             uuid.UUID      `gorm:"column:evento_id;type:uuid;default:gen_random_uuid();primaryKey" json:"evento_id"`
	EventoNome           string         `gorm:"column:evento_nome;type:varchar(255);not null"                   json:"evento_nome"`
	EventoDescricao      string         `gorm:"column:evento_descricao;type:text"                               json:"evento_descricao"`
	EventoUniversidadeID uuid.UUID      `gorm:"column:evento_universidade_id;type:uuid;not null;index:idx_eventos_universidade_id" json:"evento_universidade_id"`
	EventoDataInicio     datatypes.Date `gorm:"column:evento_data_inicio;type:date;not null"                    json:"evento_data_inicio"`
	EventoDataTermino    datatypes.Date `gorm:"column:evento_data_termino;type:date;not null"                   json:"evento_data_termino"`

	// Horário e local padrão, copiados para cada ocorrência na materialização
	EventoHoraInicioPadrao  dbtime.Tod `gorm:"column:evento_hora_inicio_padrao;type:time"   json:"evento_hora_inicio_padrao"`
	EventoHoraTerminoPadrao dbtime.Tod `gorm:"column:evento_hora_termino_padrao;type:time"  json:"evento_hora_termino_padrao"`
	EventoLocalPadrao       string     `gorm:"column:evento_local_padrao;type:varchar(255)" json:"evento_local_padrao"`

	EventoRecorrencia       string `gorm:"column:evento_recorrencia;type:varchar(20);not null"        json:"evento_recorrencia"`
	EventoCategoria         string `gorm:"column:evento_categoria;type:varchar(255)"                  json:"evento_categoria"`
	EventoProprietarioEmail string `gorm:"column:evento_proprietario_email;type:varchar(255);not null;index:idx_eventos_proprietario" json:"evento_proprietario_email"`

	EventoCreatedAt time.Time `gorm:"column:evento_created_at;type:timestamptz;autoCreateTime" json:"evento_created_at"`
	EventoUpdatedAt time.Time `gorm:"column:evento_updated_at;type:timestamptz;autoUpdateTime" json:"evento_updated_at"`
}

func (EventoModel) TableName() string {
	return "eventos"
}
