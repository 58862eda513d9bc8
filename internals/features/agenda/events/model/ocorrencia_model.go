package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"agendai_backend/internals/helpers/dbtime"
)

// OcorrenciaModel é uma instância concreta de um evento em uma data.
// Horário e local nascem dos padrões da série e passam a ser mutáveis de
// forma independente; alterar uma ocorrência nunca toca a série nem irmãs.
type OcorrenciaModel struct {
	OcorrenciaID          uuid.UUID      `gorm:"column:ocorrencia_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ocorrencia_id"`
	OcorrenciaEventoID    uuid.UUID      `gorm:"column:ocorrencia_evento_id;type:uuid;not null;index:idx_ocorrencias_evento_id" json:"ocorrencia_evento_id"`
	OcorrenciaData        datatypes.Date `gorm:"column:ocorrencia_data;type:date;not null"   json:"ocorrencia_data"`
	OcorrenciaHoraInicio  dbtime.Tod     `gorm:"column:ocorrencia_hora_inicio;type:time"     json:"ocorrencia_hora_inicio"`
	OcorrenciaHoraTermino dbtime.Tod     `gorm:"column:ocorrencia_hora_termino;type:time"    json:"ocorrencia_hora_termino"`
	OcorrenciaLocal       string         `gorm:"column:ocorrencia_local;type:varchar(255)"   json:"ocorrencia_local"`

	OcorrenciaCreatedAt time.Time `gorm:"column:ocorrencia_created_at;type:timestamptz;autoCreateTime" json:"ocorrencia_created_at"`
	OcorrenciaUpdatedAt time.Time `gorm:"column:ocorrencia_updated_at;type:timestamptz;autoUpdateTime" json:"ocorrencia_updated_at"`

	// NOTE: unicidade (evento, data) é criada via migration:
	//   CREATE UNIQUE INDEX ux_ocorrencias_evento_data ON ocorrencias
	//     (ocorrencia_evento_id, ocorrencia_data);
}

func (OcorrenciaModel) TableName() string {
	return "ocorrencias"
}
