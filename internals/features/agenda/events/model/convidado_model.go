package model

import (
	"time"

	"github.com/google/uuid"
)

// ConvidadoModel liga um usuário a um evento. O par (evento, usuário) é
// único; re-convidar alguém já presente não é erro.
type ConvidadoModel struct {
	ConvidadoID        uuid.UUID `gorm:"column:convidado_id;type:uuid;default:gen_random_uuid();primaryKey" json:"convidado_id"`
	ConvidadoEventoID  uuid.UUID `gorm:"column:convidado_evento_id;type:uuid;not null;index:idx_convidados_evento_id" json:"convidado_evento_id"`
	ConvidadoUsuarioID uuid.UUID `gorm:"column:convidado_usuario_id;type:uuid;not null" json:"convidado_usuario_id"`

	ConvidadoCreatedAt time.Time `gorm:"column:convidado_created_at;type:timestamptz;autoCreateTime" json:"convidado_created_at"`

	// NOTE: unicidade (evento, usuário) é criada via migration:
	//   CREATE UNIQUE INDEX ux_convidados_evento_usuario ON convidados
	//     (convidado_evento_id, convidado_usuario_id);
}

func (ConvidadoModel) TableName() string {
	return "convidados"
}
