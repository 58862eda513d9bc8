package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificacaoModel struct {
	NotificacaoID        uuid.UUID  `gorm:"column:notificacao_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notificacao_id"`
	NotificacaoUsuarioID uuid.UUID  `gorm:"column:notificacao_usuario_id;type:uuid;not null;index:idx_notificacoes_usuario_id" json:"notificacao_usuario_id"`
	NotificacaoEventoID  *uuid.UUID `gorm:"column:notificacao_evento_id;type:uuid;index"    json:"notificacao_evento_id,omitempty"`
	NotificacaoMensagem  string     `gorm:"column:notificacao_mensagem;type:varchar(255);not null" json:"notificacao_mensagem"`
	NotificacaoData      time.Time  `gorm:"column:notificacao_data;type:timestamptz;autoCreateTime" json:"notificacao_data"`
}

func (NotificacaoModel) TableName() string {
	return "notificacoes"
}
