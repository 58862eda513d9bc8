package model

import "github.com/google/uuid"

// DisciplinaModel é o sub-registro 1:1 de um evento de recorrência
// "disciplina": guarda o código de horário cru e o professor responsável.
type DisciplinaModel struct {
	DisciplinaEventoID    uuid.UUID `gorm:"column:disciplina_evento_id;type:uuid;primaryKey"   json:"disciplina_evento_id"`
	DisciplinaProfessorID uuid.UUID `gorm:"column:disciplina_professor_id;type:uuid;not null"  json:"disciplina_professor_id"`
	DisciplinaNome        string    `gorm:"column:disciplina_nome;type:varchar(255);not null"  json:"disciplina_nome"`
	DisciplinaHorario     string    `gorm:"column:disciplina_horario;type:varchar(10);not null" json:"disciplina_horario"`
}

func (DisciplinaModel) TableName() string {
	return "disciplinas"
}

// DisciplinaDiaModel guarda um dia da semana decodificado do código de
// horário ("SEG".."SAB"), um registro por dia.
type DisciplinaDiaModel struct {
	DisciplinaDiaID           uuid.UUID `gorm:"column:disciplina_dia_id;type:uuid;default:gen_random_uuid();primaryKey" json:"disciplina_dia_id"`
	DisciplinaDiaDisciplinaID uuid.UUID `gorm:"column:disciplina_dia_disciplina_id;type:uuid;not null;index:idx_disciplina_dias_disciplina" json:"disciplina_dia_disciplina_id"`
	DisciplinaDiaDia          string    `gorm:"column:disciplina_dia_dia;type:varchar(3);not null" json:"disciplina_dia_dia"`

	// NOTE: unicidade (disciplina, dia) é criada via migration:
	//   CREATE UNIQUE INDEX ux_disciplina_dias ON disciplina_dias
	//     (disciplina_dia_disciplina_id, disciplina_dia_dia);
}

func (DisciplinaDiaModel) TableName() string {
	return "disciplina_dias"
}
