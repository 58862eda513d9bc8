package constants

import "time"

// Tabela fixa de horários por turno e bloco. A janela de uma disciplina é
// (início do primeiro bloco, término do último bloco). Adicionar um turno ou
// bloco é uma mudança apenas nesta tabela.
type JanelaBloco struct {
	Inicio  string // "HH:MM"
	Termino string // "HH:MM"
}

const (
	TurnoManha = "manha"
	TurnoTarde = "tarde"
	TurnoNoite = "noite"
)

var Horarios = map[string]map[byte]JanelaBloco{
	TurnoManha: {
		'A': {"07:30", "08:20"},
		'B': {"08:20", "09:10"},
		'C': {"09:30", "10:20"},
		'D': {"10:20", "11:00"},
		'E': {"11:00", "11:50"},
	},
	TurnoTarde: {
		'A': {"13:30", "14:20"},
		'B': {"14:20", "15:10"},
		'C': {"15:30", "16:20"},
		'D': {"16:20", "17:00"},
		'E': {"17:00", "17:50"},
	},
	TurnoNoite: {
		'A': {"18:30", "19:20"},
		'B': {"19:20", "20:10"},
		'C': {"20:30", "21:20"},
		'D': {"21:20", "22:00"},
	},
}

// Dígito do código de horário → dia da semana (2=Segunda … 7=Sábado).
var DiasMap = map[byte]time.Weekday{
	'2': time.Monday,
	'3': time.Tuesday,
	'4': time.Wednesday,
	'5': time.Thursday,
	'6': time.Friday,
	'7': time.Saturday,
}

// Dígito → sigla persistida em disciplina_dias.
var NumParaDia = map[byte]string{
	'2': "SEG",
	'3': "TER",
	'4': "QUA",
	'5': "QUI",
	'6': "SEX",
	'7': "SAB",
}

// SiglaParaWeekday é o inverso de NumParaDia, usado ao reconstruir a grade a
// partir das linhas persistidas.
var SiglaParaWeekday = map[string]time.Weekday{
	"SEG": time.Monday,
	"TER": time.Tuesday,
	"QUA": time.Wednesday,
	"QUI": time.Thursday,
	"SEX": time.Friday,
	"SAB": time.Saturday,
}
