package service

import (
	"errors"
	"fmt"
	"time"
)

// Erros das funções puras do motor de recorrência. As camadas efetivas
// convertem para *fiber.Error com o status adequado.

// ErroHorario: código de horário malformado. Segmento identifica qual parte
// do código falhou ("formato", "dias", "blocos" ou "turno").
type ErroHorario struct {
	Segmento string
	Motivo   string
}

func (e *ErroHorario) Error() string {
	return fmt.Sprintf("código de horário inválido (%s): %s", e.Segmento, e.Motivo)
}

// ErroIntervalo: a janela da série é incoerente (início depois do término)
// para recorrências que não sejam "unico".
type ErroIntervalo struct {
	Inicio  time.Time
	Termino time.Time
}

func (e *ErroIntervalo) Error() string {
	return fmt.Sprintf("data de término (%s) deve ser posterior à data de início (%s)",
		e.Termino.Format("2006-01-02"), e.Inicio.Format("2006-01-02"))
}

var (
	ErrRecorrenciaInvalida = errors.New("tipo de recorrência desconhecido")
	ErrGradeAusente        = errors.New("recorrência por disciplina exige grade horária")
)
