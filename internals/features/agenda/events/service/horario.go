package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"agendai_backend/internals/constants"
	"agendai_backend/internals/helpers/dbtime"
)

// GradeHoraria é o resultado de decodificar um código de horário de
// disciplina, por exemplo "35-CD-manha": dias 3 e 5 (terça e quinta),
// blocos C e D do turno da manhã.
type GradeHoraria struct {
	Dias        []time.Weekday // ordenados (segunda → sábado)
	Siglas      []string       // "SEG".."SAB", mesma ordem de Dias
	Blocos      []byte         // letras dos blocos, ordem alfabética
	Turno       string
	HoraInicio  dbtime.Tod // início do primeiro bloco
	HoraTermino dbtime.Tod // término do último bloco
}

// ParseCodigoHorario decodifica um código "dias-blocos-turno" usando as
// tabelas fixas de constants. Função pura; nenhum resultado parcial é
// devolvido em caso de erro.
func ParseCodigoHorario(codigo string) (*GradeHoraria, error) {
	partes := strings.Split(strings.TrimSpace(codigo), "-")
	if len(partes) != 3 {
		return nil, &ErroHorario{
			Segmento: "formato",
			Motivo:   fmt.Sprintf("esperados 3 segmentos separados por hífen, recebidos %d", len(partes)),
		}
	}

	digitos, blocos, turno := partes[0], strings.ToUpper(partes[1]), strings.ToLower(partes[2])

	tabela, ok := constants.Horarios[turno]
	if !ok {
		return nil, &ErroHorario{Segmento: "turno", Motivo: fmt.Sprintf("turno desconhecido %q", turno)}
	}

	if digitos == "" {
		return nil, &ErroHorario{Segmento: "dias", Motivo: "nenhum dia informado"}
	}
	vistos := map[time.Weekday]bool{}
	var dias []time.Weekday
	for i := 0; i < len(digitos); i++ {
		d := digitos[i]
		wd, ok := constants.DiasMap[d]
		if !ok {
			return nil, &ErroHorario{Segmento: "dias", Motivo: fmt.Sprintf("dígito de dia desconhecido %q", string(d))}
		}
		if !vistos[wd] {
			vistos[wd] = true
			dias = append(dias, wd)
		}
	}
	sort.Slice(dias, func(i, j int) bool { return dias[i] < dias[j] })

	if blocos == "" {
		return nil, &ErroHorario{Segmento: "blocos", Motivo: "nenhum bloco informado"}
	}
	for i := 0; i < len(blocos); i++ {
		b := blocos[i]
		if _, ok := tabela[b]; !ok {
			return nil, &ErroHorario{
				Segmento: "blocos",
				Motivo:   fmt.Sprintf("bloco %q não existe no turno %q", string(b), turno),
			}
		}
		// blocos de um turno são contíguos e ordenados alfabeticamente
		if i > 0 && blocos[i] != blocos[i-1]+1 {
			return nil, &ErroHorario{
				Segmento: "blocos",
				Motivo:   fmt.Sprintf("blocos devem ser contíguos e crescentes (%q depois de %q)", string(b), string(blocos[i-1])),
			}
		}
	}

	inicio, err := dbtime.Parse(tabela[blocos[0]].Inicio)
	if err != nil {
		return nil, &ErroHorario{Segmento: "blocos", Motivo: err.Error()}
	}
	termino, err := dbtime.Parse(tabela[blocos[len(blocos)-1]].Termino)
	if err != nil {
		return nil, &ErroHorario{Segmento: "blocos", Motivo: err.Error()}
	}

	siglas := make([]string, 0, len(dias))
	for _, wd := range dias {
		for dig, w := range constants.DiasMap {
			if w == wd {
				siglas = append(siglas, constants.NumParaDia[dig])
				break
			}
		}
	}

	return &GradeHoraria{
		Dias:        dias,
		Siglas:      siglas,
		Blocos:      []byte(blocos),
		Turno:       turno,
		HoraInicio:  inicio,
		HoraTermino: termino,
	}, nil
}

// GradeDeSiglas reconstrói a parte de dias de uma grade a partir das linhas
// persistidas em disciplina_dias, preservando a janela horária informada.
func GradeDeSiglas(siglas []string, inicio, termino dbtime.Tod) (*GradeHoraria, error) {
	if len(siglas) == 0 {
		return nil, ErrGradeAusente
	}
	vistos := map[time.Weekday]bool{}
	var dias []time.Weekday
	for _, s := range siglas {
		wd, ok := constants.SiglaParaWeekday[strings.ToUpper(s)]
		if !ok {
			return nil, &ErroHorario{Segmento: "dias", Motivo: fmt.Sprintf("sigla de dia desconhecida %q", s)}
		}
		if !vistos[wd] {
			vistos[wd] = true
			dias = append(dias, wd)
		}
	}
	sort.Slice(dias, func(i, j int) bool { return dias[i] < dias[j] })
	return &GradeHoraria{Dias: dias, HoraInicio: inicio, HoraTermino: termino}, nil
}
