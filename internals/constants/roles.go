package constants

import "fmt"

// Papéis carregados na claim "tag" do JWT.
const (
	RoleAluno        = "aluno"
	RoleProfessor    = "professor"
	RoleUniversidade = "universidade"
)

// Template de mensagem de erro por papel
const (
	ErrSomenteUniversidade = "❌ Somente a universidade pode acessar %s."
	ErrSomenteProprietario = "❌ Somente o proprietário do evento pode %s."
)

func RoleErrorUniversidade(feature string) string {
	return fmt.Sprintf(ErrSomenteUniversidade, feature)
}

func RoleErrorProprietario(acao string) string {
	return fmt.Sprintf(ErrSomenteProprietario, acao)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAluno,
		RoleProfessor,
		RoleUniversidade,
	}

	Institucional = []string{
		RoleUniversidade,
	}
)
