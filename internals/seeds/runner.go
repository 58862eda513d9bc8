package seeds

import (
	"gorm.io/gorm"

	cursos "agendai_backend/internals/seeds/university/cursos"
	universidades "agendai_backend/internals/seeds/university/universidades"
	usuarios "agendai_backend/internals/seeds/users/usuarios"
)

// RunAllSeeds popula a base mínima de demonstração. Cada seed pula o que já
// existe, então rodar mais de uma vez é inofensivo.
func RunAllSeeds(db *gorm.DB) {
	universidades.SeedUniversidadesFromJSON(db, "internals/seeds/university/universidades/data_universidades.json")
	cursos.SeedCursosFromJSON(db, "internals/seeds/university/cursos/data_cursos.json")
	usuarios.SeedUsuariosFromJSON(db, "internals/seeds/users/usuarios/data_usuarios.json")
}
