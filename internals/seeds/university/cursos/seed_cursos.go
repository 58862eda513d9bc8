package cursos

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	cursomodel "agendai_backend/internals/features/university/cursos/model"
	universidademodel "agendai_backend/internals/features/university/universidades/model"
)

type CursoSeed struct {
	UniversidadeSigla string `json:"universidade_sigla"`
	Nome              string `json:"nome"`
	Sigla             string `json:"sigla"`
	Email             string `json:"email"`
	Graduacao         bool   `json:"graduacao"`
}

func SeedCursosFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de cursos:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o JSON: %v", err)
	}

	var inputs []CursoSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao decodificar o JSON: %v", err)
	}

	for _, data := range inputs {
		var uni universidademodel.UniversidadeModel
		if err := db.Where("universidade_sigla = ?", data.UniversidadeSigla).First(&uni).Error; err != nil {
			log.Printf("❌ Universidade '%s' não encontrada para o curso '%s', pulando.", data.UniversidadeSigla, data.Nome)
			continue
		}

		var existente cursomodel.CursoModel
		if err := db.Where("curso_email = ?", data.Email).First(&existente).Error; err == nil {
			log.Printf("ℹ️ Curso '%s' já existe, pulando.", data.Nome)
			continue
		}

		novo := cursomodel.CursoModel{
			CursoUniversidadeID: uni.UniversidadeID,
			CursoNome:           data.Nome,
			CursoSigla:          data.Sigla,
			CursoEmail:          data.Email,
			CursoGraduacao:      data.Graduacao,
		}
		if err := db.Create(&novo).Error; err != nil {
			log.Printf("❌ Falha ao criar curso '%s': %v", data.Nome, err)
			continue
		}
		log.Printf("✅ Curso '%s' criado.", data.Nome)
	}
}
