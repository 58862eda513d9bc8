package universidades

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"agendai_backend/internals/features/university/universidades/model"
	authservice "agendai_backend/internals/features/users/auth/service"
)

type UniversidadeSeed struct {
	Nome  string `json:"nome"`
	Sigla string `json:"sigla"`
	CNPJ  string `json:"cnpj"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func SeedUniversidadesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de universidades:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o JSON: %v", err)
	}

	var inputs []UniversidadeSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao decodificar o JSON: %v", err)
	}

	for _, data := range inputs {
		var existente model.UniversidadeModel
		if err := db.Where("universidade_email = ?", data.Email).First(&existente).Error; err == nil {
			log.Printf("ℹ️ Universidade '%s' já existe, pulando.", data.Sigla)
			continue
		}

		hash, err := authservice.HashSenha(data.Senha)
		if err != nil {
			log.Printf("❌ Falha ao gerar hash para '%s': %v", data.Email, err)
			continue
		}

		nova := model.UniversidadeModel{
			UniversidadeNome:  data.Nome,
			UniversidadeSigla: data.Sigla,
			UniversidadeCNPJ:  data.CNPJ,
			UniversidadeEmail: data.Email,
			UniversidadeSenha: hash,
		}
		if err := db.Create(&nova).Error; err != nil {
			log.Printf("❌ Falha ao criar universidade '%s': %v", data.Sigla, err)
			continue
		}
		log.Printf("✅ Universidade '%s' criada.", data.Sigla)
	}
}
