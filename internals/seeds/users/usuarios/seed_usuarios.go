package usuarios

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	cursomodel "agendai_backend/internals/features/university/cursos/model"
	universidademodel "agendai_backend/internals/features/university/universidades/model"
	authservice "agendai_backend/internals/features/users/auth/service"
	usermodel "agendai_backend/internals/features/users/user/model"
)

type UsuarioSeed struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
	Senha string `json:"senha"`
	Papel string `json:"papel"` // aluno | professor

	// aluno
	Matricula  string `json:"matricula,omitempty"`
	CursoEmail string `json:"curso_email,omitempty"`

	// professor
	UniversidadeSigla string `json:"universidade_sigla,omitempty"`
	Titulacao         string `json:"titulacao,omitempty"`
}

func SeedUsuariosFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de usuários:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o JSON: %v", err)
	}

	var inputs []UsuarioSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao decodificar o JSON: %v", err)
	}

	for _, data := range inputs {
		var existente usermodel.UsuarioModel
		if err := db.Where("usuario_email = ?", data.Email).First(&existente).Error; err == nil {
			log.Printf("ℹ️ Usuário '%s' já existe, pulando.", data.Email)
			continue
		}

		hash, err := authservice.HashSenha(data.Senha)
		if err != nil {
			log.Printf("❌ Falha ao gerar hash para '%s': %v", data.Email, err)
			continue
		}

		u := usermodel.UsuarioModel{
			UsuarioNome:  data.Nome,
			UsuarioEmail: data.Email,
			UsuarioCPF:   data.CPF,
			UsuarioSenha: hash,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
			switch data.Papel {
			case "aluno":
				var curso cursomodel.CursoModel
				if err := tx.Where("curso_email = ?", data.CursoEmail).First(&curso).Error; err != nil {
					return err
				}
				return tx.Create(&usermodel.AlunoModel{
					AlunoUsuarioID: u.UsuarioID,
					AlunoCursoID:   curso.CursoID,
					AlunoMatricula: data.Matricula,
				}).Error
			case "professor":
				var uni universidademodel.UniversidadeModel
				if err := tx.Where("universidade_sigla = ?", data.UniversidadeSigla).First(&uni).Error; err != nil {
					return err
				}
				return tx.Create(&usermodel.ProfessorModel{
					ProfessorUsuarioID:      u.UsuarioID,
					ProfessorUniversidadeID: uni.UniversidadeID,
					ProfessorTitulacao:      data.Titulacao,
				}).Error
			}
			return nil
		})
		if err != nil {
			log.Printf("❌ Falha ao criar usuário '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ Usuário '%s' (%s) criado.", data.Email, data.Papel)
	}
}
