package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "agendai_backend/internals/features/users/auth/controller"
	"agendai_backend/internals/middlewares"
	authmw "agendai_backend/internals/middlewares/auth"
)

// AuthRoutes registra login, registro, refresh e o fluxo de recuperação de
// senha. Limitadores próprios nos endpoints sensíveis a força bruta.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authcontroller.NewAuthController(db)

	auth := app.Group("/api/auth")

	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login/universidade", middlewares.LoginRateLimiter(), ctl.LoginUniversidade)
	auth.Post("/registro/aluno", middlewares.RegisterRateLimiter(), ctl.RegistrarAluno)
	auth.Post("/registro/professor", middlewares.RegisterRateLimiter(), ctl.RegistrarProfessor)
	auth.Post("/refresh", ctl.Refresh)

	auth.Post("/esqueci-senha", middlewares.ForgotPasswordRateLimiter(), ctl.EsqueciSenha)
	auth.Post("/verificar-codigo", ctl.VerificarCodigo)
	auth.Post("/redefinir-senha", ctl.RedefinirSenha)

	auth.Get("/me", authmw.AuthMiddleware(), ctl.Me)
}
