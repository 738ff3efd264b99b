package api

import (
	"net/http"

	"fitmarket/personal-app/internal/domain"
	"fitmarket/personal-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	suggester service.PasswordSuggester,
	personalService service.PersonalService,
	alunoService service.AlunoService,
	servicoService service.ServicoService,
	contratoService service.ContratoService,
	backupService service.BackupService,
) {
	authHandler := NewAuthHandler(authService, suggester)
	personalHandler := NewPersonalHandler(personalService)
	alunoHandler := NewAlunoHandler(alunoService)
	servicoHandler := NewServicoHandler(servicoService)
	contratoHandler := NewContratoHandler(contratoService)
	backupHandler := NewBackupHandler(backupService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/personais/register", authHandler.RegisterPersonal)
			authGroup.POST("/alunos/register", authHandler.RegisterAluno)
			authGroup.POST("/personais/login", authHandler.LoginPersonal)
			authGroup.POST("/alunos/login", authHandler.LoginAluno)
			// Registration-form convenience; failure yields an empty suggestion.
			authGroup.GET("/senha-sugerida", authHandler.SuggestPassword)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			cpf, err := getUserCPFFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"cpf": cpf, "role": role})
		})

		// --- Trainer records ---
		personais := protected.Group("/personais")
		{
			personais.GET("", personalHandler.List)
			personais.GET("/:cpf", personalHandler.Get)
			personais.PUT("/:cpf", RoleMiddleware(domain.RolePersonal), personalHandler.Update)
			personais.DELETE("/:cpf", RoleMiddleware(domain.RolePersonal), personalHandler.Delete)
			personais.POST("/:cpf/desativar", RoleMiddleware(domain.RolePersonal), personalHandler.Desativar)
		}

		// --- Student records ---
		alunos := protected.Group("/alunos")
		{
			alunos.GET("", alunoHandler.List)
			alunos.GET("/:cpf", alunoHandler.Get)
			alunos.PUT("/:cpf", RoleMiddleware(domain.RoleAluno), alunoHandler.Update)
			alunos.DELETE("/:cpf", RoleMiddleware(domain.RoleAluno), alunoHandler.Delete)
			alunos.POST("/:cpf/desativar", RoleMiddleware(domain.RoleAluno), alunoHandler.Desativar)
		}

		// --- Service offerings ---
		servicos := protected.Group("/servicos")
		{
			servicos.GET("", servicoHandler.List)
			servicos.GET("/meus", RoleMiddleware(domain.RolePersonal), servicoHandler.ListMine)
			servicos.GET("/:id", servicoHandler.Get)
			servicos.POST("", RoleMiddleware(domain.RolePersonal), servicoHandler.Create)
			servicos.PUT("/:id", RoleMiddleware(domain.RolePersonal), servicoHandler.Update)
			servicos.DELETE("/:id", RoleMiddleware(domain.RolePersonal), servicoHandler.Delete)
		}

		// --- Contracts ---
		contratos := protected.Group("/contratos")
		{
			contratos.POST("", RoleMiddleware(domain.RoleAluno), contratoHandler.Hire)
			contratos.GET("", contratoHandler.ListMine)
			contratos.POST("/:id/cancelar", contratoHandler.Cancel)
		}

		// --- Backups ---
		backups := protected.Group("/backups")
		{
			backups.POST("", backupHandler.Export)
			backups.GET("/url", backupHandler.DownloadURL)
			backups.DELETE("", backupHandler.Delete)
		}
	}
}
