package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nubiasantos/salao-api/internal/application/agenda"
	"github.com/nubiasantos/salao-api/internal/application/auth"
	"github.com/nubiasantos/salao-api/internal/application/finance"
	"github.com/nubiasantos/salao-api/internal/application/report"
	"github.com/nubiasantos/salao-api/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	AgendaUC  *agenda.UseCase
	FinanceUC *finance.UseCase
	ReportUC  *report.UseCase
	JWTSecret string
	Logger    *logger.Logger

	// Tentativas de login por minuto e burst por IP.
	LoginPerMinute int
	LoginBurst     int
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, com rate limit no login)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", LoginRateLimit(deps.LoginPerMinute, deps.LoginBurst), authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/sessao", authHandler.Session)

	// Agenda (protegido)
	agendaHandler := NewAgendaHandler(deps.AgendaUC)
	streamHandler := NewStreamHandler(deps.AgendaUC, deps.FinanceUC, deps.Logger)
	agendaGroup := protected.Group("/agenda")
	agendaGroup.Get("/", agendaHandler.View)
	agendaGroup.Get("/stream", streamHandler.Agenda)
	agendaGroup.Post("/", agendaHandler.Create)
	agendaGroup.Delete("/:id", agendaHandler.Delete)

	// Financeiro (protegido)
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	financeGroup := protected.Group("/financeiro")
	financeGroup.Post("/", financeHandler.Create)
	financeGroup.Get("/recentes", financeHandler.Recent)
	financeGroup.Get("/stream", streamHandler.Financeiro)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.FinanceUC)
	protected.Get("/dashboard", dashboardHandler.Get)

	// Relatórios (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/relatorios/mensal", reportHandler.Monthly)
}
