package main

import (
	"context"
	_ "embed"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"

	"github.com/nubiasantos/salao-api/internal/application/agenda"
	"github.com/nubiasantos/salao-api/internal/application/auth"
	"github.com/nubiasantos/salao-api/internal/application/bootstrap"
	"github.com/nubiasantos/salao-api/internal/application/dto"
	"github.com/nubiasantos/salao-api/internal/application/finance"
	"github.com/nubiasantos/salao-api/internal/application/report"
	"github.com/nubiasantos/salao-api/internal/cache"
	"github.com/nubiasantos/salao-api/internal/domain/entity"
	infrapdf "github.com/nubiasantos/salao-api/internal/infrastructure/pdf"
	"github.com/nubiasantos/salao-api/internal/infrastructure/postgres"
	httpRouter "github.com/nubiasantos/salao-api/internal/interfaces/http"
	"github.com/nubiasantos/salao-api/internal/livequery"
	"github.com/nubiasantos/salao-api/pkg/config"
	"github.com/nubiasantos/salao-api/pkg/logger"
)

// Especificação OpenAPI servida pelo middleware de swagger. Embutida no
// binário para que o serviço suba de qualquer diretório de trabalho.
//
//go:embed docs/swagger.json
var swaggerSpec []byte

const (
	agendaCacheSize = 8
	agendaCacheTTL  = time.Minute

	loginPerMinute = 10
	loginBurst     = 5
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("fuso horário inválido")
	}

	if err := postgres.RunMigrations(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	appointmentRepo := postgres.NewAppointmentRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	agendaFeed := livequery.NewFeed[entity.Appointment]()
	ledgerFeed := livequery.NewFeed[entity.LedgerEntry]()
	viewCache := cache.NewLRU[dto.AgendaViewDTO](agendaCacheSize, agendaCacheTTL)

	agendaUC := agenda.NewUseCase(appointmentRepo, agendaFeed, viewCache, loc)
	financeUC := finance.NewUseCase(ledgerRepo, appointmentRepo, ledgerFeed, loc)
	reportUC := report.NewUseCase(ledgerRepo, appointmentRepo, infrapdf.NewMarotoReportGenerator(cfg.App.Name), loc)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if cfg.App.Seed {
		seeder := bootstrap.NewSeeder(appointmentRepo, ledgerRepo, loc)
		created, err := seeder.EnsureSeeded(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("semear coleções")
		}
		if created > 0 {
			log.Info().Int("documentos", created).Msg("coleções vazias semeadas")
		}
	}

	// Popula os feeds antes de aceitar assinantes.
	agendaUC.Refresh(ctx)
	financeUC.Refresh(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: swaggerSpec,
		Path:        "docs",
		Title:       cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		AgendaUC:       agendaUC,
		FinanceUC:      financeUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
		Logger:         log,
		LoginPerMinute: loginPerMinute,
		LoginBurst:     loginBurst,
	})

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("aplicação encerrada")
}
