package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestaofacil/recebiveis-api/internal/application/auth"
	"github.com/gestaofacil/recebiveis-api/internal/application/credito"
	"github.com/gestaofacil/recebiveis-api/internal/application/pagamentos"
	"github.com/gestaofacil/recebiveis-api/internal/application/pedidos"
	"github.com/gestaofacil/recebiveis-api/internal/application/recebiveis"
	"github.com/gestaofacil/recebiveis-api/internal/application/relatorios"
	infrapdf "github.com/gestaofacil/recebiveis-api/internal/infrastructure/pdf"
	"github.com/gestaofacil/recebiveis-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestaofacil/recebiveis-api/internal/interfaces/http"
	"github.com/gestaofacil/recebiveis-api/pkg/config"
	"github.com/gestaofacil/recebiveis-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	condicaoRepo := postgres.NewCondicaoPagamentoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	parcelaRepo := postgres.NewParcelaRepository(pool)
	duplicataRepo := postgres.NewDuplicataRepository(pool)
	baixaRepo := postgres.NewBaixaRepository(pool)
	chequeRepo := postgres.NewChequeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clienteUC := recebiveis.NewClienteUseCase(clienteRepo)
	condicaoUC := pedidos.NewCondicaoUseCase(txRunner, condicaoRepo)
	pedidoUC := pedidos.NewPedidoUseCase(
		txRunner, pedidoRepo, parcelaRepo, clienteRepo, condicaoRepo, duplicataRepo, log,
	)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	duplicataUC := recebiveis.NewDuplicataUseCase(
		duplicataRepo, parcelaRepo, clienteRepo, empresaRepo, baixaRepo, pdfGenerator, log,
	)
	baixaUC := pagamentos.NewBaixaUseCase(txRunner, duplicataRepo, baixaRepo, chequeRepo, log)
	creditoUC := credito.NewCreditoUseCase(clienteRepo, duplicataRepo, parcelaRepo)
	relatorioUC := relatorios.NewRelatorioUseCase(
		clienteRepo, pedidoRepo, parcelaRepo, duplicataRepo, baixaRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Recebíveis API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClienteUC:   clienteUC,
		CondicaoUC:  condicaoUC,
		PedidoUC:    pedidoUC,
		DuplicataUC: duplicataUC,
		BaixaUC:     baixaUC,
		CreditoUC:   creditoUC,
		RelatorioUC: relatorioUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
