package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaofacil/recebiveis-api/internal/application/auth"
	"github.com/gestaofacil/recebiveis-api/internal/application/credito"
	"github.com/gestaofacil/recebiveis-api/internal/application/pagamentos"
	"github.com/gestaofacil/recebiveis-api/internal/application/pedidos"
	"github.com/gestaofacil/recebiveis-api/internal/application/recebiveis"
	"github.com/gestaofacil/recebiveis-api/internal/application/relatorios"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClienteUC   *recebiveis.ClienteUseCase
	CondicaoUC  *pedidos.CondicaoUseCase
	PedidoUC    *pedidos.PedidoUseCase
	DuplicataUC *recebiveis.DuplicataUseCase
	BaixaUC     *pagamentos.BaixaUseCase
	CreditoUC   *credito.CreditoUseCase
	RelatorioUC *relatorios.RelatorioUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	creditoHandler := NewCreditoHandler(deps.CreditoUC)
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Get("/:id/limite", creditoHandler.AvaliarLimite)
	clientes.Get("/:id/posicao", relatorioHandler.PosicaoCliente)

	// Condições de pagamento
	condicoes := protected.Group("/condicoes")
	condicaoHandler := NewCondicaoHandler(deps.CondicaoUC)
	condicoes.Post("/", RequirePerfil("admin", "financeiro"), condicaoHandler.Create)
	condicoes.Get("/", condicaoHandler.List)

	// Pedidos
	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidosGroup.Post("/", pedidoHandler.Create)
	pedidosGroup.Get("/:id", pedidoHandler.GetByID)
	pedidosGroup.Put("/:id/itens", pedidoHandler.UpdateItens)
	pedidosGroup.Post("/:id/cancelar", pedidoHandler.Cancel)
	pedidosGroup.Get("/:id/posicao", relatorioHandler.PosicaoPedido)

	// Duplicatas
	duplicatas := protected.Group("/duplicatas")
	duplicataHandler := NewDuplicataHandler(deps.DuplicataUC)
	baixaHandler := NewBaixaHandler(deps.BaixaUC)
	duplicatas.Post("/", duplicataHandler.Create)
	duplicatas.Get("/", duplicataHandler.List)
	duplicatas.Get("/:id", duplicataHandler.GetByID)
	duplicatas.Get("/:id/pdf", duplicataHandler.PDF)
	duplicatas.Post("/:id/cancelar", RequirePerfil("admin", "financeiro"), duplicataHandler.Cancel)
	duplicatas.Post("/:id/baixas", RequirePerfil("admin", "financeiro"), baixaHandler.Create)
	duplicatas.Get("/:id/baixas", baixaHandler.List)

	// Baixas
	baixas := protected.Group("/baixas")
	baixas.Post("/:id/estorno", RequirePerfil("admin", "financeiro"), baixaHandler.Estornar)
}
