package domain

import "errors"

// Erros de domínio (sem dependências externas).
//
// Agrupados por natureza: validação de entrada (corrigível pelo usuário),
// violação de invariante monetária (rejeitada antes de qualquer escrita),
// conflito de estado no ciclo de vida e conflito de concorrência
// (o chamador deve reler e tentar uma única vez).
var (
	// Validação de entrada
	ErrEntradaInvalida = errors.New("entrada inválida")
	ErrPedidoSemItens  = errors.New("pedido sem itens válidos")
	ErrValorInvalido   = errors.New("valor deve ser maior que zero")

	// Violação de invariante monetária
	ErrPagamentoExcedente = errors.New("valor líquido da baixa excede o saldo em aberto da duplicata")
	ErrSomaCheques        = errors.New("soma dos cheques difere do valor pago da baixa")
	ErrLimiteExcedido     = errors.New("limite de crédito do cliente excedido")

	// Conflito de estado
	ErrDuplicataLiquidada = errors.New("duplicata já liquidada")
	ErrDuplicataTerminal  = errors.New("duplicata liquidada ou cancelada não aceita a operação")
	ErrBaixaJaEstornada   = errors.New("baixa já estornada")
	ErrPedidoImutavel     = errors.New("pedido cancelado ou concluído não pode ser alterado")

	// Concorrência
	ErrConflitoConcorrencia = errors.New("registro alterado por outra operação; releia e tente novamente")

	// Genéricos
	ErrNaoEncontrado = errors.New("recurso não encontrado")
	ErrDuplicado     = errors.New("recurso duplicado")
	ErrNaoAutorizado = errors.New("não autorizado")
	ErrAcessoNegado  = errors.New("acesso negado")
	ErrEmailJaExiste = errors.New("o email já está registrado")
)
