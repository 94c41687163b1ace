// Package pdf implementa a representação gráfica imprimível de uma duplicata
// mercantil, com o histórico de baixas e o saldo em aberto.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razão Social + CNPJ  │  N° Duplicata + Emissão      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SACADO: Nome + CNPJ/CPF + contato                           │
//	│  TÍTULO: Valor original | Vencimento | Status                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Método | Pago | Juros | Multa | Desc | Líq.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Total baixado / SALDO EM ABERTO                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/application/recebiveis"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
)

var _ recebiveis.DuplicataPDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 160, Green: 30, Blue: 30}
)

// MarotoPDFGenerator implementa recebiveis.DuplicataPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateDuplicataPDF gera o PDF e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateDuplicataPDF(
	_ context.Context,
	duplicata *entity.Duplicata,
	empresa *entity.Empresa,
	cliente *entity.Cliente,
	baixas []*entity.Baixa,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Duplicata "+duplicata.Numero, true).
		WithAuthor(empresa.RazaoSocial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(duplicata, empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sacadoRow(cliente))
	m.AddRows(tituloRow(duplicata))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableBaixaRows(baixas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totaisRow(duplicata, baixas))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: razão social + CNPJ (esq) e número + emissão (dir).
func headerRow(duplicata *entity.Duplicata, empresa *entity.Empresa) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(empresa.RazaoSocial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+empresa.CNPJ, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DUPLICATA MERCANTIL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(duplicata.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emissão: "+duplicata.Emissao.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// sacadoRow: dados do sacado (cliente).
func sacadoRow(cliente *entity.Cliente) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SACADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CNPJ/CPF: %s   |   Email: %s   |   Tel: %s",
				cliente.Documento,
				nonEmpty(cliente.Email, "—"),
				nonEmpty(cliente.Telefone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tituloRow: valor original, vencimento e status do título.
func tituloRow(duplicata *entity.Duplicata) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TÍTULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Valor: R$ %s   |   Vencimento: %s   |   Status: %s",
				duplicata.ValorOriginal.StringFixed(2),
				duplicata.Vencimento.Format("02/01/2006"),
				duplicata.Status,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de baixas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Método", 2, align.Left),
		h("Pago", 2, align.Right),
		h("Juros", 1, align.Right),
		h("Multa", 1, align.Right),
		h("Desc.", 1, align.Right),
		h("Líquido", 3, align.Right),
	)
}

// tableBaixaRows: uma linha por baixa; estornadas saem marcadas em vermelho.
func tableBaixaRows(baixas []*entity.Baixa) []core.Row {
	result := make([]core.Row, 0, len(baixas))
	for _, b := range baixas {
		cor := colorGray
		metodo := b.Metodo
		if b.Estornada {
			cor = colorRed
			metodo += " (ESTORNADA)"
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: cor,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(b.DataPagamento.Format("02/01/2006"), 2, align.Left),
			cell(metodo, 2, align.Left),
			cell(b.ValorPago.StringFixed(2), 2, align.Right),
			cell(b.Juros.StringFixed(2), 1, align.Right),
			cell(b.Multa.StringFixed(2), 1, align.Right),
			cell(b.Desconto.StringFixed(2), 1, align.Right),
			cell(b.ValorLiquido.StringFixed(2), 3, align.Right),
		))
	}
	return result
}

// totaisRow: total baixado e saldo em aberto.
func totaisRow(duplicata *entity.Duplicata, baixas []*entity.Baixa) core.Row {
	totalBaixado := decimal.Zero
	for _, b := range baixas {
		if !b.Estornada {
			totalBaixado = totalBaixado.Add(b.ValorLiquido)
		}
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 6,
		})
	}

	return row.New(16).Add(
		col.New(4),
		col.New(4).Add(
			label("Total baixado:"),
			grandLabel("SALDO EM ABERTO:"),
		),
		col.New(4).Add(
			text.New("R$ "+totalBaixado.StringFixed(2), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			}),
			text.New("R$ "+duplicata.ValorAberto.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 6,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
