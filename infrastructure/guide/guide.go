// Package guide gera o guia em PDF para o gestor de PPC, explicando o
// bulksheet otimizado e resumindo a execução.
package guide

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/vfg2006/bid-optimizer-api/internal/domain"
)

// WriteFile monta e grava o guia do gestor de PPC para uma execução.
func WriteFile(path, outputCSV string, result *domain.OptimizationResult) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// As fontes padrão do PDF são cp1252; o tradutor converte o UTF-8 das
	// strings Go
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr("Sponsored Products Bid Optimizer - Guia do Gestor de PPC"), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, tr(intro(outputCSV)), "", "L", false)
	pdf.Ln(3)

	section(pdf, tr, "Resumo da execução", runSummary(result.Summary))
	section(pdf, tr, "Como ler o arquivo de saída", columnsGuide())
	section(pdf, tr, "Como aplicar as mudanças", applyGuide(outputCSV))
	section(pdf, tr, "Acompanhamento", trackingGuide())

	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrapf(err, "erro ao gravar guia em %q", path)
	}

	return nil
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title, body string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, tr(title), "", "L", false)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, tr(body), "", "L", false)
	pdf.Ln(3)
}

func intro(outputCSV string) string {
	return fmt.Sprintf(
		"O otimizador analisou o bulksheet e gravou as sugestões de lance em %q. "+
			"Este guia explica as colunas do arquivo e como aplicar as mudanças na Amazon Advertising.",
		outputCSV,
	)
}

func runSummary(summary domain.RunSummary) string {
	lines := []string{
		fmt.Sprintf("Linhas analisadas: %d", summary.TotalRows),
		fmt.Sprintf("Lances aumentados: %d", summary.Increased),
		fmt.Sprintf("Lances reduzidos: %d", summary.Decreased),
		fmt.Sprintf("Sem alteração: %d", summary.Unchanged),
		"",
		"Linhas por motivo:",
	}

	reasons := make([]string, 0, len(summary.CountsByReason))
	for reason := range summary.CountsByReason {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)

	for _, reason := range reasons {
		lines = append(lines, fmt.Sprintf("  - %s: %d", reason, summary.CountsByReason[reason]))
	}

	return strings.Join(lines, "\n")
}

func columnsGuide() string {
	return strings.Join([]string{
		`"New Bid": o lance sugerido para cada palavra-chave ou alvo. É o valor que será aplicado na Amazon.`,
		`"Increase or decrease": direção da mudança (Increase, Decrease ou No Change).`,
		`"Why": o motivo da sugestão. "Cost but No Revenue" indica gasto sem vendas; "High ACOS but Overspending" indica vendas com custo ineficiente; linhas de alta performance recebem aumento para capturar mais volume.`,
		`"Goal": o objetivo da mudança, como "To Decrease ACOS" ou "To Increase Sales".`,
		`"How much": a magnitude da mudança em dólares.`,
		`"Changes" e "% changes": a variação absoluta e percentual em relação ao lance atual.`,
		`"Operation": sempre "Update", exigido pelo upload de bulksheets.`,
	}, "\n\n")
}

func applyGuide(outputCSV string) string {
	return strings.Join([]string{
		fmt.Sprintf("1. Revise %q antes de subir: a coluna \"Why\" explica cada sugestão e o julgamento do gestor é sempre a palavra final.", outputCSV),
		"2. Ajuste manualmente qualquer \"New Bid\" com que discorde (promoções, estoque, concorrência) e salve o arquivo.",
		"3. Suba o arquivo na seção Bulksheets do painel da Amazon Advertising.",
		"4. Evite rodadas diárias: uma cadência semanal ou quinzenal dá tempo para os dados refletirem as mudanças.",
	}, "\n")
}

func trackingGuide() string {
	return strings.Join([]string{
		"Acompanhe ROAS/ACOS, vendas, impressões e cliques após aplicar as mudanças.",
		"Queda forte de impressões ou cliques costuma indicar lances baixos demais; ACOS subindo indica lances altos demais.",
		"Monitore diariamente nos primeiros dias e depois semanalmente; re-execute o otimizador com dados novos a cada ciclo.",
	}, "\n")
}
