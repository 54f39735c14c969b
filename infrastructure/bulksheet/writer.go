package bulksheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/bid-optimizer-api/internal/domain"
)

// Colunas derivadas adicionadas ao bulksheet de saída. "New Bid" é inserida
// logo depois de "Bid"; as demais vão para o final, nesta ordem.
const (
	ColumnNewBid             = "New Bid"
	ColumnIncreaseOrDecrease = "Increase or decrease"
	ColumnWhy                = "Why"
	ColumnGoal               = "Goal"
	ColumnHowMuch            = "How much"
	ColumnOperation          = "Operation"
	ColumnChanges            = "Changes"
	ColumnPercentChanges     = "% changes"
)

// OperationUpdate é o valor fixo da coluna Operation exigido pelo re-upload
// de bulksheets.
const OperationUpdate = "Update"

var appendedColumns = []string{
	ColumnIncreaseOrDecrease,
	ColumnWhy,
	ColumnGoal,
	ColumnHowMuch,
	ColumnOperation,
	ColumnChanges,
	ColumnPercentChanges,
}

// WriteFile grava o bulksheet aumentado no disco.
func WriteFile(path string, result *domain.OptimizationResult) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar arquivo de saída %q", path)
	}
	defer file.Close()

	if err := Write(file, result); err != nil {
		return errors.Wrapf(err, "erro ao escrever bulksheet %q", path)
	}

	return nil
}

// Write serializa o resultado como CSV: todas as colunas originais na ordem
// de entrada, "New Bid" logo após "Bid" e as colunas de anotação no final.
func Write(w io.Writer, result *domain.OptimizationResult) error {
	writer := csv.NewWriter(w)

	bidIdx := bidIndex(result.Columns)

	if err := writer.Write(outputHeader(result.Columns, bidIdx)); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	for i := range result.Rows {
		if err := writer.Write(outputRecord(&result.Rows[i], len(result.Columns), bidIdx)); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha %d", result.Rows[i].Index)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao finalizar escrita do CSV")
}

func bidIndex(columns []string) int {
	sheet := domain.Bulksheet{Columns: columns}
	return sheet.IndexOf(domain.ColumnBid)
}

func outputHeader(columns []string, bidIdx int) []string {
	header := make([]string, 0, len(columns)+1+len(appendedColumns))

	for i, col := range columns {
		header = append(header, col)
		if i == bidIdx {
			header = append(header, ColumnNewBid)
		}
	}

	return append(header, appendedColumns...)
}

func outputRecord(row *domain.OptimizedRow, columnCount, bidIdx int) []string {
	record := make([]string, 0, columnCount+1+len(appendedColumns))

	for i := 0; i < columnCount; i++ {
		value := ""
		if i < len(row.Raw) {
			value = row.Raw[i]
		}

		// Quando o lance da linha era zero, a saída mostra o lance padrão do
		// grupo de anúncios que de fato foi otimizado
		if i == bidIdx && row.Bid == 0 && row.EffectiveBid() > 0 {
			value = fmt.Sprintf("%.2f", row.EffectiveBid())
		}

		record = append(record, value)
		if i == bidIdx {
			record = append(record, fmt.Sprintf("%.2f", row.NewBid))
		}
	}

	return append(record,
		row.Direction,
		row.Why,
		row.Goal,
		row.HowMuch,
		OperationUpdate,
		fmt.Sprintf("$%+.2f", row.Changes),
		fmt.Sprintf("%+.2f%%", row.PercentChanges),
	)
}
