package optimizing

import (
	"github.com/vfg2006/bid-optimizer-api/internal/domain"
)

// ValidateColumns confere se o bulksheet contém todas as colunas
// obrigatórias antes de qualquer linha ser processada. O erro enumera todas
// as colunas ausentes, não apenas a primeira.
func ValidateColumns(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[domain.NormalizeColumn(col)] = true
	}

	var missing []string
	for _, required := range domain.RequiredColumns {
		if !present[domain.NormalizeColumn(required)] {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return &domain.SchemaError{Missing: missing}
	}

	return nil
}
