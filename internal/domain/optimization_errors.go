package domain

import (
	"fmt"
	"strings"
)

// SchemaError indica que o bulksheet não contém todas as colunas
// obrigatórias. Missing carrega a lista completa, não só a primeira.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(
		"bulksheet sem as colunas obrigatórias: %s",
		strings.Join(e.Missing, ", "),
	)
}

// ValueError indica que uma célula numérica não pôde ser convertida. A
// execução inteira falha antes de produzir qualquer saída.
type ValueError struct {
	Row    int
	Column string
	Value  string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf(
		"valor não numérico na linha %d, coluna %q: %q",
		e.Row, e.Column, e.Value,
	)
}
