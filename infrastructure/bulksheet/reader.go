// Package bulksheet lê e escreve exports CSV de Sponsored Products. A
// leitura preserva as células originais; toda a coerção numérica e a
// validação acontecem no motor de otimização.
package bulksheet

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/bid-optimizer-api/internal/domain"
)

// ReadFile carrega um bulksheet CSV do disco.
func ReadFile(path string) (*domain.Bulksheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir bulksheet %q", path)
	}
	defer file.Close()

	sheet, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler bulksheet %q", path)
	}

	return sheet, nil
}

// Read decodifica um bulksheet CSV de um reader arbitrário (upload HTTP ou
// arquivo). A primeira linha é o cabeçalho.
func Read(r io.Reader) (*domain.Bulksheet, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("bulksheet vazio: sem linha de cabeçalho")
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	// Excel costuma exportar com BOM na primeira célula
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler registro")
		}
		records = append(records, record)
	}

	return &domain.Bulksheet{
		Columns: header,
		Records: records,
	}, nil
}
