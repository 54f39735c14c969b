package bulksheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(t *testing.T, err error, columns []string, records [][]string)
	}{
		{
			name:  "CSV com cabeçalho e registros",
			input: "Campaign Name,Bid,Clicks\nCampanha A,1.00,15\nCampanha B,0.50,8\n",
			validate: func(t *testing.T, err error, columns []string, records [][]string) {
				require.NoError(t, err)
				assert.Equal(t, []string{"Campaign Name", "Bid", "Clicks"}, columns)
				require.Len(t, records, 2)
				assert.Equal(t, []string{"Campanha A", "1.00", "15"}, records[0])
				assert.Equal(t, []string{"Campanha B", "0.50", "8"}, records[1])
			},
		},
		{
			name:  "BOM do Excel é removido da primeira célula",
			input: "\uFEFFCampaign Name,Bid\nCampanha A,1.00\n",
			validate: func(t *testing.T, err error, columns []string, records [][]string) {
				require.NoError(t, err)
				assert.Equal(t, "Campaign Name", columns[0])
			},
		},
		{
			name:  "Células com vírgula entre aspas",
			input: "Campaign Name,Bid\n\"Campanha, a maior\",1.00\n",
			validate: func(t *testing.T, err error, columns []string, records [][]string) {
				require.NoError(t, err)
				assert.Equal(t, "Campanha, a maior", records[0][0])
			},
		},
		{
			name:  "Só o cabeçalho, sem registros",
			input: "Campaign Name,Bid\n",
			validate: func(t *testing.T, err error, columns []string, records [][]string) {
				require.NoError(t, err)
				assert.Len(t, columns, 2)
				assert.Empty(t, records)
			},
		},
		{
			name:  "Arquivo vazio é erro",
			input: "",
			validate: func(t *testing.T, err error, columns []string, records [][]string) {
				assert.Error(t, err)
			},
		},
		{
			name:  "Registro com número de colunas diferente é erro",
			input: "Campaign Name,Bid\nCampanha A,1.00,extra\n",
			validate: func(t *testing.T, err error, columns []string, records [][]string) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := Read(strings.NewReader(tt.input))

			var columns []string
			var records [][]string
			if sheet != nil {
				columns = sheet.Columns
				records = sheet.Records
			}

			tt.validate(t, err, columns, records)
		})
	}
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile("/caminho/que/nao/existe.csv")
	assert.Error(t, err)
}
