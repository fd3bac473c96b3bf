package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Client", "Date", "Timeliness", "Notes"},
		Rows: []map[string]string{
			{"Client": "Acme", "Date": "2024-06-10", "Timeliness": "ATENÇÃO", "Notes": "=HYPERLINK(\"x\")"},
			{"Client": "Globex", "Date": "2024-06-11"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	payload, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Client", "Date", "Timeliness", "Notes"}, records[0])
	assert.Equal(t, []string{"Acme", "2024-06-10", "ATENÇÃO", "'=HYPERLINK(\"x\")"}, records[1])
	assert.Equal(t, []string{"Globex", "2024-06-11", "", ""}, records[2])
}

func TestExportersRequireHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)

	_, err = NewPDFExporter().Render(Dataset{}, "empty")
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	payload, err := NewPDFExporter().Render(sampleDataset(), "Post schedule")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF-")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 18))
}
