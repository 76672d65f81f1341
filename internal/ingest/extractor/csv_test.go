package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV_ExtractRows(t *testing.T) {
	data := []byte("Txn Date,Narration,Debit,Credit\n" +
		"15/01/2024,UPI-SWIGGY BANGALORE,450.00,\n" +
		"31/01/2024,NEFT SALARY ACME CORP,,45000.00\n")

	headers, rows, err := NewCSV().ExtractRows(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Txn Date", "Narration", "Debit", "Credit"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "15/01/2024", rows[0]["txn date"])
	assert.Equal(t, "UPI-SWIGGY BANGALORE", rows[0]["narration"])
	assert.Equal(t, "450.00", rows[0]["debit"])
	assert.Equal(t, "45000.00", rows[1]["credit"])
}

func TestCSV_ExtractRows_StripsBOM(t *testing.T) {
	data := []byte("\uFEFFDate,Amount\n15/01/2024,100\n")

	headers, rows, err := NewCSV().ExtractRows(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Amount"}, headers)
	require.Len(t, rows, 1)
	assert.Equal(t, "100", rows[0]["amount"])
}

func TestCSV_ExtractRows_EmptyInput(t *testing.T) {
	_, _, err := NewCSV().ExtractRows(nil)
	assert.Error(t, err)
}
