package excel

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptedMIME(t *testing.T) {
	assert.True(t, AcceptedMIME(MIMEXLSX))
	assert.True(t, AcceptedMIME(MIMEXLS))
	assert.True(t, AcceptedMIME("text/csv; charset=utf-8"))
	assert.False(t, AcceptedMIME("application/pdf"))
	assert.False(t, AcceptedMIME(""))
}

func TestReadGridCSV(t *testing.T) {
	csv := "ID,First Name\nO-1, Amina \nO-2,Yusuf\n"
	rows, err := NewGridReader().ReadGrid(context.Background(), strings.NewReader(csv), "cases.csv")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "First Name"}, rows[0])
	// Cells arrive trimmed.
	assert.Equal(t, []string{"O-1", "Amina"}, rows[1])
}

func TestReadGridCSVRaggedRows(t *testing.T) {
	csv := "a,b,c\n1\n2,3\n"
	rows, err := NewGridReader().ReadGrid(context.Background(), strings.NewReader(csv), "r.csv")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 1)
}

func TestReadGridXLSXRoundTrip(t *testing.T) {
	grid := [][]string{
		{"Orphan ID", "First Name", "Last Name", "DOB"},
		{"O-1", "Amina", "Hassan", "23/02/2015"},
	}
	data, err := BuildWorkbook(grid)
	require.NoError(t, err)

	rows, err := NewGridReader().ReadGrid(context.Background(), bytes.NewReader(data), "cases.xlsx")
	require.NoError(t, err)
	assert.Equal(t, grid, rows)
}

func TestReadGridGarbageExcel(t *testing.T) {
	_, err := NewGridReader().ReadGrid(context.Background(), strings.NewReader("not a zip"), "cases.xlsx")
	assert.Error(t, err)
}

func TestReadGridCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGridReader().ReadGrid(ctx, strings.NewReader("a,b\n"), "x.csv")
	assert.Error(t, err)
}
