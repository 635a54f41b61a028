package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "glassworks dev\n", out.String())
}

func TestLedgerExportRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing to", []string{"ledger", "export", "--from", "01/10/2026"}},
		{"iso from", []string{"ledger", "export", "--from", "2026-10-01", "--to", "15/10/2026"}},
		{"bad format", []string{"ledger", "export", "--from", "01/10/2026", "--to", "15/10/2026", "--format", "csv"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			t.Cleanup(func() { rootCmd.SetArgs(nil) })

			assert.Error(t, rootCmd.Execute())
		})
	}
}

func TestWriteDocumentToExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")

	got, err := writeDocument(context.Background(), nil, document.Document{Name: "ignored.pdf", Body: []byte("%PDF-1.4")}, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
}
