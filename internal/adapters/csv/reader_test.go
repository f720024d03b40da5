package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		opts        []Option
		wantErr     bool
		wantHeaders []string
		wantRecords [][]string
	}{
		{
			name:        "header and rows",
			content:     "player,pos,pts\nA,G,10\nB,F,20\n",
			wantHeaders: []string{"player", "pos", "pts"},
			wantRecords: [][]string{{"A", "G", "10"}, {"B", "F", "20"}},
		},
		{
			name:        "cells are trimmed by default",
			content:     "player, pos ,pts\nA , G,10\n",
			wantHeaders: []string{"player", "pos", "pts"},
			wantRecords: [][]string{{"A", "G", "10"}},
		},
		{
			name:        "trimming disabled",
			content:     "player,pos\nA , G\n",
			opts:        []Option{WithTrimCells(false)},
			wantHeaders: []string{"player", "pos"},
			wantRecords: [][]string{{"A ", " G"}},
		},
		{
			name:        "ragged rows are skipped",
			content:     "player,pos,pts\nA,G,10\nB,F\nC,C,30\n",
			wantHeaders: []string{"player", "pos", "pts"},
			wantRecords: [][]string{{"A", "G", "10"}, {"C", "C", "30"}},
		},
		{
			name:        "no header mode keeps every row",
			content:     "A,G,10\nB,F,20\n",
			opts:        []Option{WithHeader(false)},
			wantRecords: [][]string{{"A", "G", "10"}, {"B", "F", "20"}},
		},
		{
			name:    "empty file",
			content: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.content)
			table, err := NewReader(path, tt.opts...).Read()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeaders, table.Headers)
			assert.Equal(t, tt.wantRecords, table.Records)
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.csv")).Read()
	assert.Error(t, err)
}

func TestIsNumericColumn(t *testing.T) {
	table := &Table{
		Headers: []string{"player", "pts", "sparse", "blank"},
		Records: [][]string{
			{"A", "10.5", "1", ""},
			{"B", "20", "", ""},
		},
	}

	assert.False(t, table.IsNumericColumn(0))
	assert.True(t, table.IsNumericColumn(1))
	assert.True(t, table.IsNumericColumn(2), "empty cells count as missing, not non-numeric")
	assert.False(t, table.IsNumericColumn(3), "a fully empty column is not numeric")
}

func TestColumn(t *testing.T) {
	table := &Table{Headers: []string{"player", "pos"}}
	assert.Equal(t, 1, table.Column("pos"))
	assert.Equal(t, -1, table.Column("nope"))
}
