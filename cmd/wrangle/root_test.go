package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaejungca/advanced-wrangling/config"
)

func TestLoadFrameRejectsEmptyDelimiter(t *testing.T) {
	cfg = &config.Config{Delimiter: ""}
	_, err := loadFrame("people.csv")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "delimiter")
}

func TestLoadFrameMultiByteDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	require.Nil(t, os.WriteFile(path, []byte("name→age\nann→32\n"), 0o644))
	cfg = &config.Config{Delimiter: "→"}
	f, err := loadFrame(path)
	require.Nil(t, err)
	require.Equal(t, []string{"name", "age"}, f.Schema().ColumnNames())
	age, err := f.Row(0).GetInt64("age")
	require.Nil(t, err)
	require.Equal(t, int64(32), age)
}
