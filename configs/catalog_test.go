package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Default(t *testing.T) {
	meals, err := LoadCatalog("")
	require.NoError(t, err)
	require.Len(t, meals, 10)
	assert.Equal(t, "rice-nasi-lemak", meals[0].ID)
	assert.True(t, meals[0].Price.Equal(decimal.RequireFromString("8.50")))
}

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
meals:
  - id: m1
    name: Nasi Lemak
    price: "12.50"
    category: Rice
`), 0o644))

	meals, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Rice", meals[0].Category)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseCatalog_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing id":     "meals:\n  - name: X\n    price: \"1\"\n",
		"duplicate id":   "meals:\n  - {id: a, name: A, price: \"1\"}\n  - {id: a, name: B, price: \"2\"}\n",
		"bad price":      "meals:\n  - {id: a, name: A, price: cheap}\n",
		"negative price": "meals:\n  - {id: a, name: A, price: \"-1\"}\n",
		"not yaml":       "meals: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(raw))
			require.Error(t, err)
		})
	}
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "app.db?_foreign_keys=on", sqliteDSN("app.db"))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", sqliteDSN("file::memory:?cache=shared"))
}
