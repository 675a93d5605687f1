package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebrw/tablemend/internal/schemas"
	"github.com/calebrw/tablemend/internal/types"
)

func TestLoadJSON(t *testing.T) {
	doc := `{
		"table": "users",
		"columns": ["id", "name", "score"],
		"rows": [
			{"id": 1, "name": "ana", "score": 9.5},
			{"id": 2, "name": null, "score": 7}
		]
	}`

	table, err := LoadJSON([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "users", table.Name)
	assert.Equal(t, []string{"id", "name", "score"}, table.ColumnNames())
	require.Len(t, table.Rows, 2)

	id := table.Rows[0].Get("id")
	assert.Equal(t, types.KindNumber, id.Kind, "JSON numbers keep their kind")
	assert.Equal(t, "1", id.String())
	assert.Equal(t, "9.5", table.Rows[0].Get("score").String())
	assert.True(t, table.Rows[1].Get("name").IsNullOrEmpty())
}

func TestLoadJSONMissingKeysAreNull(t *testing.T) {
	doc := `{"table": "t", "columns": ["a", "b"], "rows": [{"a": "x"}]}`

	table, err := LoadJSON([]byte(doc))
	require.NoError(t, err)
	assert.True(t, table.Rows[0].Get("b").IsNullOrEmpty())
}

func TestLoadJSONBooleansBecomeText(t *testing.T) {
	doc := `{"table": "t", "columns": ["flag"], "rows": [{"flag": true}]}`

	table, err := LoadJSON([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "true", table.Rows[0].Get("flag").String())
}

func TestLoadJSONRejectsInvalidDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing table name", doc: `{"columns": ["a"], "rows": []}`},
		{name: "rows not objects", doc: `{"table": "t", "columns": ["a"], "rows": [1, 2]}`},
		{name: "unknown top-level key", doc: `{"table": "t", "columns": [], "rows": [], "extra": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON([]byte(tt.doc))
			require.Error(t, err)

			var validationErr *schemas.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestLoadJSONEmptyRows(t *testing.T) {
	doc := `{"table": "t", "columns": ["a"], "rows": []}`

	table, err := LoadJSON([]byte(doc))
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
	assert.Len(t, table.Columns, 1)
}
