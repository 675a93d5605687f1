package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebrw/tablemend/internal/types"
)

func TestForeignKeyRepairsDeleteAndCustom(t *testing.T) {
	table := makeTable("orders", textColumns("id", "user_id"),
		map[string]string{"id": "1", "user_id": "1"},
		map[string]string{"id": "2", "user_id": "9"},
		map[string]string{"id": "3", "user_id": "2"},
	)
	violations := []types.Violation{
		{Kind: types.ViolationForeignKey, Row: 2, Column: "user_id", Value: "9"},
	}

	candidates := ForeignKeyRepairs(violations, table)

	require.Len(t, candidates, 2)

	deleteCandidate := candidates[0]
	assert.Equal(t, "orders_fk_delete", deleteCandidate.Name)
	assert.Equal(t, []map[string]string{
		{"id": "1", "user_id": "1"},
		{"id": "3", "user_id": "2"},
	}, candidateValues(deleteCandidate))

	custom := candidates[1]
	assert.Equal(t, "orders_fk_custom", custom.Name)
	assert.Len(t, custom.Rows, 3, "custom candidate is an unmodified copy")
}

func TestForeignKeyRepairsCustomCopyIsDeep(t *testing.T) {
	table := makeTable("orders", textColumns("user_id"),
		map[string]string{"user_id": "9"},
	)
	violations := []types.Violation{
		{Kind: types.ViolationForeignKey, Row: 1, Column: "user_id", Value: "9"},
	}

	candidates := ForeignKeyRepairs(violations, table)
	require.Len(t, candidates, 2)

	candidates[1].Rows[0].Cells.Cells["user_id"] = types.Text("changed")
	assert.Equal(t, "9", table.Rows[0].Get("user_id").String())
}

func TestForeignKeyRepairsNoViolations(t *testing.T) {
	table := makeTable("orders", textColumns("user_id"),
		map[string]string{"user_id": "1"},
	)

	assert.Empty(t, ForeignKeyRepairs(nil, table))
	assert.Empty(t, ForeignKeyRepairs([]types.Violation{
		{Kind: types.ViolationNotNull, Row: 1, Column: "user_id"},
	}, table))
	assert.Empty(t, ForeignKeyRepairs(nil, &types.TableInstance{}))
}
