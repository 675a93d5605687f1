package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebrw/tablemend/internal/types"
	"github.com/calebrw/tablemend/internal/validation"
)

func TestGenerateSelectsPartialStrategy(t *testing.T) {
	table := makeTable("users",
		[]types.Column{
			{Name: "id", Type: types.TypeText, Constraints: []types.Constraint{types.ConstraintUnique}},
			{Name: "age", Type: types.TypeInteger},
		},
		map[string]string{"id": "1", "age": "25"},
		map[string]string{"id": "1", "age": "bad"},
	)
	violations := validation.Check(table, nil, nil)

	candidates := Generate(violations, table, Options{})

	// Partial brings its own custom candidate; no second one is appended.
	require.Len(t, candidates, 3)
	customCount := 0
	for _, c := range candidates {
		if types.CandidateBaseTable(c.Name) == "users" && c.Name == "users_custom" {
			customCount++
		}
	}
	assert.Equal(t, 1, customCount)
}

func TestGenerateSelectsPrimaryKeyStrategyAndAppendsCustom(t *testing.T) {
	table := makeTable("users",
		[]types.Column{
			{Name: "id", Type: types.TypeText, Constraints: []types.Constraint{types.ConstraintPrimary}},
			{Name: "a", Type: types.TypeText},
		},
		map[string]string{"id": "1", "a": "x"},
		map[string]string{"id": "1", "a": "y"},
		map[string]string{"id": "2", "a": "z"},
	)
	violations := validation.Check(table, nil, nil)

	candidates := Generate(violations, table, Options{})

	require.Len(t, candidates, 3)
	assert.Equal(t, "users_repair_1", candidates[0].Name)
	assert.Equal(t, "users_repair_2", candidates[1].Name)

	custom := candidates[2]
	assert.Equal(t, "users_custom", custom.Name)
	assert.Len(t, custom.Rows, 3, "custom candidate preserves every original row")
}

func TestGenerateSelectsGeneralStrategyAndAppendsCustom(t *testing.T) {
	table := makeTable("users",
		[]types.Column{{Name: "name", Type: types.TypeText, Constraints: []types.Constraint{types.ConstraintNotNull}}},
		map[string]string{"name": "ana"},
		map[string]string{"name": ""},
	)
	violations := validation.Check(table, nil, nil)

	candidates := Generate(violations, table, Options{})

	require.Len(t, candidates, 2)
	assert.Equal(t, "users_repair_1", candidates[0].Name)
	assert.Equal(t, "users_custom", candidates[1].Name)
}

func TestGenerateNoViolationsNoCandidates(t *testing.T) {
	table := makeTable("users",
		[]types.Column{{Name: "id", Type: types.TypeText, Constraints: []types.Constraint{types.ConstraintPrimary}}},
		map[string]string{"id": "1"},
		map[string]string{"id": "2"},
	)

	assert.Empty(t, Generate(nil, table, Options{}))
	assert.Empty(t, Generate([]types.Violation{}, table, Options{}))
}

func TestGenerateEmptyTable(t *testing.T) {
	violations := []types.Violation{{Kind: types.ViolationNotNull, Row: 1, Column: "a"}}
	assert.Empty(t, Generate(violations, nil, Options{}))
	assert.Empty(t, Generate(violations, &types.TableInstance{}, Options{}))
}

func TestGenerateCandidatesHaveDistinctIDs(t *testing.T) {
	table := makeTable("users",
		[]types.Column{
			{Name: "id", Type: types.TypeText, Constraints: []types.Constraint{types.ConstraintPrimary}},
			{Name: "a", Type: types.TypeText},
		},
		map[string]string{"id": "1", "a": "x"},
		map[string]string{"id": "1", "a": "y"},
	)
	violations := validation.Check(table, nil, nil)

	candidates := Generate(violations, table, Options{})

	seen := map[string]struct{}{}
	for _, c := range candidates {
		require.NotEmpty(t, c.ID)
		_, dup := seen[c.ID]
		assert.False(t, dup, "candidate IDs must be unique")
		seen[c.ID] = struct{}{}
	}
}
