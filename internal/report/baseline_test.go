package report

import (
	"path/filepath"
	"testing"

	"github.com/linelint/linelint/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseline_RoundTripSurvivesLineShift(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linelint.baseline.json")
	doc := filepath.Join(dir, "paper.tex")
	known := types.Violation{Path: doc, Line: 10, MaxLength: 80, Text: "an old and very long line"}
	require.NoError(t, SaveBaseline(path, []types.Violation{known}))

	base, err := LoadBaseline(path)
	require.NoError(t, err)
	assert.True(t, base.Items["paper.tex|an old and very long line"])

	shifted := known
	shifted.Line = 14
	fresh := types.Violation{Path: doc, Line: 20, MaxLength: 80, Text: "a brand new long line"}
	got := FilterNew([]types.Violation{shifted, fresh}, base)
	assert.Equal(t, []types.Violation{fresh}, got)
}

func TestLoadBaseline_Missing(t *testing.T) {
	base, err := LoadBaseline(filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
	assert.NotNil(t, base.Items)
}

func TestShouldFail(t *testing.T) {
	v := []types.Violation{{Path: "a.tex", Line: 1}}
	assert.True(t, ShouldFail(v, 0, false))
	assert.False(t, ShouldFail(nil, 2, false))
	assert.True(t, ShouldFail(nil, 2, true))
	assert.False(t, ShouldFail(nil, 0, true))
}
