package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegionList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"float", []string{"float"}},
		{"float,equation", []string{"float", "equation"}},
		{"float, equation  align", []string{"float", "equation", "align"}},
		{" , ", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRegionList(tt.in))
		})
	}
}

func TestLoadRegionsFile(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "envs.txt", "figure\n  table  \n\nalign\n")
	names, err := LoadRegionsFile(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"figure", "table", "align"}, names)
}

func TestCollectRegions(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "envs.txt", "tikzpicture\n")
	names, err := CollectRegions([]string{"float,equation", "table"}, []string{p})
	require.NoError(t, err)
	assert.Equal(t, []string{"float", "equation", "table", "tikzpicture"}, names)
}

func TestCollectRegions_MissingFileIsFatal(t *testing.T) {
	_, err := CollectRegions(nil, []string{filepath.Join(t.TempDir(), "nope.txt")})
	assert.Error(t, err)
}

func TestParseTruthy(t *testing.T) {
	for _, s := range []string{"1", "true", "TRUE", "yes", "on", " t ", "enabled", "2", "x"} {
		assert.True(t, ParseTruthy(s), s)
	}
	for _, s := range []string{"", "  ", "0", "f", "false", "FALSE", "n", "no", "off"} {
		assert.False(t, ParseTruthy(s), s)
	}
}
