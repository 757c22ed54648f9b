package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, sample(), "1.2.3"))

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name    string `json:"name"`
					Version string `json:"version"`
					Rules   []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Message   struct{ Text string } `json:"message"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct{ URI string } `json:"artifactLocation"`
						Region           struct {
							StartLine int `json:"startLine"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc), buf.String())
	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	run := doc.Runs[0]
	assert.Equal(t, "linelint", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)
	require.Len(t, run.Tool.Driver.Rules, 1)
	assert.Equal(t, RuleID, run.Tool.Driver.Rules[0].ID)
	require.Len(t, run.Results, 2)
	assert.Equal(t, "/doc/b.tex:7: Line is longer than 80 characters", run.Results[0].Message.Text)
	assert.Equal(t, "/doc/b.tex", run.Results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 7, run.Results[0].Locations[0].PhysicalLocation.Region.StartLine)
}

func TestWriteSARIF_StableResultGUIDs(t *testing.T) {
	guids := func() []string {
		var buf bytes.Buffer
		require.NoError(t, WriteSARIF(&buf, sample(), "dev"))
		var doc struct {
			Runs []struct {
				Results []struct {
					GUID string `json:"guid"`
				} `json:"results"`
			} `json:"runs"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		var out []string
		for _, r := range doc.Runs[0].Results {
			out = append(out, r.GUID)
		}
		return out
	}
	first, second := guids(), guids()
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first[0], first[1])
	_, err := uuid.Parse(first[0])
	assert.NoError(t, err)
}

func TestWriteSARIF_EmptyResultsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, nil, "dev"))
	assert.Contains(t, buf.String(), `"results": []`)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, sample()[:1]))
	var arr []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &arr))
	require.Len(t, arr, 1)
	assert.Equal(t, "/doc/b.tex", arr[0]["path"])
	assert.EqualValues(t, 7, arr[0]["line"])
	assert.EqualValues(t, 80, arr[0]["max_length"])
}
