package report

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/linelint/linelint/internal/types"
)

// RuleID identifies the line length rule in machine-readable reports.
const RuleID = "line-length"

// resultNamespace seeds the UUID v5 result identities.
var resultNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("linelint/sarif-result/v1"))

// resultGUID derives a stable identity from where a violation is and what
// the line says, so repeated runs over the same sources agree.
func resultGUID(v types.Violation) string {
	return uuid.NewSHA1(resultNamespace, []byte(v.Path+"\x00"+strconv.Itoa(v.Line)+"\x00"+v.Text)).String()
}

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	GUID      string       `json:"guid"`
	RuleID    string       `json:"ruleId"`
	RuleIndex int          `json:"ruleIndex"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

// WriteSARIF writes violations as SARIF 2.1.0 to the provided writer.
func WriteSARIF(w io.Writer, vs []types.Violation, version string) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:    "linelint",
			Version: version,
			Rules: []sarifRule{{
				ID:               RuleID,
				ShortDescription: sarifMessage{Text: "Line exceeds the maximum length"},
			}},
		}},
		Results: []sarifResult{},
	}
	for _, v := range vs {
		run.Results = append(run.Results, sarifResult{
			GUID:    resultGUID(v),
			RuleID:  RuleID,
			Level:   "warning",
			Message: sarifMessage{Text: v.Message()},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: v.Path},
					Region:           sarifRegion{StartLine: v.Line, StartColumn: v.MaxLength + 1},
				},
			}},
		})
	}
	doc := sarif{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
