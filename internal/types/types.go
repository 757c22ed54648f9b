package types

import "fmt"

// Violation describes a line at path whose length exceeds the configured
// maximum. Line is 1-based; Length is counted in characters.
type Violation struct {
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Length    int    `json:"length"`
	MaxLength int    `json:"max_length"`
	Text      string `json:"text,omitempty"`
}

// Message renders the violation in the stable single-line report format.
func (v Violation) Message() string {
	return fmt.Sprintf("%s:%d: Line is longer than %d characters", v.Path, v.Line, v.MaxLength)
}

func (v Violation) String() string { return v.Message() }
