package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_WritesWarningsWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.WithField("file", "doc.tex").Warn("environment mismatch")

	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "environment mismatch")
	assert.Contains(t, out, "file=doc.tex")
}

func TestNew_DebugOnlyWhenVerbose(t *testing.T) {
	var quiet, loud bytes.Buffer
	New(&quiet, false).Debug("details")
	New(&loud, true).Debug("details")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "details")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.NotPanics(t, func() { l.Error("dropped") })
}
