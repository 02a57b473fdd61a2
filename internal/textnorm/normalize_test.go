package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLowercasesStripsPunctuationAndStems(t *testing.T) {
	n := New(map[string]struct{}{"is": {}, "a": {}})
	terms := n.Normalize("Merida is a headstrong, Scottish princess!")
	assert.Equal(t, []string{"merida", "headstrong", "scottish", "princess"}, terms)
}

func TestNormalizeEmptyInputYieldsEmptyOutput(t *testing.T) {
	n := New(nil)
	terms := n.Normalize("")
	assert.Empty(t, terms)
	assert.NotNil(t, terms)
}

func TestNormalizePreservesDuplicates(t *testing.T) {
	n := New(nil)
	terms := n.Normalize("run run run")
	assert.Equal(t, []string{"run", "run", "run"}, terms)
}

func TestNormalizeTermReturnsEmptyForBareStopword(t *testing.T) {
	n := New(map[string]struct{}{"the": {}})
	assert.Equal(t, "", n.NormalizeTerm("the"))
}
