package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	lastPrompt string
	response   string
	err        error
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func fixtureSources() []Source {
	return []Source{
		{ID: 1, Title: "Brave", Description: "a princess in Scotland"},
		{ID: 2, Title: "Paddington", Description: "a bear in London"},
	}
}

func TestAnswerIncludesQueryAndSources(t *testing.T) {
	p := &fakeProvider{response: "  here is the answer  "}
	g := New(p)

	ans, err := g.Answer(context.Background(), "bear movies", fixtureSources())
	require.NoError(t, err)
	assert.Equal(t, "here is the answer", ans.Text)
	assert.Equal(t, fixtureSources(), ans.Sources)
	assert.Contains(t, p.lastPrompt, "bear movies")
	assert.Contains(t, p.lastPrompt, "Paddington")
}

func TestCiteUsesCitationTemplate(t *testing.T) {
	p := &fakeProvider{response: "answer [1]"}
	g := New(p)

	ans, err := g.Cite(context.Background(), "q", fixtureSources())
	require.NoError(t, err)
	assert.Equal(t, "answer [1]", ans.Text)
	assert.Contains(t, p.lastPrompt, "Cite sources using [1]")
}

func TestSummarizePropagatesProviderError(t *testing.T) {
	p := &fakeProvider{err: errors.New("boom")}
	g := New(p)

	_, err := g.Summarize(context.Background(), "q", fixtureSources())
	assert.Error(t, err)
}

func TestQuestionUsesQuestionTemplate(t *testing.T) {
	p := &fakeProvider{response: "yeah paddington's pretty good"}
	g := New(p)

	ans, err := g.Question(context.Background(), "is paddington good?", fixtureSources())
	require.NoError(t, err)
	assert.Equal(t, "yeah paddington's pretty good", ans.Text)
	assert.Contains(t, p.lastPrompt, "casual")
}
