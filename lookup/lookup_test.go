package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"birthday-twins/llm"
	"birthday-twins/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text     string
	err      error
	requests []llm.Request
}

func (f *fakeGenerator) Generate(_ context.Context, req llm.Request) (*llm.Result, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Result{Text: f.text}, nil
}

func fivePeople() string {
	var entries []string
	for i := 1; i <= 5; i++ {
		entries = append(entries, fmt.Sprintf(`{"name":"Person %d","description":"Known for thing %d."}`, i, i))
	}
	return `{"celebrities":[` + strings.Join(entries, ",") + `]}`
}

func TestLookupReturnsFiveRecords(t *testing.T) {
	gen := &fakeGenerator{text: "```json\n" + fivePeople() + "\n```"}
	svc := New(gen)

	got, err := svc.Lookup(context.Background(), models.DateKey{Month: time.February, Day: 29})
	require.NoError(t, err)
	require.Len(t, got, ExpectedCount)
	for _, c := range got {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Description)
		assert.Empty(t, c.ImageURL)
	}
	assert.Equal(t, "Person 1", got[0].Name)

	require.Len(t, gen.requests, 1)
	assert.True(t, gen.requests[0].Search)
	assert.Contains(t, gen.requests[0].Prompt, "February 29")
	assert.NotContains(t, gen.requests[0].Prompt, "2024")
}

func TestLookupCollapsesFailures(t *testing.T) {
	tests := []struct {
		name          string
		gen           *fakeGenerator
		wantMalformed bool
	}{
		{name: "transport error", gen: &fakeGenerator{err: errors.New("connection reset")}},
		{name: "not json", gen: &fakeGenerator{text: "I could not find anyone."}, wantMalformed: true},
		{name: "missing array", gen: &fakeGenerator{text: `{"people":[]}`}, wantMalformed: true},
		{name: "wrong count", gen: &fakeGenerator{text: `{"celebrities":[{"name":"A","description":"B"}]}`}, wantMalformed: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.gen).Lookup(context.Background(), models.DateKey{Month: time.July, Day: 4})
			assert.ErrorIs(t, err, ErrLookupFailed)
			assert.Equal(t, tc.wantMalformed, errors.Is(err, ErrMalformedResponse))
		})
	}
}

func TestParseRejectsEmptyFields(t *testing.T) {
	text := strings.Replace(fivePeople(), `"Person 3"`, `"  "`, 1)
	_, err := Parse(text)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParseStripsMarkup(t *testing.T) {
	text := strings.Replace(fivePeople(), `Known for thing 2.`, `Known for <b>thing</b> 2.`, 1)
	got, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "Known for thing 2.", got[1].Description)
}

func TestParseKeepsDuplicateNames(t *testing.T) {
	text := strings.Replace(fivePeople(), `"Person 2"`, `"Person 1"`, 1)
	got, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, got[0].Name, got[1].Name)
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "plain text", StripMarkup("plain text"))
	assert.Equal(t, "Tom & Jerry", StripMarkup("Tom &amp; Jerry"))
	assert.Equal(t, "Nobel laureate", StripMarkup("<i>Nobel</i>  laureate"))
}
