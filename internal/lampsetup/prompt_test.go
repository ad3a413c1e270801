package lampsetup

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_AskDomain(t *testing.T) {
	t.Run("re-prompts until valid", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("bad domain\nno_underscores\napp.example.com\n"), &out)

		got, err := p.AskDomain(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "app.example.com", got)
		assert.Equal(t, 3, strings.Count(out.String(), "Enter the domain name (default: example.com): "))
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid domain name."))
	})

	t.Run("dots only re-prompts", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("..\n.\nexample.org\n"), &out)

		got, err := p.AskDomain(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "example.org", got)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid domain name."))
	})

	t.Run("empty input uses default", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("\n"), io.Discard)

		got, err := p.AskDomain(context.Background())
		require.NoError(t, err)
		assert.Equal(t, DefaultDomain, got)
	})

	t.Run("final line without newline", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("example.org"), io.Discard)

		got, err := p.AskDomain(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "example.org", got)
	})

	t.Run("closed input", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("bad domain\n"), io.Discard)

		_, err := p.AskDomain(context.Background())
		assert.ErrorIs(t, err, ErrInputClosed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := NewLinePrompter(strings.NewReader("example.com\n"), io.Discard)

		_, err := p.AskDomain(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLinePrompter_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "Yes\n", false, true},
		{"no", "n\n", true, false},
		{"empty takes default true", "\n", true, true},
		{"empty takes default false", "\n", false, false},
		{"re-asks on garbage", "maybe\ny\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm(context.Background(), QuestionComposer, "Install Composer", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("hint reflects default", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("\n\n"), &out)

		_, err := p.Confirm(context.Background(), QuestionComposer, "Install Composer", true)
		require.NoError(t, err)
		_, err = p.Confirm(context.Background(), QuestionMySQL, "Install MySQL", false)
		require.NoError(t, err)
		assert.Equal(t, "Install Composer [Y/n]: Install MySQL [y/N]: ", out.String())
	})
}

func TestAnswersPrompter(t *testing.T) {
	yes := true

	t.Run("preset answers skip the terminal", func(t *testing.T) {
		next := &scriptedPrompter{domain: "unused.example.com", confirms: map[Question]bool{}}
		p := NewAnswersPrompter(Answers{Domain: "app.example.com", NewServer: &yes}, next)

		domain, err := p.AskDomain(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "app.example.com", domain)

		ok, err := p.Confirm(context.Background(), QuestionNewServer, "", false)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, next.asked)
	})

	t.Run("missing answers fall through", func(t *testing.T) {
		next := &scriptedPrompter{domain: "next.example.com", confirms: map[Question]bool{QuestionMySQL: true}}
		p := NewAnswersPrompter(Answers{}, next)

		domain, err := p.AskDomain(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "next.example.com", domain)

		ok, err := p.Confirm(context.Background(), QuestionMySQL, "", false)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []Question{QuestionMySQL}, next.asked)
	})

	t.Run("invalid preset domain is an error", func(t *testing.T) {
		p := NewAnswersPrompter(Answers{Domain: "bad domain"}, &scriptedPrompter{})

		_, err := p.AskDomain(context.Background())
		assert.ErrorIs(t, err, ErrInvalidDomain)
	})
}
