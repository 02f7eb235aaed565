package docsplice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/studiomap/internal/docsplice"
)

func TestSplice_ReplacesInterior(t *testing.T) {
	doc := "<!-- x-start -->old<!-- x-end -->"
	got, err := docsplice.Splice(doc, "x", "new")
	require.NoError(t, err)
	assert.Equal(t, "<!-- x-start -->new<!-- x-end -->", got)
}

func TestSplice_Idempotent(t *testing.T) {
	doc := "# Title\n\n<!-- flow-graph-start -->\nstale\n<!-- flow-graph-end -->\n\nFooter.\n"
	replacement := "\n```mermaid\nflowchart TD\n    a --> b\n```\n"

	first, err := docsplice.Splice(doc, "flow-graph", replacement)
	require.NoError(t, err)

	second, err := docsplice.Splice(first, "flow-graph", replacement)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSplice_NonInterference(t *testing.T) {
	prefix := "# Header\r\n\twith tabs and \r\n line endings\r\n"
	suffix := "\r\n\t trailing   whitespace  \nand more text"
	doc := prefix + "<!-- s-start -->anything<!-- s-end -->" + suffix

	got, err := docsplice.Splice(doc, "s", "X")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, prefix+"<!-- s-start -->"))
	assert.True(t, strings.HasSuffix(got, "<!-- s-end -->"+suffix))
}

func TestSplice_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"No Markers", "plain document", docsplice.ErrSectionNotFound},
		{"Wrong ID", "<!-- other-start -->x<!-- other-end -->", docsplice.ErrSectionNotFound},
		{"Two Starts", "<!-- x-start --><!-- x-start -->y<!-- x-end -->", docsplice.ErrAmbiguousSection},
		{"Two Ends", "<!-- x-start -->y<!-- x-end --><!-- x-end -->", docsplice.ErrAmbiguousSection},
		{"Missing End", "<!-- x-start -->y", docsplice.ErrMalformedSection},
		{"Missing Start", "y<!-- x-end -->", docsplice.ErrMalformedSection},
		{"End Before Start", "<!-- x-end -->y<!-- x-start -->", docsplice.ErrMalformedSection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := docsplice.Splice(tt.doc, "x", "new")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSplice_DocumentUntouchedOnError(t *testing.T) {
	got, err := docsplice.Splice("no markers here", "x", "new")
	assert.Error(t, err)
	assert.Empty(t, got)
}
