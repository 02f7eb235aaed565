/*
Package docsplice replaces the content of a marked section inside a text
document, leaving every byte outside the markers untouched.

A section is delimited by HTML comment markers carrying an identifier:

	<!-- my-graph-start -->
	...replaceable content...
	<!-- my-graph-end -->

Splice computes the full new document in memory; persistence is the
caller's concern, so an error never leaves a half-written document.
*/
package docsplice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSectionNotFound is returned when no marker pair carries the id.
var ErrSectionNotFound = errors.New("section markers not found")

// ErrAmbiguousSection is returned when more than one start or end marker
// carries the id.
var ErrAmbiguousSection = errors.New("ambiguous section markers")

// ErrMalformedSection is returned when markers are unpaired or the end
// marker precedes the start marker.
var ErrMalformedSection = errors.New("malformed section markers")

// StartMarker returns the opening delimiter for a section id.
func StartMarker(sectionID string) string {
	return fmt.Sprintf("<!-- %s-start -->", sectionID)
}

// EndMarker returns the closing delimiter for a section id.
func EndMarker(sectionID string) string {
	return fmt.Sprintf("<!-- %s-end -->", sectionID)
}

// Splice replaces everything strictly between the section's markers with
// replacement. The markers and all bytes outside them are preserved
// exactly, so splicing the same replacement twice yields the same
// document (idempotent update). Callers wanting the markers on their own
// lines include the newlines in replacement.
func Splice(doc, sectionID, replacement string) (string, error) {
	start := StartMarker(sectionID)
	end := EndMarker(sectionID)

	startCount := strings.Count(doc, start)
	endCount := strings.Count(doc, end)

	switch {
	case startCount == 0 && endCount == 0:
		return "", fmt.Errorf("%w: %q", ErrSectionNotFound, sectionID)
	case startCount > 1 || endCount > 1:
		return "", fmt.Errorf("%w: %q", ErrAmbiguousSection, sectionID)
	case startCount != endCount:
		return "", fmt.Errorf("%w: %q has unpaired markers", ErrMalformedSection, sectionID)
	}

	startIdx := strings.Index(doc, start)
	endIdx := strings.Index(doc, end)
	if endIdx < startIdx {
		return "", fmt.Errorf("%w: %q end marker precedes start marker", ErrMalformedSection, sectionID)
	}

	interiorStart := startIdx + len(start)
	var sb strings.Builder
	sb.Grow(len(doc) + len(replacement))
	sb.WriteString(doc[:interiorStart])
	sb.WriteString(replacement)
	sb.WriteString(doc[endIdx:])
	return sb.String(), nil
}
