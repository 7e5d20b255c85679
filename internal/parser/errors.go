package parser

import "fmt"

// MalformedSectionError reports a section header line that is empty,
// unterminated, or otherwise unparsable.
type MalformedSectionError struct {
	Line int
	Text string
}

// Error implements the error interface
func (e *MalformedSectionError) Error() string {
	return fmt.Sprintf("line %d: malformed section header: %q", e.Line, e.Text)
}

// MalformedAssignmentError reports a non-blank, non-comment, non-header
// line with no recognizable assignment operator or an empty key.
type MalformedAssignmentError struct {
	Line   int
	Text   string
	Reason string
}

// Error implements the error interface
func (e *MalformedAssignmentError) Error() string {
	return fmt.Sprintf("line %d: malformed assignment (%s): %q", e.Line, e.Reason, e.Text)
}
