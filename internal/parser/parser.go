// Package parser tokenizes ini-style configuration text into classified
// logical lines for the merge engine.
package parser

import "strings"

// Scan tokenizes text and calls fn for each section header and assignment
// line, in input order. Comment and blank lines are dropped. Scanning stops
// at the first malformed line, or at the first error returned by fn, which
// is propagated unchanged.
func Scan(text string, fn func(Line) error) error {
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		number := i + 1
		logical := strings.TrimSpace(strings.TrimSuffix(lines[i], "\r"))

		if logical == "" || strings.HasPrefix(logical, "#") {
			continue
		}

		// A trailing backslash joins the next physical line. A blank
		// line, a comment line, or end of input ends the continuation;
		// comments never contribute text to a joined value.
		for strings.HasSuffix(logical, `\`) {
			logical = strings.TrimSpace(logical[:len(logical)-1])
			if i+1 >= len(lines) {
				break
			}
			i++
			next := strings.TrimSpace(strings.TrimSuffix(lines[i], "\r"))
			if next == "" || strings.HasPrefix(next, "#") {
				break
			}
			if logical == "" {
				logical = next
			} else {
				logical += " " + next
			}
		}
		if logical == "" {
			continue
		}

		ln, err := classify(number, logical)
		if err != nil {
			return err
		}
		if err := fn(ln); err != nil {
			return err
		}
	}
	return nil
}

// Parse tokenizes text into its meaningful lines. It is a pure function of
// text: calling it twice on the same input yields equal results.
func Parse(text string) ([]Line, error) {
	var lines []Line
	err := Scan(text, func(ln Line) error {
		lines = append(lines, ln)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func classify(number int, text string) (Line, error) {
	if strings.HasPrefix(text, "[") {
		return classifySection(number, text)
	}
	return classifyAssignment(number, text)
}

func classifySection(number int, text string) (Line, error) {
	if !strings.HasSuffix(text, "]") {
		return Line{}, &MalformedSectionError{Line: number, Text: text}
	}

	name := strings.TrimSpace(text[1 : len(text)-1])
	if name == "" || strings.ContainsAny(name, "[]") {
		return Line{}, &MalformedSectionError{Line: number, Text: text}
	}

	return Line{Number: number, Raw: text, Kind: KindSection, Section: name}, nil
}

func classifyAssignment(number int, text string) (Line, error) {
	eq := strings.IndexByte(text, '=')
	if eq < 0 {
		return Line{}, &MalformedAssignmentError{Line: number, Text: text, Reason: "no operator"}
	}

	// Two-character operators share '=' as their second character.
	op, keyEnd := OpSet, eq
	if eq > 0 {
		switch text[eq-1] {
		case '!':
			op, keyEnd = OpReplace, eq-1
		case '?':
			op, keyEnd = OpFallback, eq-1
		case '+':
			op, keyEnd = OpAppend, eq-1
		case '^':
			op, keyEnd = OpUnion, eq-1
		}
	}

	key := strings.TrimSpace(text[:keyEnd])
	if key == "" {
		return Line{}, &MalformedAssignmentError{Line: number, Text: text, Reason: "empty key"}
	}

	value := unquote(strings.TrimSpace(text[eq+1:]))
	return Line{Number: number, Raw: text, Kind: KindAssignment, Key: key, Op: op, Value: value}, nil
}

// unquote strips one pair of matching surrounding single or double quotes.
// The inner text is taken verbatim, with no escape processing.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
		return s[1 : len(s)-1]
	}
	return s
}
