package css

import "strings"

// tokenizeFallback is the tolerant declaration scanner used when the
// structured parse fails. It strips an optional leading selector with its
// opening brace and the trailing brace, then splits on top-level semicolons
// only, tracking parenthesis depth so the commas and semicolons inside
// rgba(), calc() or linear-gradient() never fracture a declaration.
func tokenizeFallback(source string) []Declaration {
	body := source
	offset := 0

	if open := strings.IndexByte(source, '{'); open >= 0 {
		end := len(source)
		if brace := strings.LastIndexByte(source, '}'); brace > open {
			end = brace
		}
		body = source[open+1 : end]
		offset = open + 1
	}

	var decls []Declaration
	depth := 0
	start := 0

	flush := func(chunk string, at int) {
		if decl, ok := splitDeclaration(source, chunk, at); ok {
			decls = append(decls, decl)
		}
	}

	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				flush(body[start:i], offset+start)
				start = i + 1
			}
		}
	}
	flush(body[start:], offset+start)

	return decls
}

// splitDeclaration splits one chunk at its first colon into property and
// value. Chunks without a colon, or with an empty side, are discarded.
func splitDeclaration(source, chunk string, at int) (Declaration, bool) {
	colon := strings.IndexByte(chunk, ':')
	if colon < 0 {
		return Declaration{}, false
	}

	property := strings.TrimSpace(chunk[:colon])
	value := strings.TrimSpace(chunk[colon+1:])
	if property == "" || value == "" {
		return Declaration{}, false
	}

	propStart := at + strings.Index(chunk, property)
	line, col := lineColAt(source, propStart)

	return Declaration{
		Property: strings.ToLower(property),
		Value:    value,
		Line:     line,
		Column:   col,
	}, true
}

// lineColAt converts a byte offset into zero-based line and column numbers
func lineColAt(source string, idx int) (uint32, uint32) {
	if idx > len(source) {
		idx = len(source)
	}
	line := uint32(0)
	col := uint32(0)
	for _, b := range []byte(source[:idx]) {
		if b == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}
