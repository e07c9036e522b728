// Package parser implements a statement-level scanner for ES import
// declarations over raw source text. It recognizes just enough syntax to
// locate every top-level import, extract its module specifier and bindings,
// and report the exact byte span of the statement. It never builds a full
// syntax tree and is total over any byte slice: malformed input yields
// statements the rewriter will not match, never an error.
package parser

// Form classifies the binding shape of an import statement.
type Form uint8

const (
	// FormNamed is `import { A, B as C } from 'mod'`.
	FormNamed Form = iota
	// FormDefault is `import X from 'mod'`.
	FormDefault
	// FormMixed is `import X, { A } from 'mod'`.
	FormMixed
	// FormNamespace is `import * as ns from 'mod'`, including the
	// `import X, * as ns` combination.
	FormNamespace
	// FormSideEffect is `import 'mod'`.
	FormSideEffect
	// FormDynamic is the `import(expr)` call form.
	FormDynamic
)

// Specifier is a single named binding: the exported identifier and the
// local name it is bound to. Local equals Exported when no `as` clause is
// present. TypeOnly marks an inline `type` modifier.
type Specifier struct {
	Exported string
	Local    string
	TypeOnly bool
}

// ImportStatement is one scanned import declaration.
type ImportStatement struct {
	Form   Form
	Module string // quote-stripped specifier; empty when not a plain string literal

	// Start and End delimit the statement in the source, End pointing past
	// the optional semicolon and one trailing newline when present, so
	// deleting the span removes the whole line.
	Start int
	End   int

	Named     []Specifier
	Default   string // local binding of the default import, if any
	Namespace string // local binding of the namespace import, if any
	TypeOnly  bool   // whole-statement `import type` form
}

func isWhiteSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentifierChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_' || c == '$'
}

func hasWordAt(code []byte, i int, s string) bool {
	if i < 0 || i+len(s) > len(code) {
		return false
	}
	for j := 0; j < len(s); j++ {
		if code[i+j] != s[j] {
			return false
		}
	}
	end := i + len(s)
	return end >= len(code) || !isIdentifierChar(code[end])
}

func skipSpaces(code []byte, i int) int {
	for i < len(code) && isWhiteSpace(code[i]) {
		i++
	}
	return i
}

func skipLineComment(code []byte, i int) int {
	i += 2
	for i < len(code) && code[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(code []byte, i int) int {
	i += 2
	for i+1 < len(code) && !(code[i] == '*' && code[i+1] == '/') {
		i++
	}
	if i+1 < len(code) {
		i += 2
	}
	return i
}

func skipSpacesAndComments(code []byte, i int) int {
	n := len(code)
	for i < n {
		i = skipSpaces(code, i)
		if i+1 < n && code[i] == '/' && code[i+1] == '/' {
			i = skipLineComment(code, i)
			continue
		}
		if i+1 < n && code[i] == '/' && code[i+1] == '*' {
			i = skipBlockComment(code, i)
			continue
		}
		break
	}
	return i
}

// skipString advances past a string literal whose opening quote is at i.
func skipString(code []byte, i int) int {
	quote := code[i]
	i++
	for i < len(code) {
		if code[i] == '\\' {
			i += 2
			continue
		}
		if code[i] == quote {
			return i + 1
		}
		i++
	}
	return i
}

// parseStringLiteral extracts the literal at i (' or "), returning the
// value and the position past the closing quote.
func parseStringLiteral(code []byte, i int) (value string, next int, ok bool) {
	quote := code[i]
	i++
	start := i
	for i < len(code) && code[i] != quote {
		i++
	}
	if i >= len(code) {
		return "", i, false
	}
	return string(code[start:i]), i + 1, true
}

func parseIdentifier(code []byte, i int) (name string, next int) {
	start := i
	for i < len(code) && isIdentifierChar(code[i]) {
		i++
	}
	return string(code[start:i]), i
}

// skipBalancedParens assumes code[i] == '(' and advances past the matching
// close, honoring strings and comments inside.
func skipBalancedParens(code []byte, i int) int {
	depth := 0
	n := len(code)
	for i < n {
		switch code[i] {
		case '(':
			depth++
			i++
		case ')':
			depth--
			i++
			if depth == 0 {
				return i
			}
		case '\'', '"', '`':
			i = skipString(code, i)
		case '/':
			if i+1 < n && code[i+1] == '/' {
				i = skipLineComment(code, i)
			} else if i+1 < n && code[i+1] == '*' {
				i = skipBlockComment(code, i)
			} else {
				i++
			}
		default:
			i++
		}
	}
	return i
}

// parseSpecifiers parses a `{ A, B as C, type D }` list. code[i] must be '{'.
// Returns the specifiers and the position past the closing brace.
func parseSpecifiers(code []byte, i int) ([]Specifier, int) {
	n := len(code)
	var specs []Specifier
	i++ // '{'
	for i < n {
		i = skipSpacesAndComments(code, i)
		if i >= n {
			break
		}
		if code[i] == '}' {
			i++
			break
		}
		if code[i] == ',' {
			i++
			continue
		}
		if !isIdentifierChar(code[i]) {
			// String names and anything else exotic: skip to the next
			// separator without recording a binding.
			if code[i] == '\'' || code[i] == '"' {
				i = skipString(code, i)
			} else {
				i++
			}
			continue
		}

		typeOnly := false
		if hasWordAt(code, i, "type") {
			// Lookahead distinguishes the inline modifier from an
			// identifier literally named `type`.
			j := skipSpacesAndComments(code, i+4)
			if j < n && isIdentifierChar(code[j]) && !hasWordAt(code, j, "as") {
				typeOnly = true
				i = j
			}
		}

		name, next := parseIdentifier(code, i)
		if name == "" {
			i++
			continue
		}
		i = skipSpacesAndComments(code, next)

		local := name
		if hasWordAt(code, i, "as") {
			i = skipSpacesAndComments(code, i+2)
			alias, aliasNext := parseIdentifier(code, i)
			if alias != "" {
				local = alias
			}
			i = aliasNext
		}

		specs = append(specs, Specifier{Exported: name, Local: local, TypeOnly: typeOnly})
	}
	return specs, i
}

// statementEnd consumes an optional semicolon and one trailing line break
// so a deletion takes the whole line with it.
func statementEnd(code []byte, i int) int {
	n := len(code)
	j := i
	for j < n && (code[j] == ' ' || code[j] == '\t') {
		j++
	}
	if j < n && code[j] == ';' {
		i = j + 1
	}
	if i < n && code[i] == '\r' {
		i++
	}
	if i < len(code) && code[i] == '\n' {
		i++
	}
	return i
}

// Scan walks the source and returns every import declaration found outside
// strings and comments, in source order.
func Scan(src []byte) []ImportStatement {
	var stmts []ImportStatement
	n := len(src)
	i := 0
	for i < n {
		switch src[i] {
		case '\'', '"', '`':
			i = skipString(src, i)
			continue
		case '/':
			if i+1 < n && src[i+1] == '/' {
				i = skipLineComment(src, i)
				continue
			}
			if i+1 < n && src[i+1] == '*' {
				i = skipBlockComment(src, i)
				continue
			}
		}
		if src[i] == 'i' && hasWordAt(src, i, "import") {
			prevOK := i == 0 || (!isIdentifierChar(src[i-1]) && src[i-1] != '.')
			if prevOK {
				stmt, next, ok := parseImportStatement(src, i)
				if ok {
					stmts = append(stmts, stmt)
				}
				i = next
				continue
			}
		}
		if isIdentifierChar(src[i]) {
			// Jump over the whole identifier so `importers` never
			// re-triggers the keyword check mid-word.
			_, i = parseIdentifier(src, i)
			continue
		}
		i++
	}
	return stmts
}

func parseImportStatement(code []byte, start int) (ImportStatement, int, bool) {
	n := len(code)
	stmt := ImportStatement{Start: start}
	i := start + len("import")

	i = skipSpacesAndComments(code, i)
	if i >= n {
		return stmt, i, false
	}

	// Call form: `import(expr)`. Recognized only to be skipped.
	if code[i] == '(' {
		stmt.Form = FormDynamic
		next := skipBalancedParens(code, i)
		stmt.End = next
		return stmt, next, true
	}

	if hasWordAt(code, i, "type") {
		j := skipSpacesAndComments(code, i+4)
		// `import type X` / `import type {X}` but not `import type from 'm'`.
		if j < n && (code[j] == '{' || (isIdentifierChar(code[j]) && !hasWordAt(code, j, "from"))) {
			stmt.TypeOnly = true
			i = j
		}
	}

	switch {
	case code[i] == '\'' || code[i] == '"':
		stmt.Form = FormSideEffect
		value, next, ok := parseStringLiteral(code, i)
		if !ok {
			return stmt, next, false
		}
		stmt.Module = value
		stmt.End = statementEnd(code, next)
		return stmt, stmt.End, true

	case code[i] == '{':
		stmt.Form = FormNamed
		stmt.Named, i = parseSpecifiers(code, i)

	case code[i] == '*':
		stmt.Form = FormNamespace
		i = skipSpacesAndComments(code, i+1)
		if hasWordAt(code, i, "as") {
			i = skipSpacesAndComments(code, i+2)
			stmt.Namespace, i = parseIdentifier(code, i)
		}

	case isIdentifierChar(code[i]):
		stmt.Form = FormDefault
		stmt.Default, i = parseIdentifier(code, i)
		i = skipSpacesAndComments(code, i)
		if i < n && code[i] == ',' {
			i = skipSpacesAndComments(code, i+1)
			if i < n && code[i] == '{' {
				stmt.Form = FormMixed
				stmt.Named, i = parseSpecifiers(code, i)
			} else if i < n && code[i] == '*' {
				stmt.Form = FormNamespace
				i = skipSpacesAndComments(code, i+1)
				if hasWordAt(code, i, "as") {
					i = skipSpacesAndComments(code, i+2)
					stmt.Namespace, i = parseIdentifier(code, i)
				}
			}
		}

	default:
		return stmt, i + 1, false
	}

	i = skipSpacesAndComments(code, i)
	if !hasWordAt(code, i, "from") {
		// Malformed or not actually an import declaration; leave the
		// statement unmatched but keep scanning after it.
		stmt.End = i
		return stmt, i, false
	}
	i = skipSpacesAndComments(code, i+len("from"))
	if i >= n || (code[i] != '\'' && code[i] != '"') {
		// Computed specifier: record the statement with no module so the
		// rewriter treats it as non-matching.
		stmt.End = i
		return stmt, i, true
	}

	value, next, ok := parseStringLiteral(code, i)
	if !ok {
		return stmt, next, false
	}
	stmt.Module = value
	stmt.End = statementEnd(code, next)
	return stmt, stmt.End, true
}
