package scheme

import (
	"strconv"
	"strings"
)

// symbolAlphabet holds the characters that may appear in an unescaped
// symbol, mirroring the tokenizer's own symbol-inner alphabet.
const symbolAlphabet = "!$%&*/:<=>?@^_~+-."

func needsEscape(name string) bool {
	if name == "" {
		return true
	}
	for _, c := range name {
		if c >= 'a' && c <= 'z' {
			continue
		}
		if c >= '0' && c <= '9' {
			continue
		}
		if strings.ContainsRune(symbolAlphabet, c) {
			continue
		}
		return true
	}
	return false
}

// formatFloat renders an inexact number so it is never confused with an
// Integer in printed form, the way Python's float repr always keeps a
// decimal point (1.0, not 1) even though the original interpreter's
// int/float split is exactly Go's Integer/Float split.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += "."
	}
	return s
}

func escapeSymbol(name string) string {
	var b strings.Builder
	b.WriteByte('|')
	for _, c := range name {
		if c == '|' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	b.WriteByte('|')
	return b.String()
}

// Write renders v in the printed form spec.md §6 describes: pairs in
// list notation (with a dotted tail when improper), #t/#f for booleans,
// escaped |...| symbols when needed, and opaque tags for closures and
// primitives. Unspecified values are never printed at top level; callers
// that reach this function with one anyway get the empty string.
func Write(v Value) string {
	switch t := v.(type) {
	case unspecifiedType:
		return ""
	case nilType:
		return "()"
	case Boolean:
		if t {
			return "#t"
		}
		return "#f"
	case Integer:
		return strconv.FormatInt(int64(t), 10)
	case Float:
		return formatFloat(float64(t))
	case Symbol:
		name := string(t)
		if needsEscape(name) {
			return escapeSymbol(name)
		}
		return name
	case eofType:
		return "#[eof]"
	case *Primitive:
		return "#[primitive " + t.Name + "]"
	case *Closure:
		return "#[closure]"
	case *Pair:
		return writePair(t)
	default:
		return "#[unknown]"
	}
}

func writePair(p *Pair) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(Write(p.Car))
	rest := p.Cdr
	for {
		switch t := rest.(type) {
		case nilType:
			b.WriteByte(')')
			return b.String()
		case *Pair:
			b.WriteByte(' ')
			b.WriteString(Write(t.Car))
			rest = t.Cdr
		default:
			b.WriteString(" . ")
			b.WriteString(Write(rest))
			b.WriteByte(')')
			return b.String()
		}
	}
}
