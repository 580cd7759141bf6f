package xmltree

import "strings"

const indentUnit = "  "

type tokKind int

const (
	tokText tokKind = iota
	tokOpen
	tokClose
	tokSelfClose
	tokSpecial // comment or CDATA section
)

// indentXML reformats a compact rendering with one tag per line and
// 2-space indentation. Text content stays attached to the preceding
// token, so <name>content</name> remains a single line and content
// following children keeps its exact placement.
//
// The scan treats every "<" outside a comment or CDATA section as a
// tag start; raw content containing markup will confuse it, which is
// one more reason such content belongs in CDATA. Attribute values are
// safe: tags are scanned quote-aware, so a ">" inside a value (legal
// under the double-quote-only escaping contract) does not end the tag.
func indentXML(s string) string {
	var b strings.Builder
	depth := 0
	lastText := false

	for i := 0; i < len(s); {
		if s[i] != '<' {
			j := strings.IndexByte(s[i:], '<')
			if j < 0 {
				b.WriteString(s[i:])
				i = len(s)
			} else {
				b.WriteString(s[i : i+j])
				i += j
			}
			lastText = true
			continue
		}

		tok, kind, next := scanTag(s, i)
		i = next
		switch kind {
		case tokOpen:
			if b.Len() > 0 {
				writeIndent(&b, depth)
			}
			b.WriteString(tok)
			depth++
			lastText = false
		case tokSelfClose, tokSpecial:
			if b.Len() > 0 {
				writeIndent(&b, depth)
			}
			b.WriteString(tok)
			lastText = false
		case tokClose:
			if depth > 0 {
				depth--
			}
			if !lastText && b.Len() > 0 {
				writeIndent(&b, depth)
			}
			b.WriteString(tok)
			lastText = false
		default:
			b.WriteString(tok)
			lastText = true
		}
	}
	return b.String()
}

func writeIndent(b *strings.Builder, depth int) {
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indentUnit)
	}
}

func scanTag(s string, i int) (tok string, kind tokKind, next int) {
	if strings.HasPrefix(s[i:], "<!--") {
		if j := strings.Index(s[i:], "-->"); j >= 0 {
			return s[i : i+j+3], tokSpecial, i + j + 3
		}
		return s[i:], tokSpecial, len(s)
	}
	if strings.HasPrefix(s[i:], "<![CDATA[") {
		if j := strings.Index(s[i:], "]]>"); j >= 0 {
			return s[i : i+j+3], tokSpecial, i + j + 3
		}
		return s[i:], tokSpecial, len(s)
	}

	// find the tag end, ignoring ">" inside double-quoted attribute
	// values (values cannot contain a literal double quote; it renders
	// as &quot;)
	end := -1
	inQuote := false
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '"':
			inQuote = !inQuote
		case '>':
			if !inQuote {
				end = j + 1
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		// unterminated tag, emit the remainder verbatim
		return s[i:], tokText, len(s)
	}
	tok = s[i:end]
	switch {
	case strings.HasPrefix(tok, "</"):
		kind = tokClose
	case strings.HasSuffix(tok, "/>"):
		kind = tokSelfClose
	default:
		kind = tokOpen
	}
	return tok, kind, end
}
