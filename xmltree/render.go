package xmltree

import "strings"

// String renders the element and its subtree in compact form.
//
// Comment nodes render as <!-- text -->, CDATA nodes as
// <![CDATA[text]]>. Every other element renders an open tag carrying
// its attributes in first-set order, then either a self-closing "/>"
// when the element has neither children nor content, or ">" followed
// by each child in order, the raw text content, and the closing tag.
func (e *Element) String() string {
	var b strings.Builder
	e.encode(&b)
	return b.String()
}

// Pretty renders the element and its subtree with 2-space indentation.
// The compact rendering is produced first and reformatted in a single
// post-processing pass; nested elements are never pretty-printed
// individually.
func (e *Element) Pretty() string {
	return indentXML(e.String())
}

func (e *Element) encode(b *strings.Builder) {
	text := ""
	if e.content != nil {
		text = *e.content
	}

	switch e.name {
	case commentName:
		b.WriteString("<!-- ")
		b.WriteString(text)
		b.WriteString(" -->")
		return
	case cdataName:
		b.WriteString("<![CDATA[")
		b.WriteString(text)
		b.WriteString("]]>")
		return
	}

	b.WriteByte('<')
	b.WriteString(e.name)
	for _, k := range e.order {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(e.attrs[k]))
		b.WriteByte('"')
	}

	if len(e.children) == 0 && e.content == nil {
		b.WriteString("/>")
		return
	}

	b.WriteByte('>')
	for _, c := range e.children {
		c.encode(b)
	}
	b.WriteString(text)
	b.WriteString("</")
	b.WriteString(e.name)
	b.WriteByte('>')
}

// escapeAttr escapes double quotes only. Other markup-significant
// characters pass through unchanged; that is the documented contract.
func escapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}
