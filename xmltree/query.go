package xmltree

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

// Select renders the document and evaluates an XPath expression over
// the result, returning the matching nodes. It exists for structural
// assertions over produced configuration; an empty document matches
// nothing.
func (d *Document) Select(expr string) ([]*xmlquery.Node, error) {
	if d.root == nil {
		return nil, nil
	}
	return selectIn(d.String(), expr)
}

// Select renders the element subtree and evaluates an XPath expression
// over the result, returning the matching nodes.
func (e *Element) Select(expr string) ([]*xmlquery.Node, error) {
	return selectIn(e.String(), expr)
}

func selectIn(doc, expr string) ([]*xmlquery.Node, error) {
	xp, err := xpath.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling xpath %q", expr)
	}
	top, err := xmlquery.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, errors.Wrap(err, "reparsing rendered document")
	}
	return xmlquery.QuerySelectorAll(top, xp), nil
}
