package pipeline

import (
	"sort"

	"github.com/andaru/ciconf/builderr"
	"github.com/andaru/ciconf/construct"
	"github.com/andaru/ciconf/xmltree"
)

// OutputRoot is the fixed top-level directory every output path begins
// with.
const OutputRoot = ".teamcity"

// Param is one name/value configuration parameter.
type Param struct {
	Name  string
	Value string
}

// paramSet is an ordered, append-only parameter collection shared by
// the kinds that carry <parameters> sections.
type paramSet struct {
	params []Param
}

func (s *paramSet) add(name, value string) {
	s.params = append(s.params, Param{Name: name, Value: value})
}

// serializeInto appends a <parameters> section to parent when the set
// is non-empty.
func (s *paramSet) serializeInto(parent *xmltree.Element) {
	if len(s.params) == 0 {
		return
	}
	parent.Node("parameters", func(el *xmltree.Element) {
		for _, p := range s.params {
			el.Node("param", xmltree.Attrs{"name": p.Name, "value": p.Value})
		}
	})
}

// paramElements renders one <param/> per entry into parent, used for
// the parameter blocks of triggers, steps and features.
func paramElements(parent *xmltree.Element, params []Param) {
	for _, p := range params {
		parent.Node("param", xmltree.Attrs{"name": p.Name, "value": p.Value})
	}
}

// sortedParams flattens a property map into Params in lexical name
// order, for kinds configured with free-form parameter maps.
func sortedParams(m map[string]string) []Param {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]Param, 0, len(m))
	for _, k := range names {
		out = append(out, Param{Name: k, Value: m[k]})
	}
	return out
}

// requireStringProp reads a mandatory string property, panicking with
// a bad-argument error when missing or of the wrong type.
func requireStringProp(op string, props construct.Props, key string) string {
	v, ok := props[key].(string)
	if !ok || v == "" {
		builderr.Raise(builderr.BadArgument(
			builderr.WithOp(op),
			builderr.WithDetail("missing required string property "+key)))
	}
	return v
}

func stringProp(props construct.Props, key, fallback string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return fallback
}

func intProp(props construct.Props, key string, fallback int) int {
	if v, ok := props[key].(int); ok {
		return v
	}
	return fallback
}
