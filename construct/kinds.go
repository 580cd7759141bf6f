package construct

import (
	"sort"

	"github.com/andaru/ciconf/builderr"
)

// Factory creates a construct of one registered kind beneath parent.
type Factory func(parent *Construct, props Props) Node

// kinds is the capability table mapping a kind name to its factory.
// Leaf packages register their kinds at init time instead of
// retroactively extending parent types; parents create children of
// kinds they have no compile-time knowledge of via NewKind.
var kinds = map[string]Factory{}

// RegisterKind adds a kind factory to the table. Registering a name
// twice returns a duplicate-kind error.
func RegisterKind(kind string, f Factory) error {
	if _, ok := kinds[kind]; ok {
		return builderr.DuplicateKind(kind, builderr.WithOp("construct.RegisterKind"))
	}
	kinds[kind] = f
	return nil
}

// MustRegisterKind is RegisterKind, panicking on duplicate
// registration. Intended for init-time registration of built-in kinds.
func MustRegisterKind(kind string, f Factory) {
	if err := RegisterKind(kind, f); err != nil {
		builderr.Raise(err.(*builderr.Error))
	}
}

// NewKind creates a construct of a registered kind beneath parent,
// returning an unknown-kind error if nothing registered the name.
func NewKind(kind string, parent *Construct, props Props) (Node, error) {
	f, ok := kinds[kind]
	if !ok {
		return nil, builderr.UnknownKind(kind, builderr.WithOp("construct.NewKind"))
	}
	return f(parent, props), nil
}

// Kinds returns the registered kind names, sorted.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
