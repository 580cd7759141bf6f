package pipeline

import (
	"github.com/google/uuid"

	"github.com/andaru/ciconf/construct"
	"github.com/andaru/ciconf/xmltree"
)

// BuildType is one build configuration of a project, owning ordered
// collections of steps, triggers and features.
type BuildType struct {
	construct.Construct

	id          string
	name        string
	description string
	uuid        string

	params   paramSet
	vcsRefs  []vcsEntryRef
	steps    []Step
	triggers []Trigger
	features []*BuildFeature
}

type vcsEntryRef struct {
	rootID        string
	checkoutRules string
}

// NewBuildType returns a new build configuration beneath parent.
//
// Required props: "id". Optional: "name" (defaults to the id),
// "description", "uuid" (generated when absent).
func NewBuildType(parent *Project, props construct.Props, build ...func(*BuildType)) *BuildType {
	bt := &BuildType{Construct: construct.New(&parent.Construct, props)}
	bt.BindOwner(bt)
	bt.id = requireStringProp("pipeline.NewBuildType", props, "id")
	bt.name = stringProp(props, "name", bt.id)
	bt.description = stringProp(props, "description", "")
	bt.uuid = stringProp(props, "uuid", "")
	if bt.uuid == "" {
		bt.uuid = uuid.NewString()
	}
	parent.buildTypes = append(parent.buildTypes, bt)
	for _, f := range build {
		f(bt)
	}
	return bt
}

// ID returns the build configuration identifier.
func (bt *BuildType) ID() string { return bt.id }

// UUID returns the build configuration's stable identity attribute.
func (bt *BuildType) UUID() string { return bt.uuid }

// AddParam appends one configuration parameter, returning bt.
func (bt *BuildType) AddParam(name, value string) *BuildType {
	bt.params.add(name, value)
	return bt
}

// AttachVcsRoot references a VCS root from this build configuration,
// optionally restricted by checkout rules.
func (bt *BuildType) AttachVcsRoot(root *VcsRoot, checkoutRules string) *BuildType {
	bt.vcsRefs = append(bt.vcsRefs, vcsEntryRef{rootID: root.ID(), checkoutRules: checkoutRules})
	return bt
}

// Steps returns the build steps in construction order.
func (bt *BuildType) Steps() []Step { return bt.steps }

// Triggers returns the triggers in construction order.
func (bt *BuildType) Triggers() []Trigger { return bt.triggers }

// Features returns the build features in construction order.
func (bt *BuildType) Features() []*BuildFeature { return bt.features }

// AddKind creates a child construct of a registered kind (see
// construct.RegisterKind) beneath this build configuration. It is the
// extension point for kinds this package has no compile-time knowledge
// of.
func (bt *BuildType) AddKind(kind string, props construct.Props) (construct.Node, error) {
	return construct.NewKind(kind, &bt.Construct, props)
}

// Serialize renders the <build-type> element. The settings section is
// assembled first from the typed fields, then every fragment callback
// registered by descendant kinds runs in registration order, each
// appending its section exactly once.
func (bt *BuildType) Serialize() *xmltree.Element {
	el := xmltree.NewElement("build-type")
	el.Attribute("id", bt.id)
	el.Attribute("uuid", bt.uuid)
	el.Node("name", bt.name)
	if bt.description != "" {
		el.Node("description", bt.description)
	}
	el.Node("settings", func(settings *xmltree.Element) {
		bt.params.serializeInto(settings)
		if len(bt.vcsRefs) > 0 {
			settings.Node("vcs-settings", func(vcs *xmltree.Element) {
				for _, ref := range bt.vcsRefs {
					entry := vcs.Node("vcs-entry-ref", xmltree.Attrs{"root-id": ref.rootID})
					if ref.checkoutRules != "" {
						entry.Node("checkout-rule", xmltree.Attrs{"rule": ref.checkoutRules})
					}
				}
			})
		}
		bt.ApplyFragments(settings)
	})
	return el
}
