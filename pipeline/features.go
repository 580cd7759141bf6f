package pipeline

import (
	"github.com/andaru/ciconf/builderr"
	"github.com/andaru/ciconf/construct"
	"github.com/andaru/ciconf/xmltree"
)

// BuildFeature is a generic build-configuration extension identified
// by its server-side type name, with free-form parameters.
type BuildFeature struct {
	construct.Construct

	ftype  string
	params []Param
}

// NewBuildFeature returns a new build feature on bt.
//
// Required props: "type". Optional: "parameters" as map[string]string,
// rendered in lexical name order.
func NewBuildFeature(bt *BuildType, props construct.Props) *BuildFeature {
	f := &BuildFeature{Construct: construct.New(&bt.Construct, props)}
	f.BindOwner(f)
	f.ftype = requireStringProp("pipeline.NewBuildFeature", props, "type")
	if m, ok := props["parameters"].(map[string]string); ok {
		f.params = sortedParams(m)
	}
	bt.features = append(bt.features, f)
	bt.RegisterFragment(fragmentFeatures, func(settings *xmltree.Element) {
		settings.Node("build-extensions", func(wrap *xmltree.Element) {
			for _, bf := range bt.features {
				wrap.Node(bf.Serialize())
			}
		})
	})
	return f
}

// Serialize renders the <extension> element.
func (f *BuildFeature) Serialize() *xmltree.Element {
	el := xmltree.NewElement("extension")
	el.Attribute("type", f.ftype)
	if len(f.params) > 0 {
		el.Node("parameters", func(p *xmltree.Element) { paramElements(p, f.params) })
	}
	return el
}

// VersionedSettings stores the project's own settings in a VCS root.
// A project permits at most one; constructing a second panics with a
// singleton-violation error.
type VersionedSettings struct {
	construct.Construct

	rootID string
	mode   string
}

// NewVersionedSettings returns the versioned-settings extension of
// project, storing settings in root.
//
// Optional props: "mode" (defaults to "useFromVCS").
func NewVersionedSettings(project *Project, root *VcsRoot, props construct.Props) *VersionedSettings {
	if project.versionedSettings != nil {
		builderr.Raise(builderr.Singleton(
			builderr.WithOp("pipeline.NewVersionedSettings"),
			builderr.WithDetail("project "+project.ID()+" already has versioned settings")))
	}
	vs := &VersionedSettings{Construct: construct.New(&project.Construct, props)}
	vs.BindOwner(vs)
	vs.rootID = root.ID()
	vs.mode = stringProp(props, "mode", "useFromVCS")
	project.versionedSettings = vs
	project.RegisterFragment(fragmentVersionedSettings, func(el *xmltree.Element) {
		el.Node(vs.Serialize())
	})
	return vs
}

// Serialize renders the <versioned-settings> element.
func (vs *VersionedSettings) Serialize() *xmltree.Element {
	el := xmltree.NewElement("versioned-settings")
	el.Attribute("root-id", vs.rootID)
	el.Attribute("mode", vs.mode)
	return el
}
