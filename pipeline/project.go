package pipeline

import (
	"github.com/google/uuid"

	"github.com/andaru/ciconf/construct"
	"github.com/andaru/ciconf/xmltree"
)

// Fragment registry keys, one per contributing kind.
const (
	fragmentTriggers          = "build-triggers"
	fragmentSteps             = "build-runners"
	fragmentFeatures          = "build-extensions"
	fragmentVersionedSettings = "versioned-settings"
)

// Project is a CI server project: the composite construct owning build
// configurations, VCS roots and nested projects. The top-level project
// is the tree root and the place all output documents aggregate.
type Project struct {
	construct.Construct

	id          string
	name        string
	description string
	uuid        string

	params      paramSet
	buildTypes  []*BuildType
	vcsRoots    []*VcsRoot
	subprojects []*Project

	versionedSettings *VersionedSettings
}

// NewProject returns a new top-level project.
//
// Required props: "id". Optional: "name" (defaults to the id),
// "description", "uuid" (generated when absent). Builder callbacks run
// before NewProject returns, so the finished value owns its whole
// subtree.
func NewProject(props construct.Props, build ...func(*Project)) *Project {
	p := newProject(nil, props)
	for _, f := range build {
		f(p)
	}
	return p
}

// NewSubproject returns a new project nested beneath parent.
func NewSubproject(parent *Project, props construct.Props, build ...func(*Project)) *Project {
	p := newProject(parent, props)
	parent.subprojects = append(parent.subprojects, p)
	for _, f := range build {
		f(p)
	}
	return p
}

func newProject(parent *Project, props construct.Props) *Project {
	var pc *construct.Construct
	if parent != nil {
		pc = &parent.Construct
	}
	p := &Project{Construct: construct.New(pc, props)}
	p.BindOwner(p)
	p.id = requireStringProp("pipeline.NewProject", props, "id")
	p.name = stringProp(props, "name", p.id)
	p.description = stringProp(props, "description", "")
	p.uuid = stringProp(props, "uuid", "")
	if p.uuid == "" {
		p.uuid = uuid.NewString()
	}
	return p
}

// ID returns the project identifier.
func (p *Project) ID() string { return p.id }

// UUID returns the project's stable identity attribute.
func (p *Project) UUID() string { return p.uuid }

// AddParam appends one configuration parameter, returning p.
func (p *Project) AddParam(name, value string) *Project {
	p.params.add(name, value)
	return p
}

// BuildTypes returns the attached build configurations in attachment
// order.
func (p *Project) BuildTypes() []*BuildType { return p.buildTypes }

// VcsRoots returns the attached VCS roots in attachment order.
func (p *Project) VcsRoots() []*VcsRoot { return p.vcsRoots }

// Subprojects returns the nested projects in attachment order.
func (p *Project) Subprojects() []*Project { return p.subprojects }

// Serialize renders the project tree, registering every document on
// the tree root (first proposal per path wins) and returning the
// root's path→document mapping. Writing the documents out is the
// caller's concern.
func (p *Project) Serialize() map[string]*xmltree.Document {
	root := p.Root()

	doc := xmltree.NewDocument()
	doc.Node("project", xmltree.Attrs{"id": p.id, "uuid": p.uuid}, func(el *xmltree.Element) {
		el.Node("name", p.name)
		if p.description != "" {
			el.Node("description", p.description)
		}
		p.params.serializeInto(el)
		p.ApplyFragments(el)
	})
	root.RegisterDocument(p.dir()+"/project-config.xml", doc)

	for _, vr := range p.vcsRoots {
		d := xmltree.NewDocument()
		d.Node(vr.Serialize())
		root.RegisterDocument(p.dir()+"/vcsRoots/"+vr.ID()+".xml", d)
	}
	for _, bt := range p.buildTypes {
		d := xmltree.NewDocument()
		d.Node(bt.Serialize())
		root.RegisterDocument(p.dir()+"/buildTypes/"+bt.ID()+".xml", d)
	}
	for _, sp := range p.subprojects {
		sp.Serialize()
	}
	return root.Documents()
}

func (p *Project) dir() string { return OutputRoot + "/" + p.id }
