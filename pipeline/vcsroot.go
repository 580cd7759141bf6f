package pipeline

import (
	"github.com/andaru/ciconf/construct"
	"github.com/andaru/ciconf/xmltree"
)

// Auth is the credential variant of a VCS root. Exactly one variant is
// present per root; the variants are a closed set, so an invalid
// combination of credential fields is unrepresentable.
type Auth interface {
	authParams() []Param
}

// Anonymous is unauthenticated VCS access.
type Anonymous struct{}

func (Anonymous) authParams() []Param {
	return []Param{{Name: "authMethod", Value: "ANONYMOUS"}}
}

// UserPassword authenticates with a username and password reference.
type UserPassword struct {
	Username string
	Password string
}

func (a UserPassword) authParams() []Param {
	return []Param{
		{Name: "authMethod", Value: "PASSWORD"},
		{Name: "username", Value: a.Username},
		{Name: "secure:password", Value: a.Password},
	}
}

// AccessToken authenticates with a personal access token reference.
type AccessToken struct {
	Token string
}

func (a AccessToken) authParams() []Param {
	return []Param{
		{Name: "authMethod", Value: "ACCESS_TOKEN"},
		{Name: "secure:accessToken", Value: a.Token},
	}
}

// UploadedKey authenticates with an SSH key uploaded to the server.
type UploadedKey struct {
	Username string
	KeyName  string
}

func (a UploadedKey) authParams() []Param {
	return []Param{
		{Name: "authMethod", Value: "TEAMCITY_SSH_KEY"},
		{Name: "username", Value: a.Username},
		{Name: "teamcitySshKey", Value: a.KeyName},
	}
}

// VcsRoot is a git version control root attached to a project.
type VcsRoot struct {
	construct.Construct

	id         string
	name       string
	url        string
	branch     string
	branchSpec string
	auth       Auth
}

// NewVcsRoot returns a new VCS root beneath parent.
//
// Required props: "id", "url". Optional: "name" (defaults to the id),
// "branch" (defaults to refs/heads/main), "branchSpec", and "auth"
// carrying one Auth variant (defaults to Anonymous).
func NewVcsRoot(parent *Project, props construct.Props) *VcsRoot {
	vr := &VcsRoot{Construct: construct.New(&parent.Construct, props)}
	vr.BindOwner(vr)
	vr.id = requireStringProp("pipeline.NewVcsRoot", props, "id")
	vr.url = requireStringProp("pipeline.NewVcsRoot", props, "url")
	vr.name = stringProp(props, "name", vr.id)
	vr.branch = stringProp(props, "branch", "refs/heads/main")
	vr.branchSpec = stringProp(props, "branchSpec", "")
	vr.auth = Anonymous{}
	if a, ok := props["auth"].(Auth); ok {
		vr.auth = a
	}
	parent.vcsRoots = append(parent.vcsRoots, vr)
	return vr
}

// ID returns the VCS root identifier.
func (vr *VcsRoot) ID() string { return vr.id }

// Serialize renders the <vcs-root> element.
func (vr *VcsRoot) Serialize() *xmltree.Element {
	el := xmltree.NewElement("vcs-root")
	el.Attribute("id", vr.id)
	el.Attribute("type", "jetbrains.git")
	el.Node("name", vr.name)
	params := []Param{
		{Name: "url", Value: vr.url},
		{Name: "branch", Value: vr.branch},
	}
	if vr.branchSpec != "" {
		params = append(params, Param{Name: "teamcity:branchSpec", Value: vr.branchSpec})
	}
	params = append(params, vr.auth.authParams()...)
	paramElements(el, params)
	return el
}
