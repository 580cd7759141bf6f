package pipeline

import (
	"github.com/andaru/ciconf/construct"
	"github.com/andaru/ciconf/xmltree"
)

// Step is one build step of a build configuration. Step order in the
// rendered <build-runners> section is construction order.
type Step interface {
	construct.Node
	runnerType() string
}

func registerStepFragment(bt *BuildType) {
	bt.RegisterFragment(fragmentSteps, func(settings *xmltree.Element) {
		settings.Node("build-runners", func(wrap *xmltree.Element) {
			for _, s := range bt.steps {
				wrap.Node(s.Serialize())
			}
		})
	})
}

// ScriptStep runs a shell script on the build agent.
type ScriptStep struct {
	construct.Construct

	name       string
	script     string
	workingDir string
}

// NewScriptStep returns a new script step on bt.
//
// Required props: "name", "script". Optional: "workingDir". The script
// body is rendered inside a CDATA section, so it may carry any markup.
func NewScriptStep(bt *BuildType, props construct.Props) *ScriptStep {
	s := &ScriptStep{Construct: construct.New(&bt.Construct, props)}
	s.BindOwner(s)
	s.name = requireStringProp("pipeline.NewScriptStep", props, "name")
	s.script = requireStringProp("pipeline.NewScriptStep", props, "script")
	s.workingDir = stringProp(props, "workingDir", "")
	bt.steps = append(bt.steps, s)
	registerStepFragment(bt)
	return s
}

func (s *ScriptStep) runnerType() string { return "simpleRunner" }

// Serialize renders the <runner> element.
func (s *ScriptStep) Serialize() *xmltree.Element {
	el := xmltree.NewElement("runner")
	el.Attribute("name", s.name)
	el.Attribute("type", s.runnerType())
	el.Node("parameters", func(p *xmltree.Element) {
		if s.workingDir != "" {
			p.Node("param", xmltree.Attrs{"name": "teamcity.build.workingDir", "value": s.workingDir})
		}
		p.Node("param", xmltree.Attrs{"name": "use.custom.script", "value": "true"})
		p.Node("param", xmltree.Attrs{"name": "script.content"}, func(content *xmltree.Element) {
			content.CDATA(s.script)
		})
	})
	return el
}

// DockerCommand runs one docker command on the build agent.
type DockerCommand struct {
	construct.Construct

	name    string
	image   string
	command string
}

// NewDockerCommand returns a new docker command step on bt.
//
// Required props: "name", "image". Optional: "command" (defaults to
// "build").
func NewDockerCommand(bt *BuildType, props construct.Props) *DockerCommand {
	s := &DockerCommand{Construct: construct.New(&bt.Construct, props)}
	s.BindOwner(s)
	s.name = requireStringProp("pipeline.NewDockerCommand", props, "name")
	s.image = requireStringProp("pipeline.NewDockerCommand", props, "image")
	s.command = stringProp(props, "command", "build")
	bt.steps = append(bt.steps, s)
	registerStepFragment(bt)
	return s
}

func (s *DockerCommand) runnerType() string { return "DockerCommand" }

// Serialize renders the <runner> element.
func (s *DockerCommand) Serialize() *xmltree.Element {
	el := xmltree.NewElement("runner")
	el.Attribute("name", s.name)
	el.Attribute("type", s.runnerType())
	el.Node("parameters", func(p *xmltree.Element) {
		paramElements(p, []Param{
			{Name: "docker.command.type", Value: s.command},
			{Name: "docker.image.namesAndTags", Value: s.image},
		})
	})
	return el
}
