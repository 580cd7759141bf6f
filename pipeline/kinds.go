package pipeline

import (
	"github.com/andaru/ciconf/builderr"
	"github.com/andaru/ciconf/construct"
)

// The built-in kinds register themselves in the construct kind table,
// so generic definition code (and custom kinds following the same
// pattern) can create them by name via BuildType.AddKind.
func init() {
	construct.MustRegisterKind("vcsTrigger", buildTypeKind("vcsTrigger",
		func(bt *BuildType, props construct.Props) construct.Node { return NewVcsTrigger(bt, props) }))
	construct.MustRegisterKind("schedulingTrigger", buildTypeKind("schedulingTrigger",
		func(bt *BuildType, props construct.Props) construct.Node { return NewScheduleTrigger(bt, props) }))
	construct.MustRegisterKind("simpleRunner", buildTypeKind("simpleRunner",
		func(bt *BuildType, props construct.Props) construct.Node { return NewScriptStep(bt, props) }))
	construct.MustRegisterKind("DockerCommand", buildTypeKind("DockerCommand",
		func(bt *BuildType, props construct.Props) construct.Node { return NewDockerCommand(bt, props) }))
	construct.MustRegisterKind("buildFeature", buildTypeKind("buildFeature",
		func(bt *BuildType, props construct.Props) construct.Node { return NewBuildFeature(bt, props) }))
}

// buildTypeKind adapts a BuildType-scoped constructor to the generic
// factory signature, recovering the concrete parent from the construct
// owner binding.
func buildTypeKind(kind string, f func(*BuildType, construct.Props) construct.Node) construct.Factory {
	return func(parent *construct.Construct, props construct.Props) construct.Node {
		bt, ok := parent.Owner().(*BuildType)
		if !ok {
			builderr.Raise(builderr.BadArgument(
				builderr.WithOp("pipeline: kind "+kind),
				builderr.WithDetail("parent is not a build configuration")))
		}
		return f(bt, props)
	}
}
