package pipeline

import (
	"strconv"

	"github.com/andaru/ciconf/construct"
	"github.com/andaru/ciconf/xmltree"
)

// Trigger is one build trigger of a build configuration.
type Trigger interface {
	construct.Node
	triggerType() string
}

// registerTriggerFragment registers the single <build-triggers>
// section on the owning build configuration. Every trigger constructor
// calls it; only the first registration per build configuration takes
// effect, and the callback iterates the live trigger collection, so
// the section renders once and picks up all siblings.
func registerTriggerFragment(bt *BuildType) {
	bt.RegisterFragment(fragmentTriggers, func(settings *xmltree.Element) {
		settings.Node("build-triggers", func(wrap *xmltree.Element) {
			for _, t := range bt.triggers {
				wrap.Node(t.Serialize())
			}
		})
	})
}

// VcsTrigger starts a build on detected VCS changes.
type VcsTrigger struct {
	construct.Construct

	quietPeriod  int
	branchFilter string
	rules        string
}

// NewVcsTrigger returns a new VCS trigger on bt.
//
// Optional props: "quietPeriod" (seconds, int), "branchFilter",
// "rules".
func NewVcsTrigger(bt *BuildType, props construct.Props) *VcsTrigger {
	t := &VcsTrigger{Construct: construct.New(&bt.Construct, props)}
	t.BindOwner(t)
	t.quietPeriod = intProp(props, "quietPeriod", 0)
	t.branchFilter = stringProp(props, "branchFilter", "")
	t.rules = stringProp(props, "rules", "")
	bt.triggers = append(bt.triggers, t)
	registerTriggerFragment(bt)
	return t
}

func (t *VcsTrigger) triggerType() string { return "vcsTrigger" }

// Serialize renders the <build-trigger> element.
func (t *VcsTrigger) Serialize() *xmltree.Element {
	el := xmltree.NewElement("build-trigger")
	el.Attribute("type", t.triggerType())
	var params []Param
	if t.quietPeriod > 0 {
		params = append(params,
			Param{Name: "quietPeriodMode", Value: "USE_CUSTOM"},
			Param{Name: "quietPeriod", Value: strconv.Itoa(t.quietPeriod)})
	}
	if t.branchFilter != "" {
		params = append(params, Param{Name: "branchFilter", Value: t.branchFilter})
	}
	if t.rules != "" {
		params = append(params, Param{Name: "triggerRules", Value: t.rules})
	}
	if len(params) > 0 {
		el.Node("parameters", func(p *xmltree.Element) { paramElements(p, params) })
	}
	return el
}

// ScheduleTrigger starts builds on a cron schedule.
type ScheduleTrigger struct {
	construct.Construct

	cron     string
	timezone string
	rules    string
}

// NewScheduleTrigger returns a new scheduling trigger on bt.
//
// Required props: "cron". Optional: "timezone" (defaults to UTC),
// "rules".
func NewScheduleTrigger(bt *BuildType, props construct.Props) *ScheduleTrigger {
	t := &ScheduleTrigger{Construct: construct.New(&bt.Construct, props)}
	t.BindOwner(t)
	t.cron = requireStringProp("pipeline.NewScheduleTrigger", props, "cron")
	t.timezone = stringProp(props, "timezone", "UTC")
	t.rules = stringProp(props, "rules", "")
	bt.triggers = append(bt.triggers, t)
	registerTriggerFragment(bt)
	return t
}

func (t *ScheduleTrigger) triggerType() string { return "schedulingTrigger" }

// Serialize renders the <build-trigger> element.
func (t *ScheduleTrigger) Serialize() *xmltree.Element {
	el := xmltree.NewElement("build-trigger")
	el.Attribute("type", t.triggerType())
	params := []Param{
		{Name: "schedulingPolicy", Value: "cron"},
		{Name: "cronExpression", Value: t.cron},
		{Name: "timezone", Value: t.timezone},
	}
	if t.rules != "" {
		params = append(params, Param{Name: "triggerRules", Value: t.rules})
	}
	el.Node("parameters", func(p *xmltree.Element) { paramElements(p, params) })
	return el
}
