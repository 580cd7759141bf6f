/*
Package pipeline provides ready-made configuration kinds for defining
a CI server project tree: projects, build configurations, VCS roots,
triggers, build steps and build features.

A definition is one expression of nested constructors:

	p := pipeline.NewProject(construct.Props{"id": "Acme"}, func(p *pipeline.Project) {
		root := pipeline.NewVcsRoot(p, construct.Props{
			"id":   "Acme_Main",
			"url":  "https://example.com/acme.git",
			"auth": pipeline.AccessToken{Token: "credentialsJSON:token-id"},
		})
		pipeline.NewBuildType(p, construct.Props{"id": "Acme_Build"}, func(bt *pipeline.BuildType) {
			bt.AttachVcsRoot(root, "")
			pipeline.NewScriptStep(bt, construct.Props{"name": "build", "script": "make"})
			pipeline.NewVcsTrigger(bt, nil)
		})
	})
	docs := p.Serialize()

Serialize returns a mapping from relative output path (beneath the
fixed ".teamcity" directory) to XML document; persisting the documents
is the caller's concern.
*/
package pipeline
