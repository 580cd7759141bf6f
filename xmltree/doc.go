/*
Package xmltree implements the XML document model used for rendered CI
server configuration.

A Document owns at most one root Element. Elements are created with the
overloaded Node call, which accepts a name, optional attributes,
optional text content and an optional builder callback in one
expression:

	doc := xmltree.NewDocument()
	doc.Node("project", xmltree.Attrs{"id": "Main"}, func(p *xmltree.Element) {
		p.Node("name", "Main project")
		p.Comment("generated")
	})

Rendering is deliberately minimal: attribute values have only the
double quote escaped (as &quot;) and text content is emitted raw. That
is the contract, not an oversight; content carrying markup-significant
characters belongs in a CDATA section.
*/
package xmltree
