/*
Package ciconf is a set of libraries for defining CI server project
configuration in Go and serializing it to the server's XML settings
layout.

A configuration is an in-memory tree of constructs: a Project owning
build configurations, VCS roots and nested projects, each declared
with nested constructor calls and builder callbacks. Serializing the
root yields a mapping from relative output path to XML document;
writing those documents to disk (or anywhere else) is left to the
caller.

The tree machinery lives in the construct package, the XML document
model in xmltree, and ready-made configuration kinds (build types,
VCS roots, triggers, build steps and features) in pipeline. Errors
raised for API misuse are described by the builderr package.

Construction is synchronous and single-threaded: builder callbacks
run to completion before the constructor that invoked them returns,
so a parent is never serialized before its descendants have finished
registering their contributions.
*/
package ciconf
