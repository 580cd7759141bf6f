/*
Package construct implements the composition tree underlying every
configuration kind.

A Construct gives a configuration node its parent link, its property
bag and two narrow extension points: a document registry on the tree
root, into which descendants propose whole output documents
(first-wins per path), and a per-node fragment registry, into which
descendant kinds register rendering callbacks exactly once per kind.
A callback iterates the parent's live child collection when invoked,
so later siblings of the same kind are picked up even though only the
first sibling's registration took effect.

Construction is depth-first and synchronous: by the time any
constructor returns, its whole subtree has finished registering. The
package is not safe for concurrent use and does not need to be; one
call stack builds the tree, then serialization reads it.
*/
package construct
