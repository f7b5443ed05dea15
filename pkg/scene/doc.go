// Package scene implements the scene graph that widgets draw themselves
// into: shape and text primitives, ordered groups with explicit
// Attach/Detach membership, per-object transforms, and update hooks that
// run after every geometric change.
//
// The scene graph is deliberately small. It is not a rendering engine;
// render sinks (pkg/render) and the interactive player (internal/player)
// consume a flattened, z-ordered view of the tree and do the actual
// drawing. All operations are synchronous and single-threaded.
//
// # Membership
//
// A child belongs to at most one Group at a time, and membership is always
// explicit:
//
//	g := scene.NewGroup()
//	g.Attach(rect)
//	g.Detach(rect)
//
// Detaching removes the object from the visible tree; the object keeps its
// geometry and can be re-attached later (widgets rely on this to preserve
// in-flight animation state across structural mutations).
package scene
