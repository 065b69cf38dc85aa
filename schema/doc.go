// Package schema defines the declarative scene document that drives a
// puppet video: metadata, timed scenes, and the objects inside them, with
// loading, validation, smart-default enrichment, and conversion into the
// core engine's types.
//
// A document flows through three steps before rendering:
//
//	doc, err := schema.Load("scene.yaml")
//	schema.ApplyDefaults(doc)
//	err = schema.Validate(doc)
//
// [ApplyDefaults] fills every omitted field deterministically (templates,
// cameras, backgrounds, transitions, per-kind animations), so hand-written
// documents stay short. [Validate] rejects unknown pose, motion, effect,
// and camera names with errors that carry the offending scene and object
// ids.
//
// Documents are YAML; JSON documents parse through the same path. The
// audio and subtitle fields round-trip but nothing in this module
// evaluates them.
package schema
