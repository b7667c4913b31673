// Package relgrid generates balanced object-relation datasets for
// visuospatial relational-reasoning experiments — from per-field object
// sampling to whole train/validation/test splits with held-out locations.
//
// 🚀 What is relgrid?
//
//	A deterministic, seed-reproducible dataset engine that brings together:
//		• Object fields: position, one-hot category & fixed-length attributes
//		• Relations: 1-D/N-D adjacency, color-above-color, object counting,
//		  identical-objects — each with evaluate AND balance operations
//		• Scene assembly: raw batches plus rejection and directed balancing
//		• Dataset views: flat scene tensors & spatial canvas re-embeddings
//		• Paradigms: above/below, between & one-or-two-reference layouts
//		  with systematically held-out reference and target locations
//
// ✨ Why choose relgrid?
//
//   - Reproducible – one explicit seed per component, no global RNG state
//   - Label-exact – balancing flips produce exactly the class mix you ask for
//   - Pure Go – no cgo, no hidden deps
//   - Composable – relations, generators and builders plug into each other
//     through small interfaces
//
// Under the hood, everything is organized under six subpackages:
//
//	scene/    — object vectors, scenes & the field layout that indexes them
//	field/    — per-field value generators (position, category, length)
//	relation/ — relation predicates and their balancing counterparts
//	scenegen/ — scene assembly plus post-hoc & directed batch balancing
//	dataset/  — labeled scene collections & spatial projections
//	paradigm/ — structured layout builders with held-out test conditions
//
// Quick ASCII example:
//
//	    ░░░░░░░░░░
//	    ░░░▓░░░░░░      ▓ target above
//	    ░▀▀▀▀▀▀▀▀▀      ▀ reference object
//	    ░░░░░░░▓░░      ▓ target below
//	    ░░░░░░░░░░
//
//	one above/below scene: a horizontal reference with a target placed in
//	the grid anchored over one end or mirrored under the other.
//
// Dive into the per-package docs for contracts, determinism guarantees and
// worked examples.
//
//	go get github.com/katalvlaran/relgrid
package relgrid
