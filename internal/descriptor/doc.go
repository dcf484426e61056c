// Package descriptor defines the format-agnostic model of an Android
// application's build descriptor: its identity, toolchain targets, signing
// configurations, build types and dependency set.
//
// The model is populated by a format-specific loader (see the hcl package),
// checked by Validate, and consumed read-only by the renderers. Nothing in
// this package mutates a Descriptor after it has been loaded.
package descriptor
