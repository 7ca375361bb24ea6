// Package catalog provides tool corpora for the demo chat: a built-in
// registry of runnable tools and a loader for YAML-defined corpora that
// only need to be searchable, not executable.
package catalog
