// Package config owns the hierarchical configuration store for labrec.
//
// The store is a nested tree addressed by dot paths (remote_control.port),
// seeded with repository defaults and overlaid from a file: legacy .cfg
// files go through field remapping and filename resolution, JSON and TOML
// files deep-merge onto the tree as-is. A failed load reports once and
// leaves the store at its pre-load state.
//
// Always read settings through Get and the typed accessors so downstream
// code sees one consistent view regardless of which format supplied a value.
package config
