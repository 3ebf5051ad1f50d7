// Package main hosts the spindex CLI entrypoint and command graph.
//
// The root command indexes a namespace folder of .ogg files into a
// sounds.json manifest and, when a target pack is given, copies the sounds
// across and merges the manifests. Subcommands expose the merge on its own,
// the bundled sound event catalog, and configuration scaffolding.
//
// Keep this package lean: the indexing, resolving and merging rules live in
// internal packages. This package owns prompts, terminal output and the
// order in which those packages are called.
package main
