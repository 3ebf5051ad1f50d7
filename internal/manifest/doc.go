// Package manifest models a Minecraft sounds.json manifest and owns the
// operations that produce and combine them.
//
// Generate turns a list of sound file paths into sound events by resolving
// each path to an event name and seeding records from a defaults table.
// Merge folds a freshly generated manifest into one loaded from an existing
// resource pack; values already present in the existing pack always win, so
// hand-edited subtitles and replace directives survive re-indexing.
//
// Unset attributes are represented by nil pointers and never serialize. The
// package also provides the compact on-disk encoding and a locked store used
// when updating a pack's sounds.json in place.
package manifest
