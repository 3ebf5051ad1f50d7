// Package pack handles the on-disk layout of sound packs.
//
// A source folder is a namespace folder holding exactly one "sounds"
// sub-folder full of .ogg files. A target is the namespace folder of an
// existing resource pack, whose manifest lives in the sibling
// "minecraft/sounds.json". The package validates both layouts, discovers
// sound files, applies Minecraft's resource naming rules, detects files that
// a copy would overwrite, and performs the copy.
package pack
