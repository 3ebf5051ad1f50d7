// Package textutil ranks sound event names by similarity to a query.
//
// A name is split into its dotted segments, and segments holding several
// underscore-joined words also contribute each word. Later segments are more
// specific than the category in front, so they weigh more. An Index built
// over the candidate names adds IDF weights, which make segments shared by
// most names, like "entity", count less than distinctive ones.
package textutil
