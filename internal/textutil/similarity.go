package textutil

import (
	"math"
	"sort"
	"strings"
)

const (
	// minWordLen drops single letters such as the "a" in "note_a".
	minWordLen = 2
	// wordShare is the part of a segment's weight given to each of its words.
	wordShare = 0.5
)

// Term is one weighted piece of an event name.
type Term struct {
	Text   string
	Weight float64
}

// Terms splits an event name into weighted terms. Segments are separated by
// '.' or '/', words inside a segment by '_' or '-'. The last segment weighs
// 1 and the first (1+n)/2n for a name of n segments.
func Terms(name string) []Term {
	segments := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(name)), func(r rune) bool {
		return r == '.' || r == '/'
	})
	n := len(segments)
	terms := make([]Term, 0, n)
	for i, segment := range segments {
		weight := segmentWeight(i, n)
		terms = append(terms, Term{Text: segment, Weight: weight})

		words := strings.FieldsFunc(segment, func(r rune) bool { return r == '_' || r == '-' })
		if len(words) < 2 {
			continue
		}
		for _, word := range words {
			if len(word) < minWordLen {
				continue
			}
			terms = append(terms, Term{Text: word, Weight: weight * wordShare})
		}
	}
	return terms
}

func segmentWeight(i, n int) float64 {
	return 1 - 0.5*float64(n-1-i)/float64(n)
}

// vector is a bag of weighted terms with its Euclidean norm.
type vector struct {
	terms map[string]float64
	norm  float64
}

func cosine(a, b vector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	if len(b.terms) < len(a.terms) {
		a, b = b, a
	}
	var dot float64
	for term, w := range a.terms {
		dot += w * b.terms[term]
	}
	return dot / (a.norm * b.norm)
}

// Match is a candidate and its similarity to a query.
type Match struct {
	Text  string
	Score float64
}

// Index holds IDF-weighted vectors for a fixed set of candidate names.
type Index struct {
	idf map[string]float64
	// unseen weighs query terms no candidate contains.
	unseen  float64
	entries []indexEntry
}

type indexEntry struct {
	text string
	vec  vector
}

// NewIndex weighs every candidate. Candidates without terms are skipped.
func NewIndex(candidates []string) *Index {
	type pending struct {
		text  string
		terms []Term
	}
	docFreq := make(map[string]int)
	raw := make([]pending, 0, len(candidates))
	for _, text := range candidates {
		terms := Terms(text)
		if len(terms) == 0 {
			continue
		}
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			if _, ok := seen[term.Text]; ok {
				continue
			}
			seen[term.Text] = struct{}{}
			docFreq[term.Text]++
		}
		raw = append(raw, pending{text: text, terms: terms})
	}

	n := float64(len(raw))
	idx := &Index{
		idf:     make(map[string]float64, len(docFreq)),
		unseen:  math.Log(n+1) + 1,
		entries: make([]indexEntry, 0, len(raw)),
	}
	for term, df := range docFreq {
		idx.idf[term] = math.Log((n+1)/(1+float64(df))) + 1
	}
	for _, p := range raw {
		idx.entries = append(idx.entries, indexEntry{text: p.text, vec: idx.vector(p.terms)})
	}
	return idx
}

// Len returns the number of indexed candidates.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

func (idx *Index) vector(terms []Term) vector {
	v := vector{terms: make(map[string]float64, len(terms))}
	for _, term := range terms {
		w, ok := idx.idf[term.Text]
		if !ok {
			w = idx.unseen
		}
		v.terms[term.Text] += term.Weight * w
	}
	var sum float64
	for _, w := range v.terms {
		sum += w * w
	}
	v.norm = math.Sqrt(sum)
	return v
}

// Nearest returns up to limit candidates with a positive similarity to
// query, best first. Ties are ordered by text.
func (idx *Index) Nearest(query string, limit int) []Match {
	if idx == nil || limit <= 0 {
		return nil
	}
	terms := Terms(query)
	if len(terms) == 0 {
		return nil
	}
	q := idx.vector(terms)

	var matches []Match
	for _, entry := range idx.entries {
		if score := cosine(q, entry.vec); score > 0 {
			matches = append(matches, Match{Text: entry.text, Score: score})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Text < matches[j].Text
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
