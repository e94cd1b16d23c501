package ipa

import "iter"

// Predicate selects simple entries by any combination of features. A nil
// field matches anything. Sibilant is a fricative feature: setting it
// restricts the match to fricatives with that sibilance, so Sibilant
// pointing at false selects the non-sibilant fricatives, not every
// non-fricative entry.
type Predicate struct {
	Place        *Place
	Articulation *Articulation
	Manner       *Manner
	Sibilant     *bool
	Phonation    *Phonation
}

// matches reports whether entry e satisfies every set field of p.
func (p Predicate) matches(e *Entry) bool {
	if p.Place != nil && e.Place.Place != *p.Place {
		return false
	}
	if p.Articulation != nil && e.Place.Articulation != *p.Articulation {
		return false
	}
	if p.Manner != nil && e.Manner != *p.Manner {
		return false
	}
	if p.Sibilant != nil && (e.Manner != Fricative || e.Sibilant != *p.Sibilant) {
		return false
	}
	if p.Phonation != nil && e.Phonation != *p.Phonation {
		return false
	}
	return true
}

// Filter returns the entries matching p, lazily, in registration order.
// The sequence is finite and restartable: each range re-scans the
// registry, and identical predicates always yield identical sequences.
// The zero Predicate matches every entry.
func (r *Registry) Filter(p Predicate) iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range r.order {
			if p.matches(e) && !yield(e) {
				return
			}
		}
	}
}

// GraphemesFor returns the graphemes of every entry with manner m, in
// registration order. It reconstructs the per-manner groupings of the
// source tables (e.g. all fricatives) without touching the full entry set.
func (r *Registry) GraphemesFor(m Manner) []Grapheme {
	var out []Grapheme
	for e := range r.Filter(Predicate{Manner: &m}) {
		out = append(out, e.Grapheme)
	}
	return out
}
