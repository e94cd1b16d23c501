// Package ipa provides a classification registry for the pulmonic
// consonants of the International Phonetic Alphabet. Every registered
// grapheme carries its articulatory feature bundle (place, articulation
// column, manner, phonation), and affricates additionally carry their
// decomposition into a plosive onset and a fricative release.
//
// The registry is built once from fixed built-in tables and is immutable
// afterwards, so a single value may be shared by any number of concurrent
// readers without locking.
package ipa

// Registry is the authoritative grapheme → feature mapping. Build one
// with New; all methods are read-only.
type Registry struct {
	// entries maps each simple-manner grapheme to its entry.
	entries map[Grapheme]*Entry

	// affricates maps each affricate grapheme to its entry.
	affricates map[Grapheme]*AffricateEntry

	// order holds the simple entries in registration order: manner-table
	// order, then within-table index order. Filter scans it so repeated
	// queries yield identical sequences.
	order []*Entry

	// affricateOrder holds the affricates in registration order.
	affricateOrder []*AffricateEntry
}

// New builds the registry from the built-in consonant tables, validating
// the whole data set: unique graphemes, consistent place/articulation
// pairs, exact table/column fit, and resolvable affricate constituents.
// Any inconsistency is a data error and fails construction; a registry in
// a half-built state is never returned.
func New() (*Registry, error) {
	return build()
}

// Get looks up a simple consonant entry by exact grapheme match.
// It returns nil for unknown graphemes: the catalogue is deliberately
// partial (no clicks, ejectives, implosives, or vowels), so a miss is an
// expected result, not an error. Callers accepting user input should
// NFC-normalize it first; the registry performs no normalization.
func (r *Registry) Get(g Grapheme) *Entry {
	return r.entries[g]
}

// Affricate looks up an affricate entry by exact grapheme match, with the
// same miss semantics as Get.
func (r *Registry) Affricate(g Grapheme) *AffricateEntry {
	return r.affricates[g]
}

// Affricates returns all affricate entries in registration order.
func (r *Registry) Affricates() []AffricateEntry {
	out := make([]AffricateEntry, len(r.affricateOrder))
	for i, a := range r.affricateOrder {
		out[i] = *a
	}
	return out
}

// Len returns the number of simple consonant entries.
func (r *Registry) Len() int {
	return len(r.order)
}

// AffricateLen returns the number of affricate entries.
func (r *Registry) AffricateLen() int {
	return len(r.affricateOrder)
}
