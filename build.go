package ipa

import (
	"errors"
	"fmt"
)

// Data errors surfaced by New. They indicate an inconsistency in the
// built-in tables, so a registry is never returned alongside one.
var (
	// ErrDuplicateGrapheme reports a grapheme already registered under a
	// different feature bundle.
	ErrDuplicateGrapheme = errors.New("duplicate grapheme")
	// ErrInvalidPlaceArticulation reports a place/articulation pair that
	// violates the fixed column grouping.
	ErrInvalidPlaceArticulation = errors.New("invalid place/articulation pair")
	// ErrBadTable reports a manner row whose grapheme sequence does not
	// fill its column layout exactly.
	ErrBadTable = errors.New("malformed chart row")
	// ErrBadAffricate reports an affricate whose constituents are not a
	// registered plosive and fricative of matching phonation.
	ErrBadAffricate = errors.New("invalid affricate decomposition")
)

// build populates a registry from the built-in chart tables.
// Mirrors the positional layout of the tables: within each manner row the
// grapheme sequence fills the attested columns left to right, voiceless
// slot before voiced slot. Any leftover or missing grapheme, duplicate
// key, or unresolvable affricate constituent fails the whole build.
func build() (*Registry, error) {
	r := &Registry{
		entries:    make(map[Grapheme]*Entry),
		affricates: make(map[Grapheme]*AffricateEntry),
	}

	for _, row := range consonantChart {
		if err := r.addRow(row); err != nil {
			return nil, fmt.Errorf("%s row: %w", row.manner, err)
		}
	}
	for _, spec := range affricateChart {
		if err := r.addAffricate(spec); err != nil {
			return nil, fmt.Errorf("affricate %s%s: %w", spec.onset, spec.release, err)
		}
	}
	return r, nil
}

// addRow registers every grapheme of one manner row, zipping the flat
// sequence against the row's column layout.
func (r *Registry) addRow(row chartRow) error {
	i := 0
	for _, col := range row.columns {
		if col.sibilant && row.manner != Fricative {
			return fmt.Errorf("%w: sibilant %s column", ErrBadTable, row.manner)
		}
		for _, ph := range col.phonations {
			if i >= len(row.graphemes) {
				return fmt.Errorf("%w: %d graphemes for %d slots",
					ErrBadTable, len(row.graphemes), rowSlots(row))
			}
			e := &Entry{
				Grapheme:  row.graphemes[i],
				Place:     At(col.articulation),
				Manner:    row.manner,
				Sibilant:  col.sibilant,
				Phonation: ph,
			}
			if err := r.register(e); err != nil {
				return err
			}
			i++
		}
	}
	if i != len(row.graphemes) {
		return fmt.Errorf("%w: %d graphemes for %d slots",
			ErrBadTable, len(row.graphemes), i)
	}
	return nil
}

// rowSlots counts the phonation slots a row's column layout declares.
func rowSlots(row chartRow) int {
	n := 0
	for _, col := range row.columns {
		n += len(col.phonations)
	}
	return n
}

// register inserts a simple entry, rejecting key collisions. A collision
// is a data error even when the feature bundles agree: every grapheme
// appears exactly once in the tables.
func (r *Registry) register(e *Entry) error {
	if prev, ok := r.entries[e.Grapheme]; ok {
		return fmt.Errorf("%w: %q already registered as %s %s %s",
			ErrDuplicateGrapheme, e.Grapheme, prev.Phonation, prev.Place, prev.Manner)
	}
	r.entries[e.Grapheme] = e
	r.order = append(r.order, e)
	return nil
}

// addAffricate resolves an affricate's constituents against the simple
// entries registered so far and registers the composed entry.
func (r *Registry) addAffricate(spec affricateSpec) error {
	onset, ok := r.entries[spec.onset]
	if !ok || onset.Manner != Plosive {
		return fmt.Errorf("%w: onset %q is not a registered plosive",
			ErrBadAffricate, spec.onset)
	}
	release, ok := r.entries[spec.release]
	if !ok || release.Manner != Fricative {
		return fmt.Errorf("%w: release %q is not a registered fricative",
			ErrBadAffricate, spec.release)
	}
	if onset.Phonation != release.Phonation {
		return fmt.Errorf("%w: onset is %s but release is %s",
			ErrBadAffricate, onset.Phonation, release.Phonation)
	}

	a := &AffricateEntry{
		Grapheme:  spec.onset + spec.release,
		Place:     At(spec.articulation),
		Onset:     spec.onset,
		Release:   spec.release,
		Phonation: onset.Phonation,
		Sibilant:  release.Sibilant,
	}
	if _, ok := r.entries[a.Grapheme]; ok {
		return fmt.Errorf("%w: %q already registered as a simple entry",
			ErrDuplicateGrapheme, a.Grapheme)
	}
	if _, ok := r.affricates[a.Grapheme]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateGrapheme, a.Grapheme)
	}
	r.affricates[a.Grapheme] = a
	r.affricateOrder = append(r.affricateOrder, a)
	return nil
}
