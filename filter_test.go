package ipa

import (
	"slices"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func collect(r *Registry, p Predicate) []Grapheme {
	var out []Grapheme
	for e := range r.Filter(p) {
		out = append(out, e.Grapheme)
	}
	return out
}

func TestFilterDeterminism(t *testing.T) {
	r, _ := New()
	p := Predicate{Manner: ptr(Nasal)}
	first := collect(r, p)
	second := collect(r, p)
	if !slices.Equal(first, second) {
		t.Errorf("repeated filter disagrees:\n  first  %v\n  second %v", first, second)
	}
	if len(first) != 14 {
		t.Errorf("nasal filter returned %d entries, want 14", len(first))
	}
}

func TestFilterRestartable(t *testing.T) {
	r, _ := New()
	seq := r.Filter(Predicate{Manner: ptr(Plosive)})

	// Break out of the first pass early; a fresh range must start over.
	var partial []Grapheme
	for e := range seq {
		partial = append(partial, e.Grapheme)
		if len(partial) == 3 {
			break
		}
	}
	var full []Grapheme
	for e := range seq {
		full = append(full, e.Grapheme)
	}
	if len(full) != 18 {
		t.Fatalf("second pass yielded %d entries, want 18", len(full))
	}
	if !slices.Equal(partial, full[:3]) {
		t.Errorf("second pass does not restart from the beginning: %v vs %v", partial, full[:3])
	}
}

func TestFilterSibilants(t *testing.T) {
	r, _ := New()
	got := collect(r, Predicate{Manner: ptr(Fricative), Sibilant: ptr(true)})
	want := []Grapheme{"s", "z", "ʃ", "ʒ", "ɕ", "ʑ", "ʂ", "ʐ"}
	if !slices.Equal(got, want) {
		t.Errorf("sibilant fricatives = %v, want %v", got, want)
	}
	for _, g := range []Grapheme{"ɸ", "β", "θ", "ð", "x", "h"} {
		if slices.Contains(got, g) {
			t.Errorf("sibilant filter must exclude %q", g)
		}
	}

	// Sibilant is a fricative feature: asking for sibilant=false must not
	// drag in plosives and nasals.
	nonSib := collect(r, Predicate{Sibilant: ptr(false)})
	if len(nonSib) != 18 {
		t.Errorf("non-sibilant fricatives = %d entries, want 18", len(nonSib))
	}
	for _, g := range nonSib {
		if e := r.Get(g); e.Manner != Fricative {
			t.Errorf("sibilant=false matched %q (%s), want fricatives only", g, e.Manner)
		}
	}
}

func TestFilterCombinations(t *testing.T) {
	r, _ := New()
	tests := []struct {
		name string
		pred Predicate
		want []Grapheme
	}{
		{
			name: "voiced dorsal plosives",
			pred: Predicate{Place: ptr(Dorsal), Manner: ptr(Plosive), Phonation: ptr(Voiced)},
			want: []Grapheme{"ɟ", "ɡ", "ɢ"},
		},
		{
			name: "voiceless alveolar anything",
			pred: Predicate{Articulation: ptr(Alveolar), Phonation: ptr(Voiceless)},
			want: []Grapheme{"n̥", "t", "r̥", "ɾ̥", "s", "ɬ"},
		},
		{
			name: "laryngeal fricatives",
			pred: Predicate{Place: ptr(Laryngeal), Manner: ptr(Fricative)},
			want: []Grapheme{"ħ", "ʕ", "ʜ", "ʢ", "h", "ɦ"},
		},
		{
			name: "lateral tap-flaps (declared manner, no attested entries)",
			pred: Predicate{Manner: ptr(LateralTapFlap)},
			want: nil,
		},
		{
			name: "linguolabial (no attested entries)",
			pred: Predicate{Articulation: ptr(Linguolabial)},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(r, tt.pred)
			if !slices.Equal(got, tt.want) {
				t.Errorf("filter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterEmptyPredicate(t *testing.T) {
	r, _ := New()
	got := collect(r, Predicate{})
	if len(got) != r.Len() {
		t.Errorf("empty predicate matched %d entries, want all %d", len(got), r.Len())
	}
	// Registration order starts with the nasal row and ends with the
	// approximant row.
	if got[0] != "m̥" {
		t.Errorf("first entry = %q, want m̥", got[0])
	}
	if got[len(got)-1] != "ɰ" {
		t.Errorf("last entry = %q, want ɰ", got[len(got)-1])
	}
}

func TestGraphemesFor(t *testing.T) {
	r, _ := New()
	tests := []struct {
		manner Manner
		count  int
		first  Grapheme
	}{
		{Nasal, 14, "m̥"},
		{Plosive, 18, "p"},
		{Trill, 7, "ʙ"},
		{TapFlap, 5, "ⱱ̟"},
		{Fricative, 26, "ɸ"},
		{LateralFricative, 2, "ɬ"},
		{LateralApproximant, 4, "l"},
		{Approximant, 6, "ʋ"},
		{LateralTapFlap, 0, ""},
	}
	total := 0
	for _, tt := range tests {
		got := r.GraphemesFor(tt.manner)
		if len(got) != tt.count {
			t.Errorf("GraphemesFor(%s) returned %d graphemes, want %d",
				tt.manner, len(got), tt.count)
			continue
		}
		if tt.count > 0 && got[0] != tt.first {
			t.Errorf("GraphemesFor(%s)[0] = %q, want %q", tt.manner, got[0], tt.first)
		}
		total += len(got)
	}
	if total != r.Len() {
		t.Errorf("per-manner groups sum to %d graphemes, want %d", total, r.Len())
	}
}
