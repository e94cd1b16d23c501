package ipa

import "fmt"

// Grapheme is a single IPA symbol, possibly carrying combining diacritics
// (e.g. "ɬ", "n̪", "ɽ͡r"). It is an opaque registry key: equality is exact
// Unicode sequence match, with no normalization. Callers that accept user
// input should NFC-normalize it before lookup.
type Grapheme string

// Place is the coarse articulation grouping, the basis for the broad
// column groups of the IPA consonant chart.
type Place uint8

const (
	Labial Place = iota
	Coronal
	Dorsal
	Laryngeal
)

func (p Place) String() string {
	switch p {
	case Labial:
		return "labial"
	case Coronal:
		return "coronal"
	case Dorsal:
		return "dorsal"
	case Laryngeal:
		return "laryngeal"
	default:
		return fmt.Sprintf("Place(%d)", uint8(p))
	}
}

// Articulation is the fine-grained articulation column. The declaration
// order is the canonical chart order, left to right; construction relies
// on it when assigning columns positionally.
type Articulation uint8

const (
	Bilabial Articulation = iota
	Labiodental
	Linguolabial
	Dental
	Alveolar
	Postalveolar
	Retroflex
	Palatal
	Velar
	Uvular
	Pharyngeal
	Epiglottal
	Glottal
)

var articulationNames = [...]string{
	Bilabial:     "bilabial",
	Labiodental:  "labiodental",
	Linguolabial: "linguolabial",
	Dental:       "dental",
	Alveolar:     "alveolar",
	Postalveolar: "postalveolar",
	Retroflex:    "retroflex",
	Palatal:      "palatal",
	Velar:        "velar",
	Uvular:       "uvular",
	Pharyngeal:   "pharyngeal",
	Epiglottal:   "epiglottal",
	Glottal:      "glottal",
}

func (a Articulation) String() string {
	if int(a) < len(articulationNames) {
		return articulationNames[a]
	}
	return fmt.Sprintf("Articulation(%d)", uint8(a))
}

// placeOf fixes the many-to-one Articulation → Place mapping.
var placeOf = [...]Place{
	Bilabial:     Labial,
	Labiodental:  Labial,
	Linguolabial: Labial,
	Dental:       Coronal,
	Alveolar:     Coronal,
	Postalveolar: Coronal,
	Retroflex:    Coronal,
	Palatal:      Dorsal,
	Velar:        Dorsal,
	Uvular:       Dorsal,
	Pharyngeal:   Laryngeal,
	Epiglottal:   Laryngeal,
	Glottal:      Laryngeal,
}

// PlaceOf returns the Place that articulation column a belongs to.
func PlaceOf(a Articulation) Place {
	return placeOf[a]
}

// PlaceOfArticulation pairs the coarse place with the fine articulation
// column. The two fields are never inconsistent: construct values with
// At (which derives the place) or NewPlaceOfArticulation (which rejects
// a mismatched pair).
type PlaceOfArticulation struct {
	Place        Place
	Articulation Articulation
}

// At builds the PlaceOfArticulation for column a, deriving the place.
func At(a Articulation) PlaceOfArticulation {
	return PlaceOfArticulation{Place: PlaceOf(a), Articulation: a}
}

// NewPlaceOfArticulation validates that p is the place of column a.
func NewPlaceOfArticulation(p Place, a Articulation) (PlaceOfArticulation, error) {
	if PlaceOf(a) != p {
		return PlaceOfArticulation{}, fmt.Errorf("%w: %s is not a %s articulation",
			ErrInvalidPlaceArticulation, a, p)
	}
	return PlaceOfArticulation{Place: p, Articulation: a}, nil
}

func (pa PlaceOfArticulation) String() string {
	return pa.Articulation.String()
}

// Manner is the row of the IPA consonant chart: how airflow is obstructed.
// Sibilance is not a Manner variant; it is the Sibilant flag on fricative
// entries, so a query can ask for "any fricative" as well as for the
// sibilant or non-sibilant subset.
type Manner uint8

const (
	Nasal Manner = iota
	Plosive
	Fricative
	Approximant
	TapFlap
	Trill
	LateralFricative
	LateralApproximant
	LateralTapFlap
)

var mannerNames = [...]string{
	Nasal:              "nasal",
	Plosive:            "plosive",
	Fricative:          "fricative",
	Approximant:        "approximant",
	TapFlap:            "tap-flap",
	Trill:              "trill",
	LateralFricative:   "lateral-fricative",
	LateralApproximant: "lateral-approximant",
	LateralTapFlap:     "lateral-tap-flap",
}

func (m Manner) String() string {
	if int(m) < len(mannerNames) {
		return mannerNames[m]
	}
	return fmt.Sprintf("Manner(%d)", uint8(m))
}

// Phonation is the state of the vocal folds during articulation.
type Phonation uint8

const (
	Voiceless Phonation = iota
	Voiced
)

func (ph Phonation) String() string {
	switch ph {
	case Voiceless:
		return "voiceless"
	case Voiced:
		return "voiced"
	default:
		return fmt.Sprintf("Phonation(%d)", uint8(ph))
	}
}

// Entry is one row of the registry: a grapheme with its full articulatory
// feature bundle.
type Entry struct {
	// Grapheme is the registry key.
	Grapheme Grapheme
	// Place is the place/articulation pair, always internally consistent.
	Place PlaceOfArticulation
	// Manner is the chart row.
	Manner Manner
	// Sibilant distinguishes s-like from ɸ-like fricatives.
	// Always false for non-fricatives.
	Sibilant bool
	// Phonation is voiceless or voiced.
	Phonation Phonation
}

// AffricateEntry is a registered affricate: a plosive-to-fricative
// transition at one place. It is not an Entry with a tenth manner; it
// carries a decomposition into two simple entries instead, keyed by their
// graphemes.
type AffricateEntry struct {
	// Grapheme is the full symbol, the concatenation Onset+Release.
	Grapheme Grapheme
	// Place is the affricate's own chart column (the onset and release
	// may sit in adjacent columns, as in pf).
	Place PlaceOfArticulation
	// Onset keys the plosive entry the affricate starts as.
	Onset Grapheme
	// Release keys the fricative entry the affricate releases into.
	Release Grapheme
	// Phonation is shared by both constituents.
	Phonation Phonation
	// Sibilant is the release fricative's sibilance.
	Sibilant bool
}
