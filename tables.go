package ipa

// The built-in data set covers the pulmonic consonants of the IPA chart.
// Each manner row lists its graphemes flat, in chart order left to right,
// with the voiceless member of a column before the voiced one; the column
// layout alongside it tells the builder which articulation and phonation
// slots the sequence fills. Diacritics are part of the grapheme (m̥ is
// "m̥"), so every key is distinct.

// chartColumn is one articulation column of a chart row: the phonation
// slots attested there, in voiceless-before-voiced order.
type chartColumn struct {
	articulation Articulation
	phonations   []Phonation
	sibilant     bool
}

// chartRow is one manner row of the chart: a flat grapheme sequence plus
// the column layout that assigns each grapheme its features positionally.
type chartRow struct {
	manner    Manner
	graphemes []Grapheme
	columns   []chartColumn
}

// pair is a full voiceless/voiced column.
func pair(a Articulation) chartColumn {
	return chartColumn{articulation: a, phonations: []Phonation{Voiceless, Voiced}}
}

// sibilantPair is a full column of sibilant fricatives.
func sibilantPair(a Articulation) chartColumn {
	c := pair(a)
	c.sibilant = true
	return c
}

// only is a column with a single attested phonation.
func only(a Articulation, ph Phonation) chartColumn {
	return chartColumn{articulation: a, phonations: []Phonation{ph}}
}

// consonantChart is the full simple-manner data set, in registration
// order. Affricates are declared separately in affricateChart.
var consonantChart = []chartRow{
	{
		// m̥ m ɱ̊ ɱ n̪̊ n̪ n̥ n ɲ̊ ɲ ŋ̊ ŋ ɴ̥ ɴ
		manner: Nasal,
		graphemes: []Grapheme{
			"m̥", "m", "ɱ̊", "ɱ", "n̪̊", "n̪",
			"n̥", "n", "ɲ̊", "ɲ", "ŋ̊", "ŋ",
			"ɴ̥", "ɴ",
		},
		columns: []chartColumn{
			pair(Bilabial), pair(Labiodental), pair(Dental), pair(Alveolar),
			pair(Palatal), pair(Velar), pair(Uvular),
		},
	},
	{
		// p b p̪ b̪ t̪ d̪ t d ʈ ɖ c ɟ k ɡ q ɢ ʡ ʔ
		manner: Plosive,
		graphemes: []Grapheme{
			"p", "b", "p̪", "b̪", "t̪", "d̪", "t", "d",
			"ʈ", "ɖ", "c", "ɟ", "k", "ɡ", "q", "ɢ",
			"ʡ", "ʔ",
		},
		columns: []chartColumn{
			pair(Bilabial), pair(Labiodental), pair(Dental), pair(Alveolar),
			pair(Retroflex), pair(Palatal), pair(Velar), pair(Uvular),
			only(Epiglottal, Voiceless), only(Glottal, Voiceless),
		},
	},
	{
		// ʙ r̥ r ɽ͡r ʀ̥ ʀ ᴙ
		manner: Trill,
		graphemes: []Grapheme{
			"ʙ", "r̥", "r", "ɽ͡r", "ʀ̥", "ʀ",
			"ᴙ",
		},
		columns: []chartColumn{
			only(Bilabial, Voiced), pair(Alveolar), only(Retroflex, Voiced),
			pair(Uvular), only(Uvular, Voiceless),
		},
	},
	{
		// ⱱ̟ ⱱ ɾ̥ ɾ ɽ
		manner: TapFlap,
		graphemes: []Grapheme{
			"ⱱ̟", "ⱱ", "ɾ̥", "ɾ", "ɽ",
		},
		columns: []chartColumn{
			only(Bilabial, Voiced), only(Labiodental, Voiced), pair(Alveolar),
			only(Retroflex, Voiced),
		},
	},
	{
		// ɸ β f v θ ð s z ʃ ʒ ɕ ʑ ʂ ʐ ç ʝ x ɣ χ ʁ ħ ʕ ʜ ʢ h ɦ
		manner: Fricative,
		graphemes: []Grapheme{
			"ɸ", "β", "f", "v", "θ", "ð", "s", "z",
			"ʃ", "ʒ", "ɕ", "ʑ", "ʂ", "ʐ",
			"ç", "ʝ", "x", "ɣ", "χ", "ʁ",
			"ħ", "ʕ", "ʜ", "ʢ", "h", "ɦ",
		},
		columns: []chartColumn{
			pair(Bilabial), pair(Labiodental), pair(Dental),
			sibilantPair(Alveolar), sibilantPair(Postalveolar),
			sibilantPair(Postalveolar), sibilantPair(Retroflex),
			pair(Palatal), pair(Velar), pair(Uvular), pair(Pharyngeal),
			pair(Epiglottal), pair(Glottal),
		},
	},
	{
		// ɬ ɮ
		manner:    LateralFricative,
		graphemes: []Grapheme{"ɬ", "ɮ"},
		columns:   []chartColumn{pair(Alveolar)},
	},
	{
		// l ɭ ʎ ʟ
		manner:    LateralApproximant,
		graphemes: []Grapheme{"l", "ɭ", "ʎ", "ʟ"},
		columns: []chartColumn{
			only(Alveolar, Voiced), only(Retroflex, Voiced),
			only(Palatal, Voiced), only(Velar, Voiced),
		},
	},
	{
		// ʋ ɹ ɻ j̊ j ɰ
		manner: Approximant,
		graphemes: []Grapheme{
			"ʋ", "ɹ", "ɻ", "j̊", "j", "ɰ",
		},
		columns: []chartColumn{
			only(Labiodental, Voiced), only(Alveolar, Voiced),
			only(Retroflex, Voiced), pair(Palatal), only(Velar, Voiced),
		},
	},
}

// affricateSpec declares one affricate by its chart column and the
// graphemes of its plosive onset and fricative release. The affricate's
// own grapheme is the concatenation onset+release; its phonation and
// sibilance follow from the constituents.
type affricateSpec struct {
	articulation Articulation
	onset        Grapheme
	release      Grapheme
}

// affricateChart lists the affricates in chart order, voiceless before
// voiced within each column.
// pf bv p̪f b̪v tθ dð ts dz tʃ dʒ tɕ dʑ ʈʂ ɖʐ cç ɟʝ kx ɡɣ qχ ɢʁ
var affricateChart = []affricateSpec{
	{Bilabial, "p", "f"},
	{Bilabial, "b", "v"},
	{Labiodental, "p̪", "f"},
	{Labiodental, "b̪", "v"},
	{Dental, "t", "θ"},
	{Dental, "d", "ð"},
	{Alveolar, "t", "s"},
	{Alveolar, "d", "z"},
	{Postalveolar, "t", "ʃ"},
	{Postalveolar, "d", "ʒ"},
	{Postalveolar, "t", "ɕ"},
	{Postalveolar, "d", "ʑ"},
	{Retroflex, "ʈ", "ʂ"},
	{Retroflex, "ɖ", "ʐ"},
	{Palatal, "c", "ç"},
	{Palatal, "ɟ", "ʝ"},
	{Velar, "k", "x"},
	{Velar, "ɡ", "ɣ"},
	{Uvular, "q", "χ"},
	{Uvular, "ɢ", "ʁ"},
}
