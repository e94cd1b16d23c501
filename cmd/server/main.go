// Command server exposes the IPA consonant registry as a JSON REST API.
//
// Endpoints:
//
//	GET /api/phoneme?grapheme=<symbol>
//	GET /api/phonemes?place=&articulation=&manner=&sibilant=&phonation=
//	GET /api/chart?manner=<manner>
//	GET /api/affricates
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/rs/cors"
	"golang.org/x/text/unicode/norm"

	ipa "github.com/cours-de-phonetique/ipa"
)

// ---- JSON response types ------------------------------------------------

type entryJSON struct {
	Grapheme     string `json:"grapheme"`
	Place        string `json:"place"`
	Articulation string `json:"articulation"`
	Manner       string `json:"manner"`
	Sibilant     bool   `json:"sibilant,omitempty"`
	Phonation    string `json:"phonation"`
}

type affricateJSON struct {
	Grapheme     string `json:"grapheme"`
	Place        string `json:"place"`
	Articulation string `json:"articulation"`
	Onset        string `json:"onset"`
	Release      string `json:"release"`
	Sibilant     bool   `json:"sibilant,omitempty"`
	Phonation    string `json:"phonation"`
}

type phonemeResponse struct {
	Entry     *entryJSON     `json:"entry,omitempty"`
	Affricate *affricateJSON `json:"affricate,omitempty"`
}

type phonemesResponse struct {
	Entries []entryJSON `json:"entries"`
}

type chartResponse struct {
	Manner    string   `json:"manner"`
	Graphemes []string `json:"graphemes"`
}

type affricatesResponse struct {
	Affricates []affricateJSON `json:"affricates"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toEntryJSON(e *ipa.Entry) entryJSON {
	return entryJSON{
		Grapheme:     string(e.Grapheme),
		Place:        e.Place.Place.String(),
		Articulation: e.Place.Articulation.String(),
		Manner:       e.Manner.String(),
		Sibilant:     e.Sibilant,
		Phonation:    e.Phonation.String(),
	}
}

func toAffricateJSON(a ipa.AffricateEntry) affricateJSON {
	return affricateJSON{
		Grapheme:     string(a.Grapheme),
		Place:        a.Place.Place.String(),
		Articulation: a.Place.Articulation.String(),
		Onset:        string(a.Onset),
		Release:      string(a.Release),
		Sibilant:     a.Sibilant,
		Phonation:    a.Phonation.String(),
	}
}

var places = map[string]ipa.Place{
	"labial":    ipa.Labial,
	"coronal":   ipa.Coronal,
	"dorsal":    ipa.Dorsal,
	"laryngeal": ipa.Laryngeal,
}

var articulations = map[string]ipa.Articulation{
	"bilabial":     ipa.Bilabial,
	"labiodental":  ipa.Labiodental,
	"linguolabial": ipa.Linguolabial,
	"dental":       ipa.Dental,
	"alveolar":     ipa.Alveolar,
	"postalveolar": ipa.Postalveolar,
	"retroflex":    ipa.Retroflex,
	"palatal":      ipa.Palatal,
	"velar":        ipa.Velar,
	"uvular":       ipa.Uvular,
	"pharyngeal":   ipa.Pharyngeal,
	"epiglottal":   ipa.Epiglottal,
	"glottal":      ipa.Glottal,
}

var manners = map[string]ipa.Manner{
	"nasal":               ipa.Nasal,
	"plosive":             ipa.Plosive,
	"fricative":           ipa.Fricative,
	"approximant":         ipa.Approximant,
	"tap-flap":            ipa.TapFlap,
	"trill":               ipa.Trill,
	"lateral-fricative":   ipa.LateralFricative,
	"lateral-approximant": ipa.LateralApproximant,
	"lateral-tap-flap":    ipa.LateralTapFlap,
}

var phonations = map[string]ipa.Phonation{
	"voiceless": ipa.Voiceless,
	"voiced":    ipa.Voiced,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handlePhoneme(reg *ipa.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		g := r.URL.Query().Get("grapheme")
		if g == "" {
			writeError(w, http.StatusBadRequest, "missing 'grapheme' query parameter")
			return
		}
		// The registry matches exact sequences only; fold user input to
		// NFC so a precomposed "ç" and "c"+cedilla hit the same key.
		key := ipa.Grapheme(norm.NFC.String(g))

		if e := reg.Get(key); e != nil {
			ej := toEntryJSON(e)
			writeJSON(w, http.StatusOK, phonemeResponse{Entry: &ej})
			return
		}
		if a := reg.Affricate(key); a != nil {
			aj := toAffricateJSON(*a)
			writeJSON(w, http.StatusOK, phonemeResponse{Affricate: &aj})
			return
		}
		writeError(w, http.StatusNotFound, fmt.Sprintf("grapheme %q not registered", g))
	}
}

func handlePhonemes(reg *ipa.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		var pred ipa.Predicate

		if s := q.Get("place"); s != "" {
			p, ok := places[s]
			if !ok {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown place %q", s))
				return
			}
			pred.Place = &p
		}
		if s := q.Get("articulation"); s != "" {
			a, ok := articulations[s]
			if !ok {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown articulation %q", s))
				return
			}
			pred.Articulation = &a
		}
		if s := q.Get("manner"); s != "" {
			m, ok := manners[s]
			if !ok {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown manner %q", s))
				return
			}
			pred.Manner = &m
		}
		if s := q.Get("sibilant"); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("bad sibilant flag %q", s))
				return
			}
			pred.Sibilant = &b
		}
		if s := q.Get("phonation"); s != "" {
			ph, ok := phonations[s]
			if !ok {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown phonation %q", s))
				return
			}
			pred.Phonation = &ph
		}

		out := phonemesResponse{Entries: []entryJSON{}}
		for e := range reg.Filter(pred) {
			out.Entries = append(out.Entries, toEntryJSON(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleChart(reg *ipa.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		s := r.URL.Query().Get("manner")
		if s == "" {
			writeError(w, http.StatusBadRequest, "missing 'manner' query parameter")
			return
		}
		m, ok := manners[s]
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown manner %q", s))
			return
		}

		resp := chartResponse{Manner: m.String(), Graphemes: []string{}}
		for _, g := range reg.GraphemesFor(m) {
			resp.Graphemes = append(resp.Graphemes, string(g))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleAffricates(reg *ipa.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		resp := affricatesResponse{Affricates: []affricateJSON{}}
		for _, a := range reg.Affricates() {
			resp.Affricates = append(resp.Affricates, toAffricateJSON(a))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	reg, err := ipa.New()
	if err != nil {
		log.Fatalf("failed to build registry: %v", err)
	}
	log.Printf("registry built: %d consonants, %d affricates", reg.Len(), reg.AffricateLen())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/phoneme", handlePhoneme(reg))
	mux.HandleFunc("/api/phonemes", handlePhonemes(reg))
	mux.HandleFunc("/api/chart", handleChart(reg))
	mux.HandleFunc("/api/affricates", handleAffricates(reg))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
