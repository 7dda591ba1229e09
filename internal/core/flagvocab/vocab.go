// Package flagvocab loads the fixed achievement/quote vocabulary from the
// embedded vocab.json and classifies free-text form fields against it.
// The form encodes milestones as checkbox phrases joined into one text field,
// so classification is independent substring matching per flag; text that
// matches nothing is ignored rather than treated as an error
package flagvocab

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"readathon/internal/core/fold"
)

//go:embed vocab.json
var embedded []byte

// Flag is a canonical flag name from the vocabulary
type Flag string

// Canonical flags the ingestion pipeline consumes
const (
	FinishedCommon     Flag = "finished_common"
	FinishedOther      Flag = "finished_other"
	AttendedDiscussion Flag = "attended_discussion"
	QuoteCommon        Flag = "quote_common"
	QuoteOther         Flag = "quote_other"
)

type rawVocab struct {
	Version int                 `json:"version"`
	Flags   map[string][]string `json:"flags"`
}

// Classifier matches folded submission text against the vocabulary
type Classifier struct {
	version int
	needles map[Flag][]string // folded match substrings per flag
}

// Default compiles the embedded vocabulary; it panics on a broken embed
// because that is a build defect, not a runtime condition
func Default() *Classifier {
	c, err := Compile(embedded)
	if err != nil {
		panic(fmt.Sprintf("flagvocab: embedded vocab.json is invalid: %v", err))
	}
	return c
}

// Compile parses vocabulary JSON and folds every match substring once
func Compile(data []byte) (*Classifier, error) {
	var raw rawVocab
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("flagvocab: parse: %w", err)
	}
	if len(raw.Flags) == 0 {
		return nil, fmt.Errorf("flagvocab: no flags defined")
	}
	needles := make(map[Flag][]string, len(raw.Flags))
	for name, subs := range raw.Flags {
		var folded []string
		for _, s := range subs {
			if f := fold.Fold(s); f != "" {
				folded = append(folded, f)
			}
		}
		if len(folded) == 0 {
			return nil, fmt.Errorf("flagvocab: flag %q has no usable match strings", name)
		}
		needles[Flag(name)] = folded
	}
	return &Classifier{version: raw.Version, needles: needles}, nil
}

// Version reports the vocabulary version
func (c *Classifier) Version() int { return c.version }

// Has reports whether text matches any substring of the given flag
func (c *Classifier) Has(text string, f Flag) bool {
	folded := fold.Fold(text)
	for _, n := range c.needles[f] {
		if strings.Contains(folded, n) {
			return true
		}
	}
	return false
}

// Flags classifies text against every flag independently and returns the
// set of matches, sorted for deterministic iteration
func (c *Classifier) Flags(text string) []Flag {
	folded := fold.Fold(text)
	var out []Flag
	for f, ns := range c.needles {
		for _, n := range ns {
			if strings.Contains(folded, n) {
				out = append(out, f)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
