package domain

import (
	"fmt"
	"slices"
	"strings"
)

// PairSeparator joins the base and target legs of a pair identifier.
const PairSeparator = "_"

// Pair is a currency pair definition. ID is the natural key, e.g. "JPY100_KRW".
type Pair struct {
	ID     string `json:"_id"`
	Base   string `json:"base"`
	Target string `json:"target"`
	Unit   int    `json:"unit"`
	Active bool   `json:"active"`
}

// PairCatalog is what the pairs listing returns.
type PairCatalog struct {
	Currencies []string `json:"currencies"`
	Pairs      []Pair   `json:"pairs"`
}

// PairID builds the BASE_TARGET identifier.
func PairID(base, target string) string {
	return base + PairSeparator + target
}

// SplitPair splits "BASE_TARGET" into its legs.
func SplitPair(pair string) (base, target string, err error) {
	base, target, ok := strings.Cut(pair, PairSeparator)
	if !ok || base == "" || target == "" {
		return "", "", fmt.Errorf("pair %q is not of the form BASE_TARGET", pair)
	}
	return base, target, nil
}

// NewPair builds an active pair definition whose unit comes from the vocabulary.
func NewPair(v *Vocabulary, base, target string) Pair {
	return Pair{
		ID:     PairID(base, target),
		Base:   base,
		Target: target,
		Unit:   v.Factor(base),
		Active: true,
	}
}

// DefaultSeedPairs returns the pair definitions written by the seed operation.
func DefaultSeedPairs(v *Vocabulary, home string) []Pair {
	bases := []string{"USD", "EUR", "JPY100", "GBP", "CNY", "HKD", "ISK"}
	pairs := make([]Pair, 0, len(bases))
	for _, b := range bases {
		pairs = append(pairs, NewPair(v, b, home))
	}
	return pairs
}

// ExamplePairs returns the pairs listed in mock mode.
func ExamplePairs(v *Vocabulary, home string) []Pair {
	return []Pair{
		NewPair(v, "USD", home),
		NewPair(v, "EUR", home),
		NewPair(v, "JPY100", home),
		NewPair(v, "USD", "EUR"),
	}
}

// BuildAllPairs enumerates every ordered pair b_q with b != q, deduplicated and sorted.
func BuildAllPairs(codes []string) []string {
	seen := make(map[string]struct{}, len(codes)*len(codes))
	pairs := make([]string, 0, len(codes)*len(codes))
	for _, b := range codes {
		for _, q := range codes {
			if b == q {
				continue
			}
			id := PairID(b, q)
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			pairs = append(pairs, id)
		}
	}
	slices.Sort(pairs)
	return pairs
}
