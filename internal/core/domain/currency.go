package domain

import (
	"github.com/shopspring/decimal"
)

// Currency is one entry of the currency code vocabulary.
type Currency struct {
	Code       string `json:"code"`       // Local code, e.g. "JPY100"
	RealCode   string `json:"realCode"`   // Code understood by the external rate source, e.g. "JPY"
	Multiplier int    `json:"multiplier"` // How many units of RealCode one quote of Code represents
}

// DefaultCatalog lists every currency code the system knows about.
var DefaultCatalog = []Currency{
	{Code: "USD", RealCode: "USD", Multiplier: 1},
	{Code: "EUR", RealCode: "EUR", Multiplier: 1},
	{Code: "GBP", RealCode: "GBP", Multiplier: 1},
	{Code: "CNY", RealCode: "CNY", Multiplier: 1},
	{Code: "JPY100", RealCode: "JPY", Multiplier: 100},
	{Code: "HKD", RealCode: "HKD", Multiplier: 1},
	{Code: "ISK", RealCode: "ISK", Multiplier: 1},
	{Code: "RUB", RealCode: "RUB", Multiplier: 1},
	{Code: "KRW", RealCode: "KRW", Multiplier: 1},
}

// DefaultCurrencyCodes is the active vocabulary used when none is configured.
var DefaultCurrencyCodes = []string{"USD", "EUR", "CNY", "JPY100", "ISK", "RUB", "KRW"}

// Vocabulary resolves local currency codes against a catalog and performs
// denomination rescaling.
type Vocabulary struct {
	codes   []string
	entries map[string]Currency
}

// NewVocabulary builds a Vocabulary whose active codes are codes, resolved
// against catalog. Codes missing from the catalog are unit-denominated and
// map to themselves.
func NewVocabulary(catalog []Currency, codes []string) *Vocabulary {
	entries := make(map[string]Currency, len(catalog))
	for _, c := range catalog {
		entries[c.Code] = c
	}
	active := make([]string, len(codes))
	copy(active, codes)
	return &Vocabulary{codes: active, entries: entries}
}

// DefaultVocabulary returns the default catalog with the default active codes.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(DefaultCatalog, DefaultCurrencyCodes)
}

// Codes returns a copy of the active currency codes.
func (v *Vocabulary) Codes() []string {
	out := make([]string, len(v.codes))
	copy(out, v.codes)
	return out
}

// Lookup returns the catalog entry for code.
func (v *Vocabulary) Lookup(code string) (Currency, bool) {
	c, ok := v.entries[code]
	return c, ok
}

// RealCode maps a local code to the code understood by the external rate source.
func (v *Vocabulary) RealCode(code string) string {
	if c, ok := v.entries[code]; ok && c.RealCode != "" {
		return c.RealCode
	}
	return code
}

// Factor returns the denomination multiplier of code, 1 when it has none.
func (v *Vocabulary) Factor(code string) int {
	if c, ok := v.entries[code]; ok && c.Multiplier > 0 {
		return c.Multiplier
	}
	return 1
}

// Adjust rescales a raw external rate (1 real base in real target) to the
// locally defined pair: raw * Factor(base) / Factor(target).
func (v *Vocabulary) Adjust(baseCode, targetCode string, raw float64) float64 {
	scale := decimal.NewFromInt(int64(v.Factor(baseCode))).Div(decimal.NewFromInt(int64(v.Factor(targetCode))))
	adjusted, _ := decimal.NewFromFloat(raw).Mul(scale).Float64()
	return adjusted
}
