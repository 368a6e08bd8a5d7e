package models

// Pair is a row of the pairs table.
type Pair struct {
	ID     string `db:"id"`
	Base   string `db:"base"`
	Target string `db:"target"`
	Unit   int    `db:"unit"`
	Active bool   `db:"active"`
}
