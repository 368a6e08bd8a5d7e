package domain

// ChunkFailure records one (pair, chunk) that could not be ingested.
type ChunkFailure struct {
	Pair  string
	Span  DateSpan
	Error string
}

// PairIngestResult is the outcome of ingesting all chunks of one pair.
type PairIngestResult struct {
	Pair     string
	Upserted int64
	Failed   int
}

// IngestReport aggregates a bulk ingestion run.
type IngestReport struct {
	Span     DateSpan
	Pairs    []PairIngestResult
	Total    int64
	Failures []ChunkFailure
}
