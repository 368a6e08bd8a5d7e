package domain

import (
	"time"
)

// MaxHistorySpanDays is the widest history range a query may request.
const MaxHistorySpanDays = 3660

// DateSpan is an inclusive range of calendar dates.
type DateSpan struct {
	Start time.Time
	End   time.Time
}

// String renders the span as "start..end".
func (s DateSpan) String() string {
	return FormatDate(s.Start) + ".." + FormatDate(s.End)
}

// YearsBack returns the same month and day years before t. ok is false when
// that date does not exist (Feb 29 in a non-leap year).
func YearsBack(t time.Time, years int) (time.Time, bool) {
	y, m, d := t.Date()
	candidate := time.Date(y-years, m, d, 0, 0, 0, 0, time.UTC)
	if candidate.Month() != m || candidate.Day() != d {
		return time.Time{}, false
	}
	return candidate, true
}

// TenYearSpan is the default ingestion span ending at end. When the same
// day ten years earlier does not exist, the start is end minus 3650 days.
func TenYearSpan(end time.Time) DateSpan {
	end = Truncate(end)
	start, ok := YearsBack(end, 10)
	if !ok {
		start = end.AddDate(0, 0, -3650)
	}
	return DateSpan{Start: start, End: end}
}

// YearChunks splits [start, end] into year-aligned spans. The first chunk
// starts at start, every later chunk starts on January 1, and each chunk ends
// on December 31 or on end, whichever is earlier.
func YearChunks(start, end time.Time) []DateSpan {
	start, end = Truncate(start), Truncate(end)
	var chunks []DateSpan
	for cur := start; !cur.After(end); cur = time.Date(cur.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC) {
		chunkEnd := time.Date(cur.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		if chunkEnd.After(end) {
			chunkEnd = end
		}
		chunks = append(chunks, DateSpan{Start: cur, End: chunkEnd})
	}
	return chunks
}
