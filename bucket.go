package sitebook

import "sort"

// DateBucket groups the entries recorded on one calendar day, for grouped
// timeline views.
type DateBucket[E any] struct {
	Day     Date
	Entries []E
}

// Label returns the human-readable heading for the bucket: "Today" or
// "Yesterday" relative to the given current date, otherwise the day
// formatted as "02 Jan 2006". It is a pure function of (bucket day, today)
// so timelines render deterministically in tests.
func (b DateBucket[E]) Label(today Date) string {
	switch b.Day {
	case today:
		return "Today"
	case today.Add(-1):
		return "Yesterday"
	default:
		return b.Day.Format(LabelFormat)
	}
}

// BucketByDate partitions entries into calendar-day buckets using the given
// day accessor. Buckets are sorted most-recent-first; within a bucket the
// entries keep the order supplied by the caller, no secondary sort is
// imposed.
func BucketByDate[E any](entries []E, day func(E) Date) []DateBucket[E] {
	buckets := make([]DateBucket[E], 0)
	index := make(map[Date]int)

	for _, e := range entries {
		d := day(e)
		at, ok := index[d]
		if !ok {
			index[d] = len(buckets)
			buckets = append(buckets, DateBucket[E]{Day: d})
			at = index[d]
		}
		buckets[at].Entries = append(buckets[at].Entries, e)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[j].Day.Before(buckets[i].Day)
	})
	return buckets
}
