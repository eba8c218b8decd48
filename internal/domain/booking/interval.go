package booking

// Interval is a half-open minute range [Start, End).
type Interval struct {
	Start int
	End   int
}

// OccupiedInterval is the range a booking reserves, cleanup included.
func OccupiedInterval(start, durationMin int) Interval {
	return Interval{Start: start, End: start + durationMin + CleanupMinutes}
}

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

func (i Interval) Overlaps(o Interval) bool {
	return Overlaps(i.Start, i.End, o.Start, o.End)
}

func overlapsAny(i Interval, others []Interval) bool {
	for _, o := range others {
		if i.Overlaps(o) {
			return true
		}
	}
	return false
}
