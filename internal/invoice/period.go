package invoice

import "time"

// PeriodFor computes the open statement window for a card that closes on
// closingDay, relative to ref. The window runs from the day after the last
// closing up to and including the next closing. Closing days past the end of
// a short month collapse to that month's last day.
func PeriodFor(closingDay int, ref time.Time) (start, end time.Time) {
	end = closingDate(ref.Year(), ref.Month(), closingDay, ref.Location())
	if ref.After(end) {
		next := ref.AddDate(0, 1, 0)
		end = closingDate(next.Year(), next.Month(), closingDay, ref.Location())
	}
	prevRef := end.AddDate(0, -1, 0)
	prevClose := closingDate(prevRef.Year(), prevRef.Month(), closingDay, ref.Location())
	start = prevClose.AddDate(0, 0, 1)
	return start, end
}

func closingDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
