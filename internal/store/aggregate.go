package store

// TotalMinutes sums the stored duration of every work log. It is a full
// scan recomputed on demand; the dataset stays small enough that no
// running counter is worth keeping.
func TotalMinutes(entries []WorkLog) int {
	total := 0
	for _, e := range entries {
		total += e.Duration
	}
	return total
}

// NightMinutes sums the duration of the logs flagged as night shifts. The
// flag is trusted as-is, regardless of the clock times on the record.
func NightMinutes(entries []WorkLog) int {
	total := 0
	for _, e := range entries {
		if e.IsNight {
			total += e.Duration
		}
	}
	return total
}
