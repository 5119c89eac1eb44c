package store

import (
	"sort"
	"time"

	"worklog/internal/timecalc"
)

// Insert appends a work log. The list is not re-sorted; callers that want
// chronological order invoke OrderByDates explicitly.
func (s *Store) Insert(w WorkLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, w)
}

// InsertAll appends a batch of work logs, e.g. a CSV import. No
// deduplication happens: importing the same file twice doubles every
// record.
func (s *Store) InsertAll(ws []WorkLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, ws...)
}

// Remove deletes the first record equal to w. Removing a record that is
// not in the store is a no-op, not an error.
func (s *Store) Remove(w WorkLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e == w {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// RemoveAll empties the store.
func (s *Store) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// ReplaceAll swaps in a whole new entry list.
func (s *Store) ReplaceAll(ws []WorkLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]WorkLog(nil), ws...)
}

// Snapshot returns a copy of the current entries for consumers that must
// not hold a live reference, such as export and aggregation.
func (s *Store) Snapshot() []WorkLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]WorkLog(nil), s.entries...)
}

// Len reports the current record count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// sortKey is the precomputed ordering key for one record.
type sortKey struct {
	day   time.Time
	start int
	ok    bool
}

// OrderByDates sorts the entries chronologically: by calendar day first,
// then by start time, both ascending. The sort is stable, so records with
// equal keys keep their relative order. Records whose day or start cannot
// be parsed sort to the end instead of failing the whole list.
func (s *Store) OrderByDates() {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]sortKey, len(s.entries))
	for i, e := range s.entries {
		day, dayErr := timecalc.ParseDay(e.Day)
		start, startErr := timecalc.ParseClock(e.Start)
		keys[i] = sortKey{day: day, start: start, ok: dayErr == nil && startErr == nil}
	}

	idx := make([]int, len(s.entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := keys[idx[i]], keys[idx[j]]
		if a.ok != b.ok {
			return a.ok
		}
		if !a.ok {
			return false
		}
		if !a.day.Equal(b.day) {
			return a.day.Before(b.day)
		}
		return a.start < b.start
	})

	sorted := make([]WorkLog, len(s.entries))
	for n, i := range idx {
		sorted[n] = s.entries[i]
	}
	s.entries = sorted
}
