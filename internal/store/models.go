package store

// WorkLog is one recorded shift. Day is free-form "D/M/YYYY" text and the
// clock times are "HH:MM"; none of the three are validated on the record
// itself, they are parsed on demand. Duration is stored at creation time
// and is not recomputed if the fields change. IsNight is user-supplied and
// independent of the actual clock times.
//
// Records have no identity beyond their values: two logs are the same
// record exactly when all five fields match.
type WorkLog struct {
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int    `json:"duration"`
	IsNight  bool   `json:"isNight"`
}
