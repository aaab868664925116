package domain

import (
	"time"
)

// DisplayDateLayout renders a record's creation day, e.g. "Mon, Jan 5".
const DisplayDateLayout = "Mon, Jan 2"

// WorkoutDraft is the user-submitted part of a workout before the store
// assigns identity and time.
type WorkoutDraft struct {
	Exercise string   `json:"exercise"`
	Sets     int      `json:"sets"`
	Reps     int      `json:"reps"`
	Weight   *float64 `json:"weight,omitempty"` // Optional, kilos
}

// WorkoutRecord is one logged exercise entry owned by exactly one account.
type WorkoutRecord struct {
	ID          string   `json:"id"`
	AccountID   string   `json:"accountId"`
	Exercise    string   `json:"exercise"`
	Sets        int      `json:"sets"`
	Reps        int      `json:"reps"`
	Weight      *float64 `json:"weight"`    // nil when the draft had no weight
	Timestamp   int64    `json:"timestamp"` // Unix milliseconds of creation
	DisplayDate string   `json:"date"`
}

// Time returns the creation instant.
func (w WorkoutRecord) Time() time.Time {
	return time.UnixMilli(w.Timestamp)
}

// Volume is sets * reps * max(weight, 1).
func (w WorkoutRecord) Volume() float64 {
	load := 1.0
	if w.Weight != nil && *w.Weight > load {
		load = *w.Weight
	}
	return float64(w.Sets) * float64(w.Reps) * load
}

// WorkoutIndex maps an account id to that account's records in creation order.
type WorkoutIndex map[string][]WorkoutRecord

// For returns a copy of the account's records, never nil.
func (idx WorkoutIndex) For(accountID string) []WorkoutRecord {
	records := idx[accountID]
	out := make([]WorkoutRecord, 0, len(records))
	for _, r := range records {
		if r.AccountID == accountID {
			out = append(out, r)
		}
	}
	return out
}

// Has reports whether the account already owns a record with the given id.
func (idx WorkoutIndex) Has(accountID, id string) bool {
	for _, r := range idx[accountID] {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Append adds the record to the end of its owner's sequence.
func (idx WorkoutIndex) Append(record WorkoutRecord) {
	idx[record.AccountID] = append(idx[record.AccountID], record)
}

// Remove drops the record with the given id from accountID's sequence only.
// It reports whether anything was removed.
func (idx WorkoutIndex) Remove(accountID, id string) bool {
	records, ok := idx[accountID]
	if !ok {
		return false
	}
	kept := make([]WorkoutRecord, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return false
	}
	idx[accountID] = kept
	return true
}
