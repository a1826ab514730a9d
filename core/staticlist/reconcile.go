package staticlist

import (
	"errors"
	"strings"
)

var (
	// ErrMissingIdentity means a candidate lacks a MAC or an IP and can
	// never be persisted.
	ErrMissingIdentity = errors.New("reservation is missing mac or ip")

	// ErrWouldErase means an operation on a non-empty list would have
	// produced an empty one. Writing that result back would wipe every
	// reservation on the router, so it is treated as fatal and no output
	// is produced.
	ErrWouldErase = errors.New("refusing to reduce a non-empty reservation list to empty")
)

// ReconcileOne merges a single candidate into an existing list. If a record
// with the candidate's MAC exists (case-insensitive) its IP and name are
// replaced in place, keeping its position; otherwise the candidate is
// appended. The input slice is not mutated.
//
// The returned bool reports whether anything actually changed: re-applying
// the same candidate a second time returns false, so callers can skip the
// router write entirely.
func ReconcileOne(existing []Reservation, candidate Reservation) ([]Reservation, bool, error) {
	mac := NormalizeMAC(candidate.MAC)
	ip := strings.TrimSpace(candidate.IP)
	name := strings.TrimSpace(candidate.Name)
	if mac == "" || ip == "" {
		return nil, false, ErrMissingIdentity
	}

	updated := make([]Reservation, len(existing))
	copy(updated, existing)

	changed := false
	found := false
	for i := range updated {
		if !equalMAC(updated[i].MAC, mac) {
			continue
		}
		found = true
		if updated[i].IP != ip || updated[i].Name != name {
			updated[i].IP = ip
			updated[i].Name = name
			changed = true
		}
		break
	}

	if !found {
		updated = append(updated, Reservation{MAC: mac, IP: ip, Name: name})
		changed = true
	}

	// Cannot happen with a well-formed candidate, but the cost of a wiped
	// router list warrants the check.
	if len(existing) > 0 && len(updated) == 0 {
		return nil, false, ErrWouldErase
	}

	return updated, changed, nil
}

// ReconcileMany restores candidates into an existing list, additive only.
// Its purpose is bringing back entries that vanished, not overwriting
// entries that survived, so candidates matching an existing record are
// skipped rather than updated.
//
// Candidates without a MAC or an IP are skipped and counted; their identity
// could not be determined upstream and must not be fabricated. Existence is
// checked by MAC against the existing list and against candidates already
// added in this batch. With matchByIPToo an IP match alone also counts as
// existing: a second MAC mapping to the same address usually means stale
// data, not a new host. Existing entries keep their position; additions are
// appended in candidate order.
func ReconcileMany(existing []Reservation, candidates []Reservation, matchByIPToo bool) ([]Reservation, int, int) {
	updated := make([]Reservation, len(existing))
	copy(updated, existing)

	added := 0
	skipped := 0

	for _, c := range candidates {
		mac := NormalizeMAC(c.MAC)
		ip := strings.TrimSpace(c.IP)
		if mac == "" || ip == "" {
			skipped++
			continue
		}

		exists := false
		for _, r := range updated {
			if equalMAC(r.MAC, mac) || (matchByIPToo && r.IP == ip) {
				exists = true
				break
			}
		}
		if exists {
			skipped++
			continue
		}

		updated = append(updated, Reservation{
			MAC:  mac,
			IP:   ip,
			Name: strings.TrimSpace(c.Name),
		})
		added++
	}

	return updated, added, skipped
}
