package staticlist

import "strings"

// Encode serializes records into the one canonical grammar the router
// accepts for writes: MAC:IP:NAME fields joined by tabs, no leading or
// trailing tab. The name field may be empty, which produces a trailing
// empty field for that record.
//
// Records missing a MAC or an IP are excluded and counted in the second
// return value so callers can surface the exclusion. An empty input
// encodes to the empty string.
func Encode(records []Reservation) (string, int) {
	if len(records) == 0 {
		return "", 0
	}

	entries := make([]string, 0, len(records))
	skipped := 0

	for _, r := range records {
		mac := NormalizeMAC(r.MAC)
		ip := strings.TrimSpace(r.IP)
		if mac == "" || ip == "" {
			skipped++
			continue
		}
		entries = append(entries, mac+":"+ip+":"+strings.TrimSpace(r.Name))
	}

	return strings.Join(entries, "\t"), skipped
}
