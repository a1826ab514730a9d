package staticlist

import (
	"net"
	"strings"
)

// Reservation is a single static DHCP mapping as stored on the router.
// The MAC address is the identity; two reservations with the same MAC
// (case-insensitive) are the same reservation.
type Reservation struct {
	// MAC is the hardware address, canonically six upper-case hex octet
	// pairs joined by colons (AA:BB:CC:DD:EE:FF).
	MAC string `json:"mac"`

	// IP is the reserved address as a dotted-quad string. Opaque here;
	// reachability and subnet membership are not this package's concern.
	IP string `json:"ip"`

	// Name is the friendly label shown in the router UI. May be empty.
	Name string `json:"name"`
}

// Grammar identifies which delimiter convention Decode recognized.
type Grammar string

const (
	// GrammarBracket is the legacy <MAC>IP>NAME format.
	GrammarBracket Grammar = "bracket"
	// GrammarColon is MAC:IP:NAME records joined by a separator character.
	GrammarColon Grammar = "colon"
	// GrammarNone means no grammar yielded any record.
	GrammarNone Grammar = "none"
)

// DecodeResult carries the decoded records plus the decisions Decode made,
// so callers and tests can assert on them without parsing log output.
type DecodeResult struct {
	// Reservations holds the decoded records in their original order.
	Reservations []Reservation `json:"reservations"`

	// Grammar is the delimiter convention that produced the records.
	Grammar Grammar `json:"grammar"`

	// Skipped counts record fragments that were dropped because they
	// lacked a MAC or an IP. Dropped fragments are never fatal.
	Skipped int `json:"skipped"`
}

// Empty reports whether decoding yielded no records. A non-empty raw input
// that decodes empty deserves a loud warning from the caller: it is
// indistinguishable from "the format changed" vs "the list was emptied".
func (r DecodeResult) Empty() bool {
	return len(r.Reservations) == 0
}

// NormalizeMAC canonicalizes a hardware address to six upper-case hex octet
// pairs joined by colons. Inputs with hyphens, dots, or no separators at all
// are accepted. Anything net.ParseMAC cannot make sense of is returned
// trimmed and upper-cased as-is; the decoder is lenient on purpose.
func NormalizeMAC(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	candidate := s
	// Bare 12-hex-digit form needs colons inserted before net.ParseMAC
	// will take it.
	if len(s) == 12 && !strings.ContainsAny(s, ":-.") {
		var b strings.Builder
		for i := 0; i < 12; i += 2 {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(s[i : i+2])
		}
		candidate = b.String()
	}

	hw, err := net.ParseMAC(candidate)
	if err != nil || len(hw) != 6 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(hw.String())
}

// equalMAC compares two MAC addresses case-insensitively.
func equalMAC(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
