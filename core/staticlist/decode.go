package staticlist

import "strings"

// grammarFunc parses raw input under one delimiter convention. It returns
// the records it recognized and how many fragments it dropped. A grammar
// that yields zero records simply did not match; the next one is tried.
type grammarFunc func(raw string) ([]Reservation, int)

// grammars is the ordered list of candidate conventions. The bracket form
// is tried first: raw data containing both <> and : characters is bracket
// data whose MAC fields happen to contain colons.
var grammars = []struct {
	name  Grammar
	parse grammarFunc
}{
	{GrammarBracket, parseBracket},
	{GrammarColon, parseColon},
}

// Decode parses the router's opaque dhcp_staticlist value into ordered
// Reservation records. Malformed fragments are dropped and counted, never
// fatal. Empty or whitespace-only input decodes to an empty result.
//
// Callers must treat an empty result from non-empty input as "no
// reservations", not as a parse failure, but should log it loudly.
func Decode(raw string) DecodeResult {
	if strings.TrimSpace(raw) == "" {
		return DecodeResult{Grammar: GrammarNone}
	}

	for _, g := range grammars {
		records, skipped := g.parse(raw)
		if len(records) > 0 {
			return DecodeResult{
				Reservations: records,
				Grammar:      g.name,
				Skipped:      skipped,
			}
		}
	}

	return DecodeResult{Grammar: GrammarNone}
}

// parseBracket handles the legacy <MAC>IP>NAME format: records are opened
// by '<' and their fields separated by '>'. A record needs at least three
// fields; anything past the third is ignored.
func parseBracket(raw string) ([]Reservation, int) {
	if !strings.Contains(raw, "<") || !strings.Contains(raw, ">") {
		return nil, 0
	}

	var records []Reservation
	skipped := 0

	for _, entry := range strings.Split(raw, "<") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		parts := strings.Split(entry, ">")
		if len(parts) < 3 {
			skipped++
			continue
		}
		mac := NormalizeMAC(parts[0])
		ip := strings.TrimSpace(parts[1])
		if mac == "" || ip == "" {
			skipped++
			continue
		}
		records = append(records, Reservation{
			MAC:  mac,
			IP:   ip,
			Name: strings.TrimSpace(parts[2]),
		})
	}

	return records, skipped
}

// parseColon handles MAC:IP:NAME records joined by a separator character.
// The separator is detected in priority order: tab, semicolon, newline,
// then space, where space only wins when spaces strictly outnumber colons
// (names routinely contain spaces). With no separator at all the whole
// input is one record.
func parseColon(raw string) ([]Reservation, int) {
	if !strings.Contains(raw, ":") {
		return nil, 0
	}

	var entries []string
	switch {
	case strings.Contains(raw, "\t"):
		entries = strings.Split(raw, "\t")
	case strings.Contains(raw, ";"):
		entries = strings.Split(raw, ";")
	case strings.Contains(raw, "\n"):
		entries = strings.Split(raw, "\n")
	case strings.Count(raw, " ") > strings.Count(raw, ":"):
		entries = strings.Split(raw, " ")
	default:
		entries = []string{raw}
	}

	var records []Reservation
	skipped := 0

	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		rec, ok := parseColonEntry(entry)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	return records, skipped
}

// parseColonEntry splits one record on colons. The MAC itself usually
// contains colons, so an entry with seven or more tokens whose head looks
// like six hex octet pairs takes those six as the MAC. Shorter entries
// carry a compact MAC in the first token.
func parseColonEntry(entry string) (Reservation, bool) {
	tokens := strings.Split(entry, ":")

	var mac, ip, name string
	if len(tokens) >= 7 && looksLikeOctets(tokens[:6]) {
		mac = NormalizeMAC(strings.Join(tokens[:6], ":"))
		ip = strings.TrimSpace(tokens[6])
		if len(tokens) > 7 {
			// Names may themselves contain colons; keep the remainder whole.
			name = strings.TrimSpace(strings.Join(tokens[7:], ":"))
		}
	} else if len(tokens) >= 2 {
		// An entry whose every token is a hex pair is a bare MAC with no
		// IP field, not a compact MAC followed by an address.
		if looksLikeOctets(tokens) {
			return Reservation{}, false
		}
		mac = NormalizeMAC(tokens[0])
		ip = strings.TrimSpace(tokens[1])
		if len(tokens) > 2 {
			name = strings.TrimSpace(tokens[2])
		}
	}

	if mac == "" || ip == "" {
		return Reservation{}, false
	}
	return Reservation{MAC: mac, IP: ip, Name: name}, true
}

// looksLikeOctets reports whether every token is a two-digit hex pair.
func looksLikeOctets(tokens []string) bool {
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if len(tok) != 2 || !isHex(tok[0]) || !isHex(tok[1]) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
