package staticlist_test

import (
	"testing"

	"router-manager/core/staticlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_TabSeparatedColonFormat(t *testing.T) {
	raw := "AA:BB:CC:DD:EE:FF:192.168.1.5:dns01\tBB:CC:DD:EE:FF:AA:192.168.1.6:dns02"

	res := staticlist.Decode(raw)

	require.Len(t, res.Reservations, 2)
	assert.Equal(t, staticlist.GrammarColon, res.Grammar)
	assert.Equal(t, staticlist.Reservation{MAC: "AA:BB:CC:DD:EE:FF", IP: "192.168.1.5", Name: "dns01"}, res.Reservations[0])
	assert.Equal(t, staticlist.Reservation{MAC: "BB:CC:DD:EE:FF:AA", IP: "192.168.1.6", Name: "dns02"}, res.Reservations[1])
}

func TestDecode_BracketFormat(t *testing.T) {
	res := staticlist.Decode("<AA:BB:CC:DD:EE:FF>192.168.1.5>dns01")

	require.Len(t, res.Reservations, 1)
	assert.Equal(t, staticlist.GrammarBracket, res.Grammar)
	assert.Equal(t, staticlist.Reservation{MAC: "AA:BB:CC:DD:EE:FF", IP: "192.168.1.5", Name: "dns01"}, res.Reservations[0])
}

func TestDecode_BracketTakesPriorityOverColon(t *testing.T) {
	// Bracket data always contains colons inside the MAC field; it must
	// still be read as bracket data.
	raw := "<AA:BB:CC:DD:EE:FF>192.168.1.5>dns01<BB:CC:DD:EE:FF:AA>192.168.1.6>dns02"

	res := staticlist.Decode(raw)

	assert.Equal(t, staticlist.GrammarBracket, res.Grammar)
	require.Len(t, res.Reservations, 2)
	assert.Equal(t, "BB:CC:DD:EE:FF:AA", res.Reservations[1].MAC)
}

func TestDecode_Separators(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"Tab", "AA:BB:CC:DD:EE:FF:10.0.0.1:a\tBB:CC:DD:EE:FF:AA:10.0.0.2:b", 2},
		{"Semicolon", "AA:BB:CC:DD:EE:FF:10.0.0.1:a;BB:CC:DD:EE:FF:AA:10.0.0.2:b", 2},
		{"Newline", "AA:BB:CC:DD:EE:FF:10.0.0.1:a\nBB:CC:DD:EE:FF:AA:10.0.0.2:b", 2},
		{"SingleEntryNoSeparator", "AA:BB:CC:DD:EE:FF:10.0.0.1:a", 1},
		{"SingleEntryNoName", "AA:BB:CC:DD:EE:FF:10.0.0.1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := staticlist.Decode(tt.raw)
			assert.Equal(t, staticlist.GrammarColon, res.Grammar)
			assert.Len(t, res.Reservations, tt.want)
		})
	}
}

func TestDecode_SpaceSeparatorNeedsMoreSpacesThanColons(t *testing.T) {
	// Two spaces between records pushes the space count past the colon
	// count, which is the condition for space being the record separator.
	res := staticlist.Decode("x:10.0.0.1  y:10.0.0.2  z:10.0.0.3")

	require.Len(t, res.Reservations, 3)
	assert.Equal(t, "X", res.Reservations[0].MAC)
	assert.Equal(t, "10.0.0.3", res.Reservations[2].IP)
}

func TestDecode_SpacesInsideNamesAreNotSeparators(t *testing.T) {
	// One space, eight colons: the space heuristic must not fire, so the
	// name keeps its space.
	res := staticlist.Decode("AA:BB:CC:DD:EE:FF:192.168.1.9:Pool Controller")

	require.Len(t, res.Reservations, 1)
	assert.Equal(t, "Pool Controller", res.Reservations[0].Name)
}

func TestDecode_CompactMAC(t *testing.T) {
	res := staticlist.Decode("aabbccddeeff:192.168.1.5:dns01")

	require.Len(t, res.Reservations, 1)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", res.Reservations[0].MAC)
}

func TestDecode_NormalizesAndTrims(t *testing.T) {
	res := staticlist.Decode("aa:bb:cc:dd:ee:ff: 192.168.1.5 : dns01 ")

	require.Len(t, res.Reservations, 1)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", res.Reservations[0].MAC)
	assert.Equal(t, "192.168.1.5", res.Reservations[0].IP)
	assert.Equal(t, "dns01", res.Reservations[0].Name)
}

func TestDecode_SkipsFragmentsWithoutIdentity(t *testing.T) {
	// Second entry has no IP, third has no MAC. Both are dropped and
	// counted, neither is fatal.
	raw := "AA:BB:CC:DD:EE:FF:10.0.0.1:ok\tBB:CC:DD:EE:FF:AA\t:10.0.0.3:orphan"

	res := staticlist.Decode(raw)

	require.Len(t, res.Reservations, 1)
	assert.Equal(t, "ok", res.Reservations[0].Name)
	assert.Equal(t, 2, res.Skipped)
}

func TestDecode_EmptyInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"Whitespace", "   \t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := staticlist.Decode(tt.raw)
			assert.True(t, res.Empty())
			assert.Equal(t, staticlist.GrammarNone, res.Grammar)
			assert.Equal(t, 0, res.Skipped)
		})
	}
}

func TestDecode_UnrecognizableInput(t *testing.T) {
	res := staticlist.Decode("not a reservation list at all")

	assert.True(t, res.Empty())
	assert.Equal(t, staticlist.GrammarNone, res.Grammar)
}

func TestDecode_RoundTripThroughCanonicalGrammar(t *testing.T) {
	records := []staticlist.Reservation{
		{MAC: "AA:BB:CC:DD:EE:FF", IP: "192.168.1.5", Name: "dns01"},
		{MAC: "BC:24:11:B0:04:E0", IP: "192.168.1.240", Name: ""},
		{MAC: "18:66:DA:66:86:31", IP: "192.168.1.55", Name: "Proxmox"},
	}

	encoded, skipped := staticlist.Encode(records)
	require.Zero(t, skipped)

	res := staticlist.Decode(encoded)
	assert.Equal(t, records, res.Reservations)

	// encode(decode(encode(R))) == encode(R)
	again, _ := staticlist.Encode(res.Reservations)
	assert.Equal(t, encoded, again)
}

func TestNormalizeMAC(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"AlreadyCanonical", "AA:BB:CC:DD:EE:FF", "AA:BB:CC:DD:EE:FF"},
		{"Lowercase", "aa:bb:cc:dd:ee:ff", "AA:BB:CC:DD:EE:FF"},
		{"Hyphens", "aa-bb-cc-dd-ee-ff", "AA:BB:CC:DD:EE:FF"},
		{"Bare", "aabbccddeeff", "AA:BB:CC:DD:EE:FF"},
		{"Dotted", "aabb.ccdd.eeff", "AA:BB:CC:DD:EE:FF"},
		{"Whitespace", "  aa:bb:cc:dd:ee:ff ", "AA:BB:CC:DD:EE:FF"},
		{"Unparseable", "not-a-mac", "NOT-A-MAC"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, staticlist.NormalizeMAC(tt.in))
		})
	}
}
