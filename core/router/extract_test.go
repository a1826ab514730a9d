package router_test

import (
	"testing"

	"router-manager/core/router"

	"github.com/stretchr/testify/assert"
)

func TestExtractStaticList(t *testing.T) {
	const list = "AA:BB:CC:DD:EE:FF:192.168.1.5:dns01"

	tests := []struct {
		name      string
		data      map[string]any
		want      string
		wantFound bool
	}{
		{
			name:      "TopLevel",
			data:      map[string]any{"dhcp_staticlist": list},
			want:      list,
			wantFound: true,
		},
		{
			name:      "NestedUnderNvramGet",
			data:      map[string]any{"nvram_get": map[string]any{"dhcp_staticlist": list}},
			want:      list,
			wantFound: true,
		},
		{
			name:      "KeySubstring",
			data:      map[string]any{"nvram_get(dhcp_staticlist)": list},
			want:      list,
			wantFound: true,
		},
		{
			name:      "NullValueIsEmptyList",
			data:      map[string]any{"dhcp_staticlist": nil},
			want:      "",
			wantFound: true,
		},
		{
			name:      "Missing",
			data:      map[string]any{"wl0_ssid": "HomeNet"},
			want:      "",
			wantFound: false,
		},
		{
			name:      "NilData",
			data:      nil,
			want:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := router.ExtractStaticList(tt.data)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}
