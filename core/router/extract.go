package router

import (
	"strings"

	"router-manager/core/utils"
)

// ExtractStaticList locates the dhcp_staticlist value in an appGet
// response. The value has been observed at the top level, nested under
// "nvram_get", and under keys that merely contain "dhcp_staticlist"
// depending on firmware. The bool reports whether any of those shapes
// matched; a found-but-empty value is a legitimate empty list.
func ExtractStaticList(data map[string]any) (string, bool) {
	if data == nil {
		return "", false
	}

	if v, ok := data["dhcp_staticlist"]; ok {
		return utils.ToString(v), true
	}

	if nested, ok := data["nvram_get"].(map[string]any); ok {
		if v, ok := nested["dhcp_staticlist"]; ok {
			return utils.ToString(v), true
		}
	}

	for key, v := range data {
		if strings.Contains(strings.ToLower(key), "dhcp_staticlist") {
			return utils.ToString(v), true
		}
	}

	return "", false
}
