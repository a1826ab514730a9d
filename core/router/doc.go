// Package router provides the HTTP client for ASUS routers.
//
// It speaks the stock ASUSWRT web API: token login via login.cgi, NVRAM
// reads via appGet.cgi hooks, and configuration writes via applyapp.cgi.
// The only NVRAM value this application cares about is dhcp_staticlist,
// so the Client interface exposes exactly that: read the list, write the
// list and restart dnsmasq, and a connectivity check.
//
// # Response Tolerance
//
// Firmware versions disagree on the response shape for NVRAM hooks: the
// value can sit at the top level, nested under "nvram_get", or under a key
// that merely contains "dhcp_staticlist". ExtractStaticList handles all
// three so callers never see the difference.
//
// # Testing
//
// The Client interface has a hand-written testify mock in the mocks
// subpackage, mirroring how the rest of the codebase mocks external
// collaborators.
package router
