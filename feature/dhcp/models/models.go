package models

import "router-manager/core/staticlist"

// Credentials identifies and authenticates against one router. They arrive
// per request; fields left empty fall back to the configured defaults.
type Credentials struct {
	// Host is the router address.
	Host string `json:"host"`
	// Username is the web UI login user.
	Username string `json:"username"`
	// Password is the web UI login password.
	Password string `json:"password"`
	// UseHTTPS selects TLS. Defaults to true when omitted.
	UseHTTPS *bool `json:"useHttps"`
}

// AddRequest is the payload for adding or updating a single reservation.
type AddRequest struct {
	Credentials
	Mac  string `json:"mac"`
	IP   string `json:"ip"`
	Name string `json:"name"`
}

// RestoreRequest is the payload for bulk recovery.
type RestoreRequest struct {
	Credentials
	// Reservations are the candidates to restore. Entries without a MAC
	// are skipped, never fabricated.
	Reservations []staticlist.Reservation `json:"reservations"`
	// MatchByIP also treats an IP match alone as "already exists".
	MatchByIP bool `json:"matchByIp"`
	// DryRun reconciles without writing anything to the router.
	DryRun bool `json:"dryRun"`
}

// ListResponse carries the decoded reservations plus the decode decisions,
// so clients can tell "empty list" from "unrecognized format".
type ListResponse struct {
	Success      bool                     `json:"success"`
	Reservations []staticlist.Reservation `json:"reservations"`
	Grammar      staticlist.Grammar       `json:"grammar"`
	Skipped      int                      `json:"skipped"`
	Warning      string                   `json:"warning,omitempty"`
}

// AddResponse reports the outcome of a single add/update.
type AddResponse struct {
	Success bool   `json:"success"`
	Changed bool   `json:"changed"`
	Mac     string `json:"mac"`
	IP      string `json:"ip"`
	Name    string `json:"name"`
}

// RestoreReport summarizes one bulk recovery run.
type RestoreReport struct {
	// Added is how many candidates were appended.
	Added int `json:"added"`
	// Skipped counts candidates dropped for missing identity or because
	// they already existed.
	Skipped int `json:"skipped"`
	// Total is the reservation count after reconciliation.
	Total int `json:"total"`
	// DryRun reports whether the result was written to the router.
	DryRun bool `json:"dryRun"`
}
