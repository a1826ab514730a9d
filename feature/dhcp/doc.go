// Package dhcp implements the DHCP reservation management feature.
//
// It fronts one operation family: read-modify-write of the router's
// dhcp_staticlist NVRAM value. The heavy lifting lives in core/staticlist
// (decode, reconcile, encode); this package supplies the orchestration
// around it:
//
//  1. Fetch the raw list through a core/router client.
//  2. Decode and reconcile in memory.
//  3. Snapshot the previous value (audit trail and object storage).
//  4. Encode and apply the result, restarting the DHCP service.
//
// The whole cycle runs under a per-router lock so two concurrent requests
// can never interleave their read-modify-write sequences.
//
// # Components
//
//   - Service: orchestrates fetch → reconcile → snapshot → apply.
//   - Handler: exposes the HTTP endpoints (test, list, add, restore, history).
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /test : verify credentials, return the current reservations.
//   - POST /dhcp-reservations : list reservations with decode diagnostics.
//   - POST /dhcp-reservation : add or update a single reservation.
//   - POST /dhcp-reservations/restore : bulk-restore missing reservations.
//   - GET  /dhcp-reservations/history : recent staticlist snapshots.
package dhcp
