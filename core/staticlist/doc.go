// Package staticlist implements the DHCP reservation list codec and
// reconciliation engine for the router's dhcp_staticlist NVRAM value.
//
// The router stores all static DHCP reservations as one opaque delimited
// string. The delimiter convention is not guaranteed by any schema and has
// been observed to differ between firmware versions. This package turns that
// string into structured records, merges candidate reservations into them
// without losing untouched entries, and serializes the result back into the
// one format the router accepts for writes.
//
// # Components
//
//   - Decode: format-detecting parser. Tries an ordered list of grammars
//     (bracket-delimited legacy format first, then colon fields with a
//     detected record separator) and returns the records plus diagnostics.
//   - Encode: canonical serializer (colon-separated fields, tab-separated
//     records). The inverse of Decode for the canonical grammar only.
//   - ReconcileOne / ReconcileMany: merge candidates into an existing list
//     keyed by MAC address, preserving the position of untouched entries.
//
// # Purity
//
// Everything in this package is a deterministic function of its inputs:
// no I/O, no logging, no shared state. Decisions that callers may want to
// report (skipped fragments, which grammar matched) are returned as values,
// never printed. Serializing access to the router around a
// fetch-reconcile-apply cycle is the caller's job.
package staticlist
