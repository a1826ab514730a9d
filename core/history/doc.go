// Package history persists an audit trail of dhcp_staticlist writes.
//
// Every time the service is about to apply a new list, it records the
// value being replaced together with the host and the operation that
// caused the write. The trail answers "what was on the router before this
// change" without touching the router, and gives bulk recovery something
// to diff against.
//
// The trail lives in MySQL via GORM, mirroring the connection handling of
// the rest of the application: the database is optional, and a failed
// connection downgrades the feature to a warning instead of refusing to
// start.
package history
