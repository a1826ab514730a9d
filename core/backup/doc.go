// Package backup archives raw dhcp_staticlist values to object storage.
//
// Every write to the router first stores a timestamped copy of the value
// being replaced, so a bad reconciliation can always be rolled back by
// re-applying the previous snapshot. Snapshots live under
// staticlist/<host>/<timestamp>.txt in a dedicated bucket.
//
// The storage client is an interface over the MinIO SDK with a testify
// mock in the mocks subpackage; the feature works against any
// S3-compatible endpoint.
package backup
