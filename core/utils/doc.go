// Package utils provides small conversion helpers for loosely-typed values.
//
// Router API responses decode into map[string]any with no type guarantees;
// these helpers collapse the resulting any values into the types the rest
// of the code actually wants without panicking on surprises.
package utils
