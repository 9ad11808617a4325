// Package types defines the core types and interfaces used throughout ensure.
// This includes the Target being reconciled, the Outcome reported back to the
// caller and the FS interface the reconciler reads and writes through.
package types
