// Package reconcile converges a single file to an exact desired content.
//
// A reconciliation reads the target, compares it to the desired string and
// writes only when they differ:
//
//	unread -> unchanged   content already matches, or dry run
//	unread -> written     content differed and was written
//	unread -> failed      the write (or, under the fail policy, the read) failed
//
// Dry runs stop before the read, so their message never says whether a
// write would have happened. A file that cannot be read is treated like a
// missing one unless the reconciler is configured to fail on read errors.
//
// Nothing is locked: two reconciliations of the same path race on
// read-then-write, and a failed write may leave a truncated file behind.
package reconcile
