// Package snapshot compares a fresh report of every registered entry with a
// reference file.
//
// Outside recording mode a mismatch prints a line diff and fails without
// touching the file. With RECORD_RESULTS set in the environment the check
// always passes and rewrites the reference whenever it differs.
//
// Checker is used by the "check" command and by Check in the module root.
package snapshot
