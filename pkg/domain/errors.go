/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy for the IO Crosscheck engine. Per-record errors
are collected as diagnostics and never abort a run; ConfigError and
InternalInvariantError are the only fatal classes.
*/

package domain

import "fmt"

// InputShapeError marks a record malformed beyond recovery (e.g. a COMMENT
// with no specifier). The offending record is skipped; this is collected
// into a Diagnostics slice, never returned as a fatal error.
type InputShapeError struct {
	SourceLine int
	SourceRow  int
	Reason     string
}

func (e *InputShapeError) Error() string {
	if e.SourceLine != 0 {
		return fmt.Sprintf("input shape error at line %d: %s", e.SourceLine, e.Reason)
	}
	return fmt.Sprintf("input shape error at row %d: %s", e.SourceRow, e.Reason)
}

// InternalInvariantError signals a violation of one of the engine's own
// invariants. It is a bug, not a data problem: the engine must fail loudly
// rather than emit a partial result.
type InternalInvariantError struct {
	Invariant string
	Detail    string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated (%s): %s", e.Invariant, e.Detail)
}

// Diagnostic is one entry in the run's diagnostics stream: a per-record
// error that did not abort the run.
type Diagnostic struct {
	Err  error
	Note string
}
