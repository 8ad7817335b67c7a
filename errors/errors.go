// Package errors provides error handling for typeport.
//
// It re-exports github.com/cockroachdb/errors so the rest of the
// module gets stack traces, wrapping, and assertion errors from one
// import path:
//
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Error creation and wrapping.
var (
	New       = crdb.New
	Newf      = crdb.Newf
	Wrap      = crdb.Wrap
	Wrapf     = crdb.Wrapf
	WithStack = crdb.WithStack
	WithHint  = crdb.WithHint
)

// Error inspection.
var (
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// AssertionFailedf marks internal contract violations: conditions a
// correct caller can never produce.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors shared across typeport.
var (
	// ErrUnknownDialect indicates a dialect value the module does not
	// recognize; a caller contract violation, never a silent default.
	ErrUnknownDialect = New("unknown dialect")
)
