// errors.go — sentinel errors for the interval package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - ErrIndeterminate is the single recoverable condition this package
//     signals; it is always meant to be consumed one frame up, by the
//     kernel's filter boundary. It must never escape a predicate's
//     filter stage.

package interval

import "errors"

// ErrIndeterminate indicates that Sign or ordering could not determine
// a definite result because the interval's bounds straddle zero (or,
// for ordering, overlap). Recoverable: callers fall back to exact
// arithmetic.
var ErrIndeterminate = errors.New("interval: indeterminate sign")

// ErrRoundingScopeUnbalanced indicates a rounding-mode scope was released
// more times than acquired (or not released at all before a new
// acquisition), which would corrupt the outward-rounding guarantee.
// This is a programming error and is never returned to ordinary callers;
// it exists so internal misuse panics loudly instead of silently
// producing unrounded results.
var ErrRoundingScopeUnbalanced = errors.New("interval: rounding scope unbalanced")
