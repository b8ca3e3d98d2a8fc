// Package errors provides structured error types for programmatic error
// handling across the pizza packages.
//
// Every failure surfaced by the core carries an ErrorCode so the command
// layer can tell a rejected ingredient from an unknown pizza without string
// matching:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeUnknownPizza,
//	    "We have not learned that pizza yet",
//	    map[string]any{
//	        "pizza": name,
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeUnknownPizza) {
//	    // report and exit non-zero
//	}
package errors
