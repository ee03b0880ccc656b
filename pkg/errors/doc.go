// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to list pods",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "namespace": namespace,
//	        "resource": "pods",
//	    },
//	)
package errors
