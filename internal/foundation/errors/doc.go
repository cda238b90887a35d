// Package errors provides the classified error primitives used across sassdocbuilder.
//
// Every error a command returns should carry an ErrorCategory: it decides the
// default severity, the exit code and how much the CLI prints.
//
//	err := errors.ValidationError("duplicate configuration key").
//		WithContext("field", "groups").
//		WithContext("key", "error").
//		Build()
package errors
