// Package validation provides common validation utilities for operation
// arguments across the seqkit library.
//
// This package offers reusable validation functions that help ensure
// consistent error messages and reduce boilerplate code in operators
// that reject bad arguments eagerly.
package validation
