// Package xpatherrors provides error definitions for path resolution.
//
// Every resolution failure is an [*InvalidPathError], which matches
// [ErrInvalidPath] with [errors.Is]. Its reason can be tested against the
// more specific sentinels, e.g. [ErrUndefinedEnvVar] or [ErrValidation].
package xpatherrors
