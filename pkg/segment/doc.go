// Package segment splits paths into their components.
//
// Both '/' and '\' are separators on every platform. Empty components and
// '.' components after the first are dropped, and a component directly
// followed by ".." is cancelled together with it. Only directly adjacent
// pairs cancel, and "." or ".." never count as a predecessor: a ".." without
// a concrete predecessor is kept, so callers can tell when a path climbs
// above its starting point.
package segment
