// Package pathkind provides [xpath.Path] wrappers that only hold a certain
// kind of path, such as an absolute directory.
//
// The kind is checked when a value is created and when it is decoded:
//
//	type Config struct {
//		Output pathkind.AbsDir       `json:"output"`
//		Chart  pathkind.ExistingFile `json:"chart"`
//	}
//
// Relative input is anchored to the working directory for the absolute
// kinds. Encoded values use the contracted form, e.g. "./out" or "~/charts".
package pathkind
