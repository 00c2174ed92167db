// Package xpath resolves textual paths into a canonical form that compares,
// displays and serializes the same way on every operating system, without
// touching the filesystem.
//
// Resolution runs these steps:
//
//  1. A leading "~" or "." shorthand is replaced with the home or current
//     working directory.
//  2. ${NAME} and %NAME% segments are replaced with environment variables.
//  3. A leading drive letter ("c:") or separator marks the path as absolute.
//  4. The rest is split on both '/' and '\', empty and "." components are
//     dropped, and "dir/.." pairs are cancelled.
//  5. Every component is validated against the active [platform.Profile].
//
// The home directory, working directory and variables come from an
// [envctx.Context]; nothing is read from the process unless the resolver
// uses [envctx.Host], which is the default.
//
// Paths keep the casing they were written with, but compare
// case-insensitively:
//
//	a := xpath.MustResolve("/Data/Config.yaml")
//	b := xpath.MustResolve("/data/config.YAML")
//	a.Equal(b) // true
//
// When formatted, "%v" gives the native form, "%+v" the shortest shorthand
// form and "%#v" the in-memory form:
//
//	p := xpath.MustResolve("~/config")
//	fmt.Printf("%v", p)  // /home/tom/config
//	fmt.Printf("%+v", p) // ~/config
//	fmt.Printf("%#v", p) // xpath.Path("/home/tom/config")
package xpath
