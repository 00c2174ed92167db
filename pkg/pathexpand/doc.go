// Package pathexpand expands the shorthand and variable references that
// portable paths may contain, and contracts absolute paths back into
// shorthand for display.
//
// A path starting with "~" or "." followed by a separator (or nothing) is
// relative to the home or current working directory:
//
//	~/config  ->  /home/tom/config
//	./data    ->  /srv/app/data
//
// A path segment of the form ${NAME} or %NAME% is replaced with the value of
// the environment variable NAME. The reference must make up the whole
// segment, so "hi${NAME}", "${NAME}hi", "$NAME" and "${MY-NAME}" are all
// left as they are.
package pathexpand
