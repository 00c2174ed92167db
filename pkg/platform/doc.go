// Package platform describes how paths are rendered and which component
// names are accepted on each supported family of operating systems.
//
// A [Profile] is one of [Unix], [UnixStrict] or [Windows]. Linux, macOS and
// other Unix-like systems only forbid NUL and ':' in component names. Windows,
// and the strict Unix profile, additionally forbid control characters, the
// characters `" * / < > ? \ |`, and the reserved device names CON, PRN, AUX,
// NUL, COM0-COM9 and LPT0-LPT9 (with or without an extension). Use the strict
// profile to make sure paths written on Unix also work on Windows.
package platform
