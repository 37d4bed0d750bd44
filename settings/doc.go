// Package settings holds the runtime's configuration: which store the title
// is distributed on, its application identity, and the DLC the user should
// appear to own.
//
// Settings arrive over a framed channel during process attach: an 8-byte
// header selects the loading method (a file path to read, or the JSON
// payload inline) and gives the payload size. File-path mode remembers the
// originating path so effective-identity write-back and DLC list refreshes
// can persist; inline mode never persists.
//
// Per-title collaborators may post-process the parsed document on load and
// append their own fields on save.
package settings
