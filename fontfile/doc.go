// Package fontfile provides a concrete Font implementation backed by real
// OpenType/TrueType font files, for callers that need one rather than
// supplying their own Font adapter. It is not imported by any core typf
// file: font-file parsing is an external collaborator's concern, the core
// only consumes the Font interface.
package fontfile
