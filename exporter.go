package typf

// ExportedFile is the byte encoding of a render output, plus the metadata an
// HTTP handler or file writer needs: a canonical extension and MIME type.
type ExportedFile struct {
	Bytes     []byte
	Extension string
	MIMEType  string
}

// Exporter converts a render output into an encoded byte buffer, per spec
// §4.4. A raster exporter rejects vector input and vice versa, returning
// ExportFormatNotSupported.
type Exporter interface {
	// Name identifies the backend, used by the registry and in error context.
	Name() string

	// Export encodes a render output. Implementations must not mutate the
	// output they are given.
	Export(output RenderOutput) (ExportedFile, error)

	// SupportsFormat reports whether this backend can encode the named
	// output format ("bitmap" or "vector").
	SupportsFormat(format string) bool
}
