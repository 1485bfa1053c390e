package colorglyph

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"testing"
)

// buildSVGTable constructs a minimal synthetic "SVG " table with one
// document record covering glyph 5, holding the given document bytes.
func buildSVGTable(t *testing.T, doc []byte) []byte {
	t.Helper()
	const docListOffset = 10
	const recordSize = 12
	docOffset := docListOffset + 2 + recordSize

	buf := make([]byte, docOffset+len(doc))
	binary.BigEndian.PutUint16(buf[0:2], 0)
	binary.BigEndian.PutUint32(buf[2:6], docListOffset)
	binary.BigEndian.PutUint16(buf[docListOffset:docListOffset+2], 1)

	recPos := docListOffset + 2
	binary.BigEndian.PutUint16(buf[recPos:recPos+2], 5)   // startGlyphID
	binary.BigEndian.PutUint16(buf[recPos+2:recPos+4], 5) // endGlyphID
	binary.BigEndian.PutUint32(buf[recPos+4:recPos+8], uint32(docOffset-docListOffset))
	binary.BigEndian.PutUint32(buf[recPos+8:recPos+12], uint32(len(doc)))

	copy(buf[docOffset:], doc)
	return buf
}

func TestSVGParserFindsGlyphInRange(t *testing.T) {
	data := buildSVGTable(t, []byte("<svg></svg>"))
	p, err := NewSVGParser(data)
	if err != nil {
		t.Fatalf("NewSVGParser failed: %v", err)
	}
	if !p.HasGlyph(5) {
		t.Error("expected glyph 5 to be covered")
	}
	if p.HasGlyph(6) {
		t.Error("expected glyph 6 to be outside any record's range")
	}
}

func TestSVGParserDocumentReturnsRawBytes(t *testing.T) {
	want := []byte("<svg><path/></svg>")
	data := buildSVGTable(t, want)
	p, err := NewSVGParser(data)
	if err != nil {
		t.Fatalf("NewSVGParser failed: %v", err)
	}
	got, err := p.Document(5)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Document bytes = %q, want %q", got, want)
	}
}

func TestSVGParserParseDocumentDecompressesGzip(t *testing.T) {
	raw := []byte("<svg><circle/></svg>")
	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	if _, err := w.Write(raw); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}

	data := buildSVGTable(t, gz.Bytes())
	p, err := NewSVGParser(data)
	if err != nil {
		t.Fatalf("NewSVGParser failed: %v", err)
	}
	got, err := p.ParseDocument(5)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("decompressed bytes = %q, want %q", got, raw)
	}
}

func TestSVGParserMissingGlyphErrors(t *testing.T) {
	data := buildSVGTable(t, []byte("<svg/>"))
	p, err := NewSVGParser(data)
	if err != nil {
		t.Fatalf("NewSVGParser failed: %v", err)
	}
	if _, err := p.Document(99); err != ErrGlyphNotInSVG {
		t.Errorf("expected ErrGlyphNotInSVG, got %v", err)
	}
}

func TestNewSVGParserRejectsEmptyData(t *testing.T) {
	if _, err := NewSVGParser(nil); err != ErrNoSVGTable {
		t.Errorf("expected ErrNoSVGTable, got %v", err)
	}
}
