package colorglyph

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"io"
)

// SVG table format errors.
var (
	ErrNoSVGTable      = errors.New("colorglyph: font has no SVG table")
	ErrInvalidSVGData  = errors.New("colorglyph: invalid SVG table data")
	ErrGlyphNotInSVG   = errors.New("colorglyph: glyph not found in SVG table")
)

// SVGParser parses the raw OpenType "SVG " table: a list of (glyph-id range,
// SVG document) records. Document bytes may be gzip-compressed per the
// OpenType spec's optional compression convention; ParseDocument transparently
// decompresses when it sees a gzip header.
//
// This is extraction only — no path/shape parsing of the SVG document
// itself, which is out of this engine's scope (an external rendering
// engine consumes the returned bytes, per the font-handle/render-output
// boundary in spec §6).
type SVGParser struct {
	data    []byte
	records []svgDocumentRecord
}

type svgDocumentRecord struct {
	startGlyphID uint16
	endGlyphID   uint16
	offset       uint32
	length       uint32
}

// NewSVGParser parses the raw "SVG " table data.
func NewSVGParser(data []byte) (*SVGParser, error) {
	if len(data) == 0 {
		return nil, ErrNoSVGTable
	}
	if len(data) < 10 {
		return nil, ErrInvalidSVGData
	}

	docListOffset := binary.BigEndian.Uint32(data[2:6])
	if int(docListOffset)+2 > len(data) {
		return nil, ErrInvalidSVGData
	}

	listData := data[docListOffset:]
	numEntries := binary.BigEndian.Uint16(listData[0:2])

	const recordSize = 12
	p := &SVGParser{data: data, records: make([]svgDocumentRecord, 0, numEntries)}
	for i := uint16(0); i < numEntries; i++ {
		pos := 2 + int(i)*recordSize
		if pos+recordSize > len(listData) {
			return nil, ErrInvalidSVGData
		}
		p.records = append(p.records, svgDocumentRecord{
			startGlyphID: binary.BigEndian.Uint16(listData[pos : pos+2]),
			endGlyphID:   binary.BigEndian.Uint16(listData[pos+2 : pos+4]),
			offset:       binary.BigEndian.Uint32(listData[pos+4:pos+8]) + docListOffset,
			length:       binary.BigEndian.Uint32(listData[pos+8 : pos+12]),
		})
	}
	return p, nil
}

// HasGlyph reports whether a glyph falls within any document's glyph range.
func (p *SVGParser) HasGlyph(glyphID uint16) bool {
	_, ok := p.findRecord(glyphID)
	return ok
}

// Document returns the raw (possibly gzip-compressed) SVG document bytes
// covering glyphID.
func (p *SVGParser) Document(glyphID uint16) ([]byte, error) {
	rec, ok := p.findRecord(glyphID)
	if !ok {
		return nil, ErrGlyphNotInSVG
	}
	start, end := rec.offset, rec.offset+rec.length
	if int(end) > len(p.data) {
		return nil, ErrInvalidSVGData
	}
	return p.data[start:end], nil
}

// ParseDocument is Document plus transparent gzip decompression.
func (p *SVGParser) ParseDocument(glyphID uint16) ([]byte, error) {
	raw, err := p.Document(glyphID)
	if err != nil {
		return nil, err
	}
	if len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b {
		r, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	}
	return raw, nil
}

func (p *SVGParser) findRecord(glyphID uint16) (svgDocumentRecord, bool) {
	for _, rec := range p.records {
		if glyphID >= rec.startGlyphID && glyphID <= rec.endGlyphID {
			return rec, true
		}
	}
	return svgDocumentRecord{}, false
}
