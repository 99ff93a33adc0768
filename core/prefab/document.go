package prefab

import "strings"

// Delimiter marks the start of a record block. The leading newline belongs to
// the preceding segment.
const Delimiter = "\n---"

// Document is a parsed multi-document file.
type Document struct {
	// Header is the text before the first block, newline terminated.
	Header string
	// Blocks are the record blocks in document order.
	Blocks []Block
}

// Block is one record of a document.
type Block struct {
	// Body is the verbatim text of the record, starting with its "---" line.
	Body string
	// ID is the per-document identifier following '&' on the first line.
	ID uint64
	// Descriptor identifies the record independently of ID.
	Descriptor Descriptor
}

// String serializes the document: the header followed by every block body.
func (d *Document) String() string {
	var b strings.Builder
	size := len(d.Header)
	for _, blk := range d.Blocks {
		size += len(blk.Body)
	}
	b.Grow(size)
	b.WriteString(d.Header)
	for _, blk := range d.Blocks {
		b.WriteString(blk.Body)
	}
	return b.String()
}

// Split breaks raw into the header and the block texts. Every returned segment
// is a substring of raw and ends with a newline, so joining header and blocks
// reproduces raw exactly.
func Split(raw string) (header string, blocks []string, err error) {
	if raw == "" {
		return "", nil, parseErrorf(-1, "empty document")
	}
	if raw[len(raw)-1] != '\n' {
		return "", nil, parseErrorf(-1, "missing trailing newline")
	}

	start := 0
	first := true
	for start < len(raw) {
		end := len(raw)
		if i := strings.Index(raw[start:], Delimiter); i >= 0 {
			end = start + i + 1
		}
		if first {
			header = raw[start:end]
			first = false
		} else {
			blocks = append(blocks, raw[start:end])
		}
		start = end
	}
	return header, blocks, nil
}

// Parse splits raw and describes every block with the markers of d.
func (d Dialect) Parse(raw string) (*Document, error) {
	header, texts, err := Split(raw)
	if err != nil {
		return nil, err
	}

	names, err := d.ExtractNames(texts)
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, 0, len(texts))
	for i, text := range texts {
		blk, err := d.describe(i, text, names)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, blk)
	}

	return &Document{Header: header, Blocks: blocks}, nil
}
