package tablecsv

// scratchSize is the per-field decode buffer capacity. A single field longer
// than this fails with ErrScratchOverflow.
const scratchSize = 1 << 10 // 1024 bytes

// terminator reports why the tokenizer stopped consuming a field.
type terminator uint8

const (
	termComma terminator = iota
	termRecordEnd
	termStreamEnd
)

// tokenizer is a forward cursor over an in-memory CSV document. Each call to
// next decodes exactly one field starting at the current position.
type tokenizer struct {
	data    []byte
	pos     int
	scratch [scratchSize]byte
}

// next consumes one RFC 4180 field and returns its decoded content together
// with the terminator that ended it. The returned string is a fresh,
// minimally sized copy of the scratch buffer; an empty field is a valid
// zero-length result. Decoding follows RFC 4180 rule 7: a field opening with
// a quote runs to its unescaped closing quote, with doubled quotes collapsing
// to a single literal quote.
func (t *tokenizer) next() (string, terminator, ErrorCode) {
	data := t.data
	pos := t.pos
	n := 0

	if pos < len(data) && data[pos] == '"' {
		pos++
		for {
			if pos >= len(data) {
				// Unmatched quotes violate RFC 4180 rule 7 and are
				// undefined input; take what was decoded so far.
				t.pos = pos
				return string(t.scratch[:n]), termStreamEnd, NoError
			}
			b := data[pos]
			pos++
			if b == '"' {
				if pos < len(data) && data[pos] == '"' {
					if n == scratchSize {
						return "", termStreamEnd, ErrScratchOverflow
					}
					t.scratch[n] = '"'
					n++
					pos++
					continue
				}
				break
			}
			if n == scratchSize {
				return "", termStreamEnd, ErrScratchOverflow
			}
			t.scratch[n] = b
			n++
		}
	}

	// Verbatim scan until comma, record terminator, or end of stream. For a
	// quoted field this only consumes the closing delimiter; quotedEnd keeps
	// a quoted trailing \r from being mistaken for part of a CRLF sequence.
	quotedEnd := n
	for {
		if pos >= len(data) {
			t.pos = pos
			return string(t.scratch[:n]), termStreamEnd, NoError
		}
		b := data[pos]
		pos++
		switch b {
		case ',':
			t.pos = pos
			return string(t.scratch[:n]), termComma, NoError
		case '\n':
			if n > quotedEnd && t.scratch[n-1] == '\r' {
				n--
			}
			t.pos = pos
			return string(t.scratch[:n]), termRecordEnd, NoError
		default:
			if n == scratchSize {
				return "", termStreamEnd, ErrScratchOverflow
			}
			t.scratch[n] = b
			n++
		}
	}
}
