package tablecsv

import (
	"strings"
	"testing"
)

func TestTokenizerNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		term  terminator
	}{
		{
			name:  "unquotedComma",
			input: "alpha,beta",
			want:  "alpha",
			term:  termComma,
		},
		{
			name:  "unquotedRecordEnd",
			input: "alpha\nbeta",
			want:  "alpha",
			term:  termRecordEnd,
		},
		{
			name:  "unquotedStreamEnd",
			input: "alpha",
			want:  "alpha",
			term:  termStreamEnd,
		},
		{
			name:  "emptyFieldComma",
			input: ",rest",
			want:  "",
			term:  termComma,
		},
		{
			name:  "emptyFieldRecordEnd",
			input: "\nrest",
			want:  "",
			term:  termRecordEnd,
		},
		{
			name:  "crlfStripped",
			input: "alpha\r\nbeta",
			want:  "alpha",
			term:  termRecordEnd,
		},
		{
			name:  "loneCRKept",
			input: "al\rpha,beta",
			want:  "al\rpha",
			term:  termComma,
		},
		{
			name:  "quotedComma",
			input: "\"a,b\",c",
			want:  "a,b",
			term:  termComma,
		},
		{
			name:  "quotedNewline",
			input: "\"a\nb\",c",
			want:  "a\nb",
			term:  termComma,
		},
		{
			name:  "escapedQuote",
			input: "\"he said \"\"hi\"\"\",2",
			want:  "he said \"hi\"",
			term:  termComma,
		},
		{
			name:  "quotedEmpty",
			input: "\"\",x",
			want:  "",
			term:  termComma,
		},
		{
			name:  "quotedAtStreamEnd",
			input: "\"last\"",
			want:  "last",
			term:  termStreamEnd,
		},
		{
			name:  "quotedCRLF",
			input: "\"alpha\"\r\nbeta",
			want:  "alpha",
			term:  termRecordEnd,
		},
		{
			name:  "quotedTrailingCRInContent",
			input: "\"alpha\r\"\nbeta",
			want:  "alpha\r",
			term:  termRecordEnd,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tok := &tokenizer{data: []byte(tc.input)}
			got, term, code := tok.next()
			if code != NoError {
				t.Fatalf("next() code = %v, want NoError", code)
			}
			if got != tc.want {
				t.Fatalf("next() field = %q, want %q", got, tc.want)
			}
			if term != tc.term {
				t.Fatalf("next() terminator = %d, want %d", term, tc.term)
			}
		})
	}
}

func TestTokenizerWalksRecord(t *testing.T) {
	t.Parallel()

	tok := &tokenizer{data: []byte("a,\"b,b\",\nnext")}

	fields := []string{"a", "b,b", ""}
	terms := []terminator{termComma, termComma, termRecordEnd}
	for i := range fields {
		got, term, code := tok.next()
		if code != NoError {
			t.Fatalf("field %d: code = %v", i, code)
		}
		if got != fields[i] || term != terms[i] {
			t.Fatalf("field %d = %q/%d, want %q/%d", i, got, term, fields[i], terms[i])
		}
	}

	got, term, code := tok.next()
	if code != NoError || got != "next" || term != termStreamEnd {
		t.Fatalf("final field = %q/%d/%v, want next/streamEnd/NoError", got, term, code)
	}
}

func TestTokenizerScratchOverflow(t *testing.T) {
	t.Parallel()

	t.Run("unquoted", func(t *testing.T) {
		t.Parallel()

		tok := &tokenizer{data: []byte(strings.Repeat("x", scratchSize+1))}
		if _, _, code := tok.next(); code != ErrScratchOverflow {
			t.Fatalf("next() code = %v, want ErrScratchOverflow", code)
		}
	})

	t.Run("quoted", func(t *testing.T) {
		t.Parallel()

		tok := &tokenizer{data: []byte("\"" + strings.Repeat("x", scratchSize+1) + "\"")}
		if _, _, code := tok.next(); code != ErrScratchOverflow {
			t.Fatalf("next() code = %v, want ErrScratchOverflow", code)
		}
	})

	t.Run("exactCapacityFits", func(t *testing.T) {
		t.Parallel()

		tok := &tokenizer{data: []byte(strings.Repeat("x", scratchSize) + ",y")}
		field, term, code := tok.next()
		if code != NoError {
			t.Fatalf("next() code = %v, want NoError", code)
		}
		if len(field) != scratchSize || term != termComma {
			t.Fatalf("next() len = %d term = %d, want %d/comma", len(field), term, scratchSize)
		}
	})
}
