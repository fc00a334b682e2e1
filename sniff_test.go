package olirtf

import (
	"bytes"
	"strings"
	"testing"
)

func TestSniff(t *testing.T) {
	cases := []struct {
		name string
		src  []byte
		want error
	}{
		{"empty", nil, ErrEmptyInput},
		{"header", []byte{0x00, 0x1B, 0x1B, 'O', 'L', 'I'}, nil},
		{"text", []byte(strings.Repeat("plain markdown text\n", 8)), ErrLooksLikeText},
		{"short text", []byte("hello"), ErrNoFileHeader},
		{"binary", bytes.Repeat([]byte{0x01, 0xFF, 0x02}, 40), ErrNoFileHeader},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Sniff(tc.src); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestHeaderText(t *testing.T) {
	src := []byte("\x1b\x1bOLIWORD  2.1\x00\x1b01/03/91\rbody text\xff")
	if got, want := HeaderText(src), "OLIWORD 2.1 01/03/91"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if got := HeaderText([]byte("no header")); got != "" {
		t.Fatalf("expected empty header, got %q", got)
	}
}
