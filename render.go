package olirtf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format selects the output produced by Render and Convert.
type Format uint8

const (
	// FormatRTF produces a complete RTF document.
	FormatRTF Format = iota
	// FormatText produces wrapped plain text for a terminal.
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	default:
		return "rtf"
	}
}

// ParseFormat parses a format name as accepted on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rtf":
		return FormatRTF, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return FormatRTF, fmt.Errorf("unknown format %q (expected rtf|text)", name)
	}
}

// Sink receives the paragraphs of a render pass.
type Sink interface {
	Begin() error
	WriteParagraph(Paragraph) error
	End() error
}

// RenderRequest configures Render.
type RenderRequest struct {
	Tokens  []Token
	Writer  io.Writer
	Format  Format
	Options []RenderOption
}

// EmitRequest configures Emit.
type EmitRequest struct {
	Tokens  []Token
	Dialect Dialect
	Sink    Sink
}

// ConvertRequest configures Convert.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Format  Format
	Options []RenderOption
}

// Render writes a token sequence to Writer in the requested format.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := resolveConfig(req.Options)
	var (
		dialect Dialect
		sink    Sink
	)
	switch req.Format {
	case FormatText:
		dialect = textDialect{ansi: cfg.ansi}
		sink = &textSink{w: req.Writer, width: cfg.width}
	default:
		dialect = RTFDialect()
		sink = &rtfSink{w: req.Writer, fragment: cfg.fragment}
	}
	if err := Emit(EmitRequest{Tokens: req.Tokens, Dialect: dialect, Sink: sink}); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Emit runs the tokens through a fresh State and hands every flushed
// paragraph to Sink.
func Emit(req EmitRequest) error {
	if req.Sink == nil {
		return fmt.Errorf("emit: sink is nil")
	}
	if err := req.Sink.Begin(); err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	st := NewState(req.Dialect)
	for i, tok := range req.Tokens {
		var next Token
		hasNext := i+1 < len(req.Tokens)
		if hasNext {
			next = req.Tokens[i+1]
		}
		p, flushed := st.Apply(tok, next, hasNext)
		if !flushed {
			continue
		}
		if err := req.Sink.WriteParagraph(p); err != nil {
			return fmt.Errorf("write paragraph: %w", err)
		}
	}
	if err := req.Sink.End(); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	return nil
}

// Convert reads the whole source document from Reader, decodes it and
// renders it to Writer.
func Convert(req ConvertRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("convert: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("convert: read: %w", err)
	}
	return Render(RenderRequest{
		Tokens:  Tokenize(src),
		Writer:  req.Writer,
		Format:  req.Format,
		Options: req.Options,
	})
}

// ConvertBytes decodes src and writes it to w as RTF.
func ConvertBytes(src []byte, w io.Writer, opts ...RenderOption) error {
	return Render(RenderRequest{
		Tokens:  Tokenize(src),
		Writer:  w,
		Format:  FormatRTF,
		Options: opts,
	})
}

// DumpTokens writes one token per line, prefixed with its index.
func DumpTokens(w io.Writer, tokens []Token) error {
	bw := bufio.NewWriter(w)
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", i, tok); err != nil {
			return fmt.Errorf("dump tokens: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dump tokens: %w", err)
	}
	return nil
}
