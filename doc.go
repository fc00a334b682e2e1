// Package olirtf converts documents written by a legacy Olivetti word
// processor into RTF.
//
// The source format is undocumented. Conversion runs in two passes over an
// in-memory buffer: Tokenize decodes the raw bytes into a Token sequence and
// Render turns the tokens into paragraphs, written either as RTF groups or
// as wrapped terminal text.
//
// Core properties:
//   - Decoding is total: unknown bytes are dropped, nothing is rejected
//   - Paragraph breaks, page breaks, alignment and underline are kept
//   - Italian grave and acute accents written as letter + backtick become
//     real accented letters
//   - Only the first and third sections of a document carry body text
//
// Example:
//
//	src, err := os.ReadFile("letter.oli")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = olirtf.Render(olirtf.RenderRequest{
//		Tokens: olirtf.Tokenize(src),
//		Writer: out,
//		Format: olirtf.FormatRTF,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// State exposes the renderer's transition function so custom outputs can be
// driven through Emit with their own Dialect and Sink.
package olirtf
