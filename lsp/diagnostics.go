package lsp

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/nibble/buffer"
	"github.com/dhamidi/nibble/rules"
)

// Diagnose parses text as a rules file and reports the first error, if any.
// The result is never nil so that publishing it clears earlier diagnostics.
func Diagnose(text []byte) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	_, err := rules.Parse(text)
	if err == nil {
		return diagnostics
	}

	offset := int64(len(text))
	var pe *buffer.ParseError
	if errors.As(err, &pe) {
		offset = pe.Offset
	}

	pos := Position(text, offset)
	severity := protocol.DiagnosticSeverityError
	source := lsName
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	})
	return diagnostics
}

// Position converts a byte offset in text to a zero-based line and UTF-16
// character position.
func Position(text []byte, offset int64) protocol.Position {
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}

	var line, char protocol.UInteger
	for i := 0; i < int(offset); {
		r, size := utf8.DecodeRune(text[i:])
		i += size
		if r == '\n' {
			line++
			char = 0
			continue
		}
		if n := utf16.RuneLen(r); n > 0 {
			char += protocol.UInteger(n)
		} else {
			char++
		}
	}
	return protocol.Position{Line: line, Character: char}
}
