package ics

import (
	"io"
	"unicode/utf8"
)

// ContentLine is one complete property line, "NAME;PARAMS:VALUE", before
// physical folding. Values are expected to be escaped already.
type ContentLine string

const (
	// FoldLimit is the maximum length of a physical content line in octets,
	// per RFC 5545 section 3.1.
	FoldLimit = 75

	// lineBreak starts every continuation line: CRLF plus a single space.
	lineBreak = "\r\n "
)

// Fold writes line to w folded so that no physical line exceeds FoldLimit
// octets. Each continuation line begins with CRLF and one space, and the
// space counts against that line's budget. Boundaries never split a UTF-8
// encoded character. An empty line writes nothing. Fold adds no errors of
// its own; a failed write is returned as is.
func Fold(w io.Writer, line ContentLine) error {
	return foldLine(w, string(line), FoldLimit, lineBreak)
}

func foldLine(w io.Writer, content string, limit int, brk string) error {
	if len(content) == 0 {
		return nil
	}
	boundary := nextBoundary(content, limit)
	if _, err := io.WriteString(w, content[:boundary]); err != nil {
		return err
	}
	for boundary < len(content) {
		content = content[boundary:]
		if _, err := io.WriteString(w, brk); err != nil {
			return err
		}
		// The leading space spends one octet of this line's budget.
		boundary = nextBoundary(content, limit-1)
		if _, err := io.WriteString(w, content[:boundary]); err != nil {
			return err
		}
	}
	return nil
}

// nextBoundary returns the length of the longest prefix of content that
// fits in limit octets without ending inside a UTF-8 encoded character.
// When content already fits, or when the window holds no safe cut at all,
// it returns len(content); in the second case the caller emits one
// oversized segment rather than corrupt the character.
func nextBoundary(content string, limit int) int {
	if limit >= len(content) {
		return len(content)
	}
	if i, ok := lastRuneStart(content, limit); ok {
		return i
	}
	return len(content)
}

// lastRuneStart returns the largest offset in (0, limit] at which a UTF-8
// sequence starts. ok is false when every candidate byte is a continuation
// byte, i.e. the window cannot be cut cleanly.
func lastRuneStart(content string, limit int) (int, bool) {
	for i := limit; i > 0; i-- {
		if utf8.RuneStart(content[i]) {
			return i, true
		}
	}
	return 0, false
}

// FoldedSize returns the number of octets Fold writes for a line of n
// octets, assuming every continuation segment fills its whole budget, which
// single-byte content always does. Useful for pre-sizing output buffers.
func FoldedSize(n int) int {
	if n < 2 {
		return n
	}
	return n + (n-2)/(FoldLimit-1)*3
}
