package ics

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty line writes nothing",
			content: "",
			want:    "",
		},
		{
			name:    "short line stays unchanged",
			content: "No line break today.",
			want:    "No line break today.",
		},
		{
			name:    "single fold on the 75 octet boundary",
			content: "Content lines that have a fixed length over 75 bytes should be line folded with CRLF and whitespace.",
			want:    "Content lines that have a fixed length over 75 bytes should be line folded \r\n with CRLF and whitespace.",
		},
		{
			name:    "boundary moves left of a three byte character",
			content: "Content lines shouldn't be folded in the middle of a UTF-8 character! 老虎.",
			want:    "Content lines shouldn't be folded in the middle of a UTF-8 character! 老\r\n 虎.",
		},
		{
			name:    "space before a wide character is kept on the first line",
			content: "Content lines shouldn't be folded in the middle of a UTF-8 character! 老 虎.",
			want:    "Content lines shouldn't be folded in the middle of a UTF-8 character! 老 \r\n 虎.",
		},
		{
			name:    "continuation lines spend one octet on their leading space",
			content: "The quick brown fox jumps over the lazy dog. The quick brown fox jumps over the lazy cog. The quick brown fox jumps over the lazy hog. The quick brown fox jumps over the lazy log. The quick brown fox jumps over the lazy dog. ",
			want:    "The quick brown fox jumps over the lazy dog. The quick brown fox jumps over\r\n  the lazy cog. The quick brown fox jumps over the lazy hog. The quick brow\r\n n fox jumps over the lazy log. The quick brown fox jumps over the lazy dog\r\n . ",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf strings.Builder
			require.NoError(t, Fold(&buf, ContentLine(tc.content)))
			assert.Equal(t, tc.want, buf.String())
			assert.Equal(t, FoldedSize(len(tc.content)), buf.Len())
		})
	}
}

// failingWriter accepts allow writes, then fails every call with err.
type failingWriter struct {
	allow int
	err   error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.allow == 0 {
		return 0, w.err
	}
	w.allow--
	return len(p), nil
}

func TestFoldSinkError(t *testing.T) {
	line := ContentLine(strings.Repeat("x", 200))
	tests := []struct {
		name  string
		allow int
	}{
		{"first segment write fails", 0},
		{"break write fails", 1},
		{"continuation write fails", 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Fold(&failingWriter{allow: tc.allow, err: io.ErrClosedPipe}, line)
			// The sink's error comes back as is, nothing wrapped around it.
			assert.Equal(t, io.ErrClosedPipe, err)
		})
	}
}

func TestNextBoundary(t *testing.T) {
	tests := []struct {
		name    string
		content string
		limit   int
		want    int
	}{
		{"shorter than the limit", "abc", 75, 3},
		{"exactly the limit", strings.Repeat("x", 75), 75, 75},
		{"single byte content cuts at the limit", strings.Repeat("x", 80), 75, 75},
		{"cut retreats to the start of a wide character", "abcd老", 5, 4},
		{"cut lands between two wide characters", "老虎", 4, 3},
		{"no safe cut falls back to the full length", "老", 1, 3},
		{"window inside the only character falls back", "老虎", 2, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nextBoundary(tc.content, tc.limit))
		})
	}
}

func TestLastRuneStart(t *testing.T) {
	i, ok := lastRuneStart("a老", 2)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	// Every byte in the window is a continuation byte: no safe cut exists.
	_, ok = lastRuneStart("老", 1)
	assert.False(t, ok)
	_, ok = lastRuneStart("老虎", 2)
	assert.False(t, ok)
}

func TestFoldedSize(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{12, 12},
		{75, 75},
		{76, 79},
		{148, 151},
		{149, 152},
		{150, 156},
		{222, 228},
		{223, 229},
		{224, 233},
		{296, 305},
		{297, 306},
		{298, 310},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FoldedSize(tc.n), "FoldedSize(%d)", tc.n)
	}
}

func TestFoldedSizeMatchesFold(t *testing.T) {
	for n := 0; n <= 400; n++ {
		var buf strings.Builder
		require.NoError(t, Fold(&buf, ContentLine(strings.Repeat("a", n))))
		require.Equal(t, FoldedSize(n), buf.Len(), "length %d", n)
	}
}
