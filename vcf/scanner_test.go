package vcf

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectLines(t *testing.T, sc LineScanner) []string {
	t.Helper()
	var lines []string
	for line, ok := sc.Next(); ok; line, ok = sc.Next() {
		lines = append(lines, string(line))
	}
	return lines
}

func TestRegionScannerLines(t *testing.T) {
	sc := NewRegionScanner([]byte("one\ntwo\r\nthree"))
	assert.Equal(t, []string{"one", "two", "three"}, collectLines(t, sc))
	assert.NoError(t, sc.Err())
}

func TestRegionScannerBlankAndTrailing(t *testing.T) {
	sc := NewRegionScanner([]byte("a\n\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, collectLines(t, sc))
}

func TestRegionScannerEmpty(t *testing.T) {
	sc := NewRegionScanner(nil)
	_, ok := sc.Next()
	assert.False(t, ok)
}

func TestRegionScannerRest(t *testing.T) {
	sc := NewRegionScanner([]byte("head\nbody1\nbody2\n"))
	line, ok := sc.Next()
	require.True(t, ok)
	require.Equal(t, "head", string(line))

	assert.Equal(t, "body1\nbody2\n", string(sc.Rest()))
}

func TestStreamScannerLines(t *testing.T) {
	sc := NewStreamScanner(strings.NewReader("one\ntwo\r\nthree"))
	assert.Equal(t, []string{"one", "two", "three"}, collectLines(t, sc))
	assert.NoError(t, sc.Err())
}

func TestStreamScannerEmpty(t *testing.T) {
	sc := NewStreamScanner(strings.NewReader(""))
	_, ok := sc.Next()
	assert.False(t, ok)
	assert.NoError(t, sc.Err())
}

// Lines longer than the scanner's internal buffer must come through whole.
func TestStreamScannerLongLine(t *testing.T) {
	long := strings.Repeat("G", 3<<20)
	sc := NewStreamScanner(strings.NewReader(long + "\nshort\n"))

	line, ok := sc.Next()
	require.True(t, ok)
	assert.Len(t, line, 3<<20)

	line, ok = sc.Next()
	require.True(t, ok)
	assert.Equal(t, "short", string(line))
}

func TestStreamScannerReadError(t *testing.T) {
	boom := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("partial\n"), iotest.ErrReader(boom))

	sc := NewStreamScanner(r)
	line, ok := sc.Next()
	require.True(t, ok)
	assert.Equal(t, "partial", string(line))

	_, ok = sc.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, sc.Err(), boom)
}
