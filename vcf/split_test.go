package vcf

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRegionCoversDataExactly(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&buf, "1\t%d\trs%d\tA\tG\t.\t.\t.\tGT\t0/1\n", 1000+i, i)
	}
	data := buf.Bytes()

	chunks := SplitRegion(data, 256)
	require.NotEmpty(t, chunks)
	assert.Greater(t, len(chunks), 1)

	assert.Equal(t, 0, chunks[0][0])
	assert.Equal(t, len(data), chunks[len(chunks)-1][1])
	for i := 1; i < len(chunks); i++ {
		assert.Equal(t, chunks[i-1][1], chunks[i][0])
	}
}

func TestSplitRegionKeepsLinesIntact(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&buf, "line %d padded out to a plausible width %d\n", i, i*i)
	}
	data := buf.Bytes()

	chunks := SplitRegion(data, 100)

	lines := 0
	for _, c := range chunks {
		if c[1] < len(data) {
			assert.EqualValues(t, '\n', data[c[1]-1])
		}
		sc := NewRegionScanner(data[c[0]:c[1]])
		for _, ok := sc.Next(); ok; _, ok = sc.Next() {
			lines++
		}
	}
	assert.Equal(t, 500, lines)
}

func TestSplitRegionSingleChunk(t *testing.T) {
	data := []byte("a\nb\nc\n")
	chunks := SplitRegion(data, 1<<20)
	require.Len(t, chunks, 1)
	assert.Equal(t, [2]int{0, len(data)}, chunks[0])
}

func TestSplitRegionNoTrailingNewline(t *testing.T) {
	data := []byte("aaaa\nbbbb\ncccc")
	chunks := SplitRegion(data, 5)
	require.Len(t, chunks, 2)
	assert.Equal(t, [2]int{0, 10}, chunks[0])
	assert.Equal(t, [2]int{10, 14}, chunks[1])
}

func TestSplitRegionEmpty(t *testing.T) {
	assert.Nil(t, SplitRegion(nil, 64))
}
