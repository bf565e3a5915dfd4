package vcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordWithSamples(t *testing.T) {
	line := []byte("chr1\t760912\trs571312275\tT\tC\t50\tPASS\tAC=2\tGT:DP\t0/1:12\t1|1:9")

	var rec Record
	require.NoError(t, ParseRecord(line, 2, &rec))

	assert.Equal(t, "chr1", string(rec.Chrom))
	assert.Equal(t, uint32(760912), rec.Pos)
	assert.Equal(t, "T", string(rec.Ref))
	require.Len(t, rec.Alts, 1)
	assert.Equal(t, "C", string(rec.Alts[0]))
	require.Len(t, rec.Genotypes, 2)
	assert.Equal(t, GenotypeCall{A: 0, B: 1}, rec.Genotypes[0])
	assert.Equal(t, GenotypeCall{A: 1, B: 1}, rec.Genotypes[1])
}

func TestParseRecordMultiAllelic(t *testing.T) {
	line := []byte("1\t100\t.\tA\tC,G,TTT\t.\t.\t.\tGT\t2/3\t0|2")

	var rec Record
	require.NoError(t, ParseRecord(line, 2, &rec))

	require.Len(t, rec.Alts, 3)
	assert.Equal(t, "C", string(rec.Alts[0]))
	assert.Equal(t, "G", string(rec.Alts[1]))
	assert.Equal(t, "TTT", string(rec.Alts[2]))
	assert.Equal(t, GenotypeCall{A: 2, B: 3}, rec.Genotypes[0])
	assert.Equal(t, GenotypeCall{A: 0, B: 2}, rec.Genotypes[1])
}

// GT need not be the first FORMAT subfield.
func TestParseRecordGTSubfieldPosition(t *testing.T) {
	line := []byte("1\t100\t.\tA\tG\t.\t.\t.\tDP:GT:GQ\t12:0/1:99")

	var rec Record
	require.NoError(t, ParseRecord(line, 1, &rec))
	assert.Equal(t, GenotypeCall{A: 0, B: 1}, rec.Genotypes[0])
}

func TestParseRecordNoGTInFormat(t *testing.T) {
	line := []byte("1\t100\t.\tA\tG\t.\t.\t.\tDP:GQ\t12:99")

	var rec Record
	require.NoError(t, ParseRecord(line, 1, &rec))
	require.Len(t, rec.Genotypes, 1)
	assert.True(t, rec.Genotypes[0].Missing())
}

func TestParseRecordHaploidAndMissing(t *testing.T) {
	line := []byte("X\t123\t.\tA\tG\t.\t.\t.\tGT\t1\t./.\t0")

	var rec Record
	require.NoError(t, ParseRecord(line, 3, &rec))
	assert.Equal(t, GenotypeCall{A: 1, B: -1}, rec.Genotypes[0])
	assert.True(t, rec.Genotypes[1].Missing())
	assert.Equal(t, GenotypeCall{A: 0, B: -1}, rec.Genotypes[2])
}

func TestParseRecordSitesOnly(t *testing.T) {
	var rec Record
	assert.NoError(t, ParseRecord([]byte("1\t100\t.\tA\tG\t.\t.\t."), 0, &rec))
	assert.NoError(t, ParseRecord([]byte("1\t100\t.\tA\tG\t.\t.\t.\tGT"), 0, &rec))
	assert.ErrorIs(t, ParseRecord([]byte("1\t100\t.\tA\tG\t.\t.\t.\tGT\t0/1"), 0, &rec), ErrMalformedLine)
}

func TestParseRecordBadPosition(t *testing.T) {
	var rec Record
	for _, line := range []string{
		"1\tabc\t.\tA\tG\t.\t.\t.\tGT\t0/1",
		"1\t\t.\tA\tG\t.\t.\t.\tGT\t0/1",
		"1\t-5\t.\tA\tG\t.\t.\t.\tGT\t0/1",
		"1\t99999999999\t.\tA\tG\t.\t.\t.\tGT\t0/1",
	} {
		assert.ErrorIs(t, ParseRecord([]byte(line), 1, &rec), ErrMalformedLine, line)
	}
}

func TestParseRecordColumnCount(t *testing.T) {
	var rec Record
	short := []byte("1\t100\t.\tA\tG\t.\t.\t.\tGT\t0/1")
	assert.ErrorIs(t, ParseRecord(short, 2, &rec), ErrMalformedLine)

	long := []byte("1\t100\t.\tA\tG\t.\t.\t.\tGT\t0/1\t0/0\t1/1")
	assert.ErrorIs(t, ParseRecord(long, 2, &rec), ErrMalformedLine)

	assert.ErrorIs(t, ParseRecord([]byte("no tabs here"), 1, &rec), ErrMalformedLine)
}

// A record must fully reset between lines so buffers can be reused.
func TestParseRecordReuse(t *testing.T) {
	var rec Record
	require.NoError(t, ParseRecord([]byte("1\t100\t.\tA\tC,G,T\t.\t.\t.\tGT\t1/2\t0/0"), 2, &rec))
	require.Len(t, rec.Alts, 3)

	require.NoError(t, ParseRecord([]byte("2\t200\t.\tG\tA\t.\t.\t.\tGT\t0/1\t1/1"), 2, &rec))
	assert.Equal(t, "2", string(rec.Chrom))
	assert.Equal(t, uint32(200), rec.Pos)
	require.Len(t, rec.Alts, 1)
	assert.Equal(t, "A", string(rec.Alts[0]))
	require.Len(t, rec.Genotypes, 2)
	assert.Equal(t, GenotypeCall{A: 0, B: 1}, rec.Genotypes[0])
}
