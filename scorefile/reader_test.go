package scorefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func defaultParser(t *testing.T) *Parser {
	t.Helper()
	parser, err := New("DEFAULT")
	if err != nil {
		t.Fatal(err)
	}
	return parser
}

func TestReadAllWithHeader(t *testing.T) {
	text := "chromosome\tposition\teffect_allele\tother_allele\teffect_weight\n" +
		"1\t100\tA\tG\t0.5\n" +
		"# a stray comment\n" +
		"2\t200\tC\tT\t-0.25\n"

	entries, err := ReadAll(strings.NewReader(text), defaultParser(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Chromosome != "1" || entries[0].Weight != 0.5 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Chromosome != "2" || entries[1].Weight != -0.25 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestReadAllWithoutHeader(t *testing.T) {
	text := "1\t100\tA\tG\t0.5\n2\t200\tC\tT\t-0.25\n"

	entries, err := ReadAll(strings.NewReader(text), defaultParser(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestReadAllEmpty(t *testing.T) {
	entries, err := ReadAll(strings.NewReader(""), defaultParser(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

// A bad row beyond the first line means the file cannot be trusted.
func TestReadAllBadRowIsFatal(t *testing.T) {
	text := "1\t100\tA\tG\t0.5\n1\t200\tC\n"

	_, err := ReadAll(strings.NewReader(text), defaultParser(t))
	if !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("expected ErrMalformedRow, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected the error to name line 2: %v", err)
	}
}

func TestOpenPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.tsv")
	text := "effect\tfile\theader\trow\tskipped\n1\t100\tA\tG\t0.5\n2\t200\tC\tT\t1.5\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path, defaultParser(t))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	n := 0
	var sum float64
	for e := r.Read(); e != nil; e = r.Read() {
		n++
		sum += e.Weight
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	if n != 2 || sum != 2.0 {
		t.Errorf("expected 2 entries summing to 2.0, got %d and %v", n, sum)
	}
}

func TestOpenGzippedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.tsv.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("1\t100\tA\tG\t0.5\n2\t200\tC\tT\t-0.25\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path, defaultParser(t))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	n := 0
	for e := r.Read(); e != nil; e = r.Read() {
		n++
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 entries, got %d", n)
	}
}

func TestReaderBadRowSetsErr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.tsv")
	if err := os.WriteFile(path, []byte("1\t100\tA\tG\t0.5\nbroken\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path, defaultParser(t))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if e := r.Read(); e == nil {
		t.Fatal("expected the first entry")
	}
	if e := r.Read(); e != nil {
		t.Fatalf("expected no entry, got %+v", e)
	}
	if err := r.Err(); !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("expected ErrMalformedRow, got %v", err)
	}
}
