package scorefile

import "strings"

type rowFunc func(layout *Layout, row []string) (Entry, error)

// Layout describes where each scoring column lives in a row and how rows
// are interpreted.
type Layout struct {
	Delimiter       rune
	Comment         rune
	ColChromosome   int
	ColPosition     int
	ColEffectAllele int
	ColOtherAllele  int
	ColWeight       int
	Parser          *rowFunc
}

func (l *Layout) maxColumn() int {
	max := l.ColChromosome
	for _, c := range []int{l.ColPosition, l.ColEffectAllele, l.ColOtherAllele, l.ColWeight} {
		if c > max {
			max = c
		}
	}
	return max
}

var (
	defaultRowFunc rowFunc = DefaultParseRow
	ldpredRowFunc  rowFunc = ldpredParseRow
)

var Layouts = map[string]Layout{
	"DEFAULT": {
		Delimiter:       '\t',
		Comment:         '#',
		ColChromosome:   0,
		ColPosition:     1,
		ColEffectAllele: 2,
		ColOtherAllele:  3,
		ColWeight:       4,
		Parser:          &defaultRowFunc,
	},
	"PGSCATALOG": {
		Delimiter:       '\t',
		Comment:         '#',
		ColChromosome:   1,
		ColPosition:     2,
		ColEffectAllele: 3,
		ColOtherAllele:  4,
		ColWeight:       5,
		Parser:          &defaultRowFunc,
	},
	"LDPRED": {
		Delimiter:       ' ',
		Comment:         '#',
		ColChromosome:   0,
		ColPosition:     1,
		ColEffectAllele: 3,
		ColOtherAllele:  4,
		ColWeight:       6,
		Parser:          &ldpredRowFunc,
	},
}

func LayoutNames() string {
	b := strings.Builder{}
	i := 0
	for m := range Layouts {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
		i++
	}

	return b.String()
}
