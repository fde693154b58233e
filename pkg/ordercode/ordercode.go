package ordercode

import (
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces human-readable order references of the form
// SMA-20260901-7KQ2. The random suffix keeps codes unique within a day; the
// orders table additionally carries a unique index on the column.
type Generator struct {
	suffix func() string
	now    func() time.Time
}

func NewGenerator() (*Generator, error) {
	gen, err := nanoid.CustomASCII(alphabet, 4)
	if err != nil {
		return nil, err
	}
	return &Generator{suffix: gen, now: time.Now}, nil
}

func (g *Generator) Next() string {
	return fmt.Sprintf("SMA-%s-%s", g.now().Format("20060102"), g.suffix())
}
