package treetesting

import (
	"math/rand/v2"

	"github.com/forestrie/go-flattree/tree"
)

type GeneratorConfig struct {
	// Seed makes generation reproducible. Equal configs generate equal
	// sequences of trees.
	Seed uint64

	// MaxDepth bounds the number of nodes on any root to leaf path. Values
	// below 1 are treated as 1.
	MaxDepth int

	// MaxChildren bounds the number of slots per node.
	MaxChildren int

	// MaxVal bounds node labels, inclusive. Zero means any uint64.
	MaxVal uint64

	// EmptySlotPercent is the chance, 0-100, that a slot is left empty.
	// Leave it zero for trees the plain format can encode.
	EmptySlotPercent int
}

// Generator produces random trees.
type Generator struct {
	cfg GeneratorConfig
	rnd *rand.Rand
}

func NewGenerator(cfg GeneratorConfig) *Generator {
	cfg.MaxDepth = max(cfg.MaxDepth, 1)
	cfg.MaxChildren = max(cfg.MaxChildren, 0)
	return &Generator{
		cfg: cfg,
		rnd: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

type genFrame struct {
	node  *tree.Node
	depth int
}

// Tree returns a new random tree. It is never nil.
func (g *Generator) Tree() *tree.Node {
	root := tree.New(g.val())
	stack := []genFrame{{node: root, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth >= g.cfg.MaxDepth || g.cfg.MaxChildren == 0 {
			continue
		}
		slots := g.rnd.IntN(g.cfg.MaxChildren + 1)
		for range slots {
			if g.cfg.EmptySlotPercent > 0 && g.rnd.IntN(100) < g.cfg.EmptySlotPercent {
				f.node.AddChildNode(nil)
				continue
			}
			child := f.node.AddChildValue(g.val())
			stack = append(stack, genFrame{node: child, depth: f.depth + 1})
		}
	}
	return root
}

func (g *Generator) val() uint64 {
	if g.cfg.MaxVal == 0 || g.cfg.MaxVal == ^uint64(0) {
		return g.rnd.Uint64()
	}
	return g.rnd.Uint64N(g.cfg.MaxVal + 1)
}
