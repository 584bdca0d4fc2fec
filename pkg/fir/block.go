package fir

import "sync/atomic"

// edits counts Append calls on every block. A cached analysis is valid only
// while it is unchanged, which covers edits to nested branch blocks too.
var edits atomic.Uint64

// Block is an ordered sequence of instructions that evaluates to exactly
// one value. A block owns its instructions and, through If nodes, its
// branch blocks.
//
// A Block must not be copied after first use.
type Block struct {
	instrs []Instruction

	analyses [2]atomic.Pointer[analysis]
}

type analysis struct {
	edit   uint64
	limits Limits
	depth  Depth
}

func NewBlock(instrs ...Instruction) *Block {
	return &Block{instrs: instrs}
}

func (b *Block) Append(instrs ...Instruction) *Block {
	b.instrs = append(b.instrs, instrs...)
	edits.Add(1)
	return b
}

func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.instrs)
}

// Instructions returns the block's instructions. The slice must not be
// modified; use Append.
func (b *Block) Instructions() []Instruction {
	if b == nil {
		return nil
	}
	return b.instrs
}

func (b *Block) At(i int) Instruction {
	return b.instrs[i]
}

// Verify is AnalyzeWithLimits with the result remembered on the block until
// any block is next appended to. It is safe for concurrent use.
func (b *Block) Verify(kind Kind, limits Limits) (Depth, error) {
	if b == nil || !kind.Valid() {
		return AnalyzeWithLimits(b, kind, &limits)
	}

	edit := edits.Load()

	cached := b.analyses[kind].Load()
	if cached != nil && cached.edit == edit && cached.limits == limits {
		return cached.depth, nil
	}

	depth, err := AnalyzeWithLimits(b, kind, &limits)
	if err != nil {
		return Depth{}, err
	}

	b.analyses[kind].Store(&analysis{edit: edit, limits: limits, depth: depth})

	return depth, nil
}
