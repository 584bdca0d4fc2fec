package fir

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented listing of block to w.
func Fprint(w io.Writer, block *Block) error {
	return fprintBlock(w, block, 0)
}

func fprintBlock(w io.Writer, block *Block, depth int) error {
	indent := strings.Repeat("  ", depth)
	for i, instr := range block.Instructions() {
		_, err := fmt.Fprintf(w, "%s%04d %v\n", indent, i, instr)
		if err != nil {
			return err
		}

		branch, ok := instr.(If)
		if !ok {
			continue
		}

		_, err = fmt.Fprintf(w, "%s  then:\n", indent)
		if err != nil {
			return err
		}

		err = fprintBlock(w, branch.Then, depth+2)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "%s  else:\n", indent)
		if err != nil {
			return err
		}

		err = fprintBlock(w, branch.Else, depth+2)
		if err != nil {
			return err
		}
	}

	return nil
}

// FprintUI writes a UI block to w, indenting the contents of each box.
func FprintUI(w io.Writer, block *UIBlock) error {
	depth := 0
	for _, instr := range block.Instructions() {
		if _, ok := instr.(CloseBox); ok && depth > 0 {
			depth--
		}

		_, err := fmt.Fprintf(w, "%s%v\n", strings.Repeat("  ", depth), instr)
		if err != nil {
			return err
		}

		if _, ok := instr.(OpenBox); ok {
			depth++
		}
	}

	return nil
}

func (b *Block) String() string {
	var sb strings.Builder
	_ = Fprint(&sb, b)
	return sb.String()
}
