// Package patches holds hand-assembled programs used by the command line
// tool and by tests.
package patches

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rhino1998/fir/pkg/fir"
)

var ErrUnknownPatch = errors.New("unknown patch")

type Patch struct {
	Name        string
	Description string

	// Build assembles the program for the given sample rate.
	Build func(sampleRate int) *fir.Program
}

var registry = map[string]Patch{}

func register(p Patch) {
	registry[p.Name] = p
}

func Lookup(name string) (Patch, error) {
	p, ok := registry[name]
	if !ok {
		return Patch{}, fmt.Errorf("%w %q (have %v)", ErrUnknownPatch, name, Names())
	}

	return p, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func All() []Patch {
	all := make([]Patch, 0, len(registry))
	for _, name := range Names() {
		all = append(all, registry[name])
	}

	return all
}

func pushReal(v float64) fir.Instruction { return fir.PushReal{Value: v} }
func pushInt(v int32) fir.Instruction    { return fir.PushInt{Value: v} }

func loadReal(offset int) fir.Instruction  { return fir.Load{Kind: fir.Real, Offset: offset} }
func storeReal(offset int) fir.Instruction { return fir.Store{Kind: fir.Real, Offset: offset} }
func loadInt(offset int) fir.Instruction   { return fir.Load{Kind: fir.Int, Offset: offset} }
func storeInt(offset int) fir.Instruction  { return fir.Store{Kind: fir.Int, Offset: offset} }

func realOp(op fir.Operator) fir.Instruction { return fir.BinaryOp{Kind: fir.Real, Op: op} }
func intOp(op fir.Operator) fir.Instruction  { return fir.BinaryOp{Kind: fir.Int, Op: op} }

// output writes the real value on top of the stack to channel ch.
func output(ch int32) []fir.Instruction {
	return []fir.Instruction{pushInt(ch), fir.StoreOutput{}}
}

func input(ch int32) []fir.Instruction {
	return []fir.Instruction{pushInt(ch), fir.LoadInput{}}
}
