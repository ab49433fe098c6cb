// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"fmt"
	"os"

	"github.com/juju/cmd/v3"
	"github.com/juju/collections/deque"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"

	"github.com/juju/infiniteint"
)

var logger = loggo.GetLogger("infint")

func main() {
	ctx, err := cmd.DefaultContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	os.Exit(cmd.Main(&evalCommand{}, ctx, os.Args[1:]))
}

// evalCommand evaluates a reverse Polish expression whose operands
// are arbitrary-precision decimal integers.
type evalCommand struct {
	cmd.CommandBase
	logConfig string
	tokens    []string
}

const evalDoc = `
infint evaluates a reverse Polish expression whose operands are
decimal integers of any size. The supported operators are +, - and x.

Example:

    infint 12 7 + 3 x
`

// Info is part of the cmd.Command interface.
func (c *evalCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "infint",
		Args:    "<token>...",
		Purpose: "evaluate a reverse Polish expression with arbitrary-precision integers",
		Doc:     evalDoc,
	}
}

// SetFlags is part of the cmd.Command interface.
func (c *evalCommand) SetFlags(f *gnuflag.FlagSet) {
	f.StringVar(&c.logConfig, "log-config", "", "loggo configuration string")
}

// Init is part of the cmd.Command interface.
func (c *evalCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("no expression given")
	}
	c.tokens = args
	return nil
}

// Run is part of the cmd.Command interface.
func (c *evalCommand) Run(ctx *cmd.Context) error {
	if c.logConfig != "" {
		if err := loggo.ConfigureLoggers(c.logConfig); err != nil {
			return errors.Trace(err)
		}
	}
	result, err := eval(c.tokens)
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintln(ctx.Stdout, result)
	return nil
}

// eval evaluates tokens as a reverse Polish expression, keeping the
// operands on a stack.
func eval(tokens []string) (*infiniteint.InfiniteInt, error) {
	stack := deque.New()
	for i, tok := range tokens {
		var apply func(a, b *infiniteint.InfiniteInt) *infiniteint.InfiniteInt
		switch tok {
		case "+":
			apply = (*infiniteint.InfiniteInt).Add
		case "-":
			apply = (*infiniteint.InfiniteInt).Sub
		case "x":
			apply = (*infiniteint.InfiniteInt).Mul
		default:
			operand, err := infiniteint.Parse(tok)
			if err != nil {
				return nil, errors.Annotatef(err, "token %d", i+1)
			}
			stack.PushBack(operand)
			continue
		}

		b, ok := stack.PopBack()
		if !ok {
			return nil, errors.Errorf("token %d %q: not enough operands", i+1, tok)
		}
		a, ok := stack.PopBack()
		if !ok {
			return nil, errors.Errorf("token %d %q: not enough operands", i+1, tok)
		}
		result := apply(a.(*infiniteint.InfiniteInt), b.(*infiniteint.InfiniteInt))
		logger.Debugf("%s %s %s = %s", a, tok, b, result)
		stack.PushBack(result)
	}

	result, ok := stack.PopBack()
	if !ok {
		return nil, errors.New("empty expression")
	}
	if stack.Len() != 0 {
		return nil, errors.Errorf("%d operands left on the stack", stack.Len())
	}
	return result.(*infiniteint.InfiniteInt), nil
}
