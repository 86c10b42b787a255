package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"github.com/bearlytools/enumkit/internal/bits"
)

var (
	binaryOps = map[string]func(bits.Ops, uint64, uint64) uint64{
		"or":     bits.Ops.Or,
		"and":    bits.Ops.And,
		"andnot": bits.Ops.AndNot,
		"xor":    bits.Ops.Xor,
	}
	unaryOps = map[string]func(bits.Ops, uint64) uint64{
		"backfill": bits.Ops.Backfill,
		"lsb":      bits.Ops.LSB,
		"msb":      bits.Ops.MSB,
	}
	shiftOps = map[string]func(bits.Ops, uint64, uint) uint64{
		"shl": bits.Ops.ShiftLeft,
		"shr": bits.Ops.ShiftRight,
	}
)

func opNames() []string {
	names := []string{"pow2", "count"}
	names = slices.AppendSeq(names, maps.Keys(binaryOps))
	names = slices.AppendSeq(names, maps.Keys(unaryOps))
	names = slices.AppendSeq(names, maps.Keys(shiftOps))
	slices.Sort(names)
	return names
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops <kind> <op> <x> [y|n]",
		Short: "Run one bit primitive at a fixed width",
		Long: fmt.Sprintf(`Runs one primitive from the width dispatch table and prints the result in
decimal and binary. kind is one of int8..uint64. Operands accept Go integer
literals (0x, 0b, 0o prefixes). The shift operations take a count n instead of y.

Operations: %s`, strings.Join(opNames(), ", ")),
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runOp(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			headingColor.Fprintf(w, "%s %s\n", args[0], args[1])
			fmt.Fprintln(w, out)
			return nil
		},
	}
}

// runOp executes "ops" with args and returns the line to print.
func runOp(args []string) (string, error) {
	k, err := bits.ParseKind(args[0])
	if err != nil {
		return "", err
	}
	o, err := bits.For(k)
	if err != nil {
		return "", err
	}
	op := strings.ToLower(args[1])
	x, err := operand(k, args[2])
	if err != nil {
		return "", err
	}

	if fn, ok := binaryOps[op]; ok {
		if len(args) != 4 {
			return "", fmt.Errorf("%s needs two operands", op)
		}
		y, err := operand(k, args[3])
		if err != nil {
			return "", err
		}
		return render(k, fn(o, x, y)), nil
	}
	if fn, ok := shiftOps[op]; ok {
		if len(args) != 4 {
			return "", fmt.Errorf("%s needs a shift count", op)
		}
		n, err := shiftCount(args[3])
		if err != nil {
			return "", err
		}
		return render(k, fn(o, x, n)), nil
	}

	if len(args) != 3 {
		return "", fmt.Errorf("%s takes one operand", op)
	}
	if fn, ok := unaryOps[op]; ok {
		return render(k, fn(o, x)), nil
	}
	switch op {
	case "pow2":
		return strconv.FormatBool(o.IsPowerOfTwo(x)), nil
	case "count":
		return strconv.Itoa(o.Count(x)), nil
	}
	return "", fmt.Errorf("unknown operation %q (want one of %s)", op, strings.Join(opNames(), ", "))
}

// operand parses s into the carrier for k.
func operand(k bits.Kind, s string) (uint64, error) {
	if k.Signed() {
		n, err := strconv.ParseInt(s, 0, k.Bits())
		if err != nil {
			return 0, fmt.Errorf("%q is not an %s: %w", s, k, err)
		}
		return uint64(n), nil
	}
	n, err := strconv.ParseUint(s, 0, k.Bits())
	if err != nil {
		return 0, fmt.Errorf("%q is not a %s: %w", s, k, err)
	}
	return n, nil
}

func shiftCount(s string) (uint, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("shift count %q: %w", s, err)
	}
	n, err := safecast.Conv[uint](i)
	if err != nil {
		return 0, fmt.Errorf("shift count %d: %w", i, err)
	}
	return n, nil
}

// render prints a carrier as decimal and as a binary pattern of k's width.
func render(k bits.Kind, v uint64) string {
	var dec string
	if k.Signed() {
		dec = strconv.FormatInt(int64(v), 10)
	} else {
		dec = strconv.FormatUint(v, 10)
	}
	width := k.Bits()
	pattern := v
	if width < 64 {
		pattern &= 1<<width - 1
	}
	return fmt.Sprintf("%s 0b%0*b", dec, width, pattern)
}
