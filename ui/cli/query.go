// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sdk6/listkit/core/list"
	"github.com/sdk6/listkit/internal/i18n"
)

func newPrintCmd(a *app) *cobra.Command {
	var numbers, numbered bool
	var prefix string
	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print the elements of a list file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if numbers {
				n, err := a.readNumbers(args[0])
				if err != nil {
					return err
				}
				return n.Fprint(cmd.OutOrStdout(), prefix, numbered)
			}
			s, err := a.readStrings(args[0])
			if err != nil {
				return err
			}
			return s.Fprint(cmd.OutOrStdout(), prefix, numbered)
		},
	}
	cmd.Flags().BoolVarP(&numbers, "numbers", "n", false, "treat elements as numbers")
	cmd.Flags().BoolVar(&numbered, "numbered", false, "prefix each element with its 1-based position")
	cmd.Flags().StringVar(&prefix, "prefix", "", "text printed before every element")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	var numbers bool
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Show size, sum and extremes of a list file",
		Long: `Shows the size of the list and its biggest and smallest element with the
index of their first occurrence. Numbers are compared by value and also get
a sum; strings are compared by length.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			st := newStyler(w)
			if _, err := fmt.Fprintln(w, st.title(args[0])); err != nil {
				return err
			}
			if numbers {
				n, err := a.readNumbers(args[0])
				if err != nil {
					return err
				}
				if err := writeStats(w, n.List); err != nil || n.IsEmpty() {
					return err
				}
				_, err = fmt.Fprintln(w, i18n.T("stats.sum", list.NumberTraits.Format(n.Sum())))
				return err
			}
			s, err := a.readStrings(args[0])
			if err != nil {
				return err
			}
			return writeStats(w, s.List)
		},
	}
	cmd.Flags().BoolVarP(&numbers, "numbers", "n", false, "treat elements as numbers")
	return cmd
}

func writeStats[T cmp.Ordered](w io.Writer, l *list.List[T]) error {
	if _, err := fmt.Fprintln(w, i18n.T("stats.size", l.Size())); err != nil {
		return err
	}
	if l.IsEmpty() {
		_, err := fmt.Fprintln(w, i18n.T("stats.empty"))
		return err
	}
	// Both calls only fail on an empty list.
	big, _ := l.Biggest()
	bigAt, _ := l.BiggestIndex()
	small, _ := l.Smallest()
	smallAt, _ := l.SmallestIndex()
	format := l.Traits().Format
	if _, err := fmt.Fprintln(w, i18n.T("stats.biggest", format(big), bigAt)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, i18n.T("stats.smallest", format(small), smallAt))
	return err
}

var filters = map[string]func(*list.Numbers) []float64{
	"evens":    (*list.Numbers).Evens,
	"odds":     (*list.Numbers).Odds,
	"primes":   (*list.Numbers).Primes,
	"perfects": (*list.Numbers).Perfects,
}

func newFilterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "filter evens|odds|primes|perfects FILE",
		Short:     "Print the numbers of a list file that match a classifier",
		Long:      "Prints matching numbers in list order. Only whole, non-negative numbers can be prime or perfect.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"evens", "odds", "primes", "perfects"},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := filters[args[0]]
			if !ok {
				return errors.New(i18n.T("error.unknown_filter", args[0]))
			}
			n, err := a.readNumbers(args[1])
			if err != nil {
				return err
			}
			return printValues(cmd, list.NumberTraits, f(n))
		},
	}
}

func newRangeCmd(a *app) *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "range START END FILE",
		Short: "Print the numbers within [START, END]",
		Long:  "Prints the numbers v with START <= v <= END in list order, or ascending with --sort.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid START %q: %w", args[0], err)
			}
			end, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid END %q: %w", args[1], err)
			}
			n, err := a.readNumbers(args[2])
			if err != nil {
				return err
			}
			return printValues(cmd, list.NumberTraits, n.InRange(start, end, sorted))
		},
	}
	cmd.Flags().BoolVar(&sorted, "sort", false, "print the matches in ascending order")
	return cmd
}

var equalityModes = []string{"multiset", "loose", "sorted"}

func compareLists[T cmp.Ordered](mode string, x, y *list.List[T]) bool {
	switch mode {
	case "loose":
		return x.LooseEquals(y)
	case "sorted":
		return x.SortedEquals(y)
	default:
		return x.Equal(y)
	}
}

func newEqualCmd(a *app) *cobra.Command {
	var numbers bool
	var mode string
	cmd := &cobra.Command{
		Use:   "equal A B",
		Short: "Compare two list files",
		Long: `Compares two list files under one of three contracts:
  multiset  same elements with the same multiplicities, in any order
  loose     same size and every element of B occurs in A
  sorted    identical after sorting both lists`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(equalityModes, mode) {
				return errors.New(i18n.T("error.unknown_mode", mode))
			}
			var same bool
			if numbers {
				x, err := a.readNumbers(args[0])
				if err != nil {
					return err
				}
				y, err := a.readNumbers(args[1])
				if err != nil {
					return err
				}
				same = compareLists(mode, x.List, y.List)
			} else {
				x, err := a.readStrings(args[0])
				if err != nil {
					return err
				}
				y, err := a.readStrings(args[1])
				if err != nil {
					return err
				}
				same = compareLists(mode, x.List, y.List)
			}
			st := newStyler(cmd.OutOrStdout())
			msg := st.bad(i18n.T("equal.no", mode))
			if same {
				msg = st.ok(i18n.T("equal.yes", mode))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	}
	cmd.Flags().BoolVarP(&numbers, "numbers", "n", false, "treat elements as numbers")
	cmd.Flags().StringVarP(&mode, "mode", "m", "multiset", "equality contract: multiset, loose or sorted")
	return cmd
}
