// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sdk6/listkit/internal/logging"
)

func newSortCmd(a *app) *cobra.Command {
	var numbers, reverse bool
	var out string
	cmd := &cobra.Command{
		Use:   "sort FILE",
		Short: "Sort a list file ascending (or descending with --reverse)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if numbers {
				n, err := a.readNumbers(args[0])
				if err != nil {
					return err
				}
				n.Sort()
				if reverse {
					n.Reverse()
				}
				return emit(a, cmd, n.List, out)
			}
			s, err := a.readStrings(args[0])
			if err != nil {
				return err
			}
			s.Sort()
			if reverse {
				s.Reverse()
			}
			return emit(a, cmd, s.List, out)
		},
	}
	cmd.Flags().BoolVarP(&numbers, "numbers", "n", false, "treat elements as numbers")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "sort descending")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the result to this file instead of stdout")
	return cmd
}

func newDedupCmd(a *app) *cobra.Command {
	var numbers bool
	var out string
	cmd := &cobra.Command{
		Use:   "dedup FILE",
		Short: "Remove duplicate elements from a list file",
		Long:  "Keeps one copy of every distinct element. The order of the result is unspecified; pipe through sort for a stable order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if numbers {
				n, err := a.readNumbers(args[0])
				if err != nil {
					return err
				}
				n.EraseDuplicates()
				return emit(a, cmd, n.List, out)
			}
			s, err := a.readStrings(args[0])
			if err != nil {
				return err
			}
			s.EraseDuplicates()
			return emit(a, cmd, s.List, out)
		},
	}
	cmd.Flags().BoolVarP(&numbers, "numbers", "n", false, "treat elements as numbers")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the result to this file instead of stdout")
	return cmd
}

func newTransformCmd(a *app) *cobra.Command {
	var upper, lower, capitalize bool
	var suffix, out string
	var at int
	cmd := &cobra.Command{
		Use:   "transform FILE",
		Short: "Change the case of a string list or append a suffix",
		Long: `Applies at most one case mapping (--upper, --lower, --capitalize) and then
appends --suffix to every element, or only to the element at --at.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.readStrings(args[0])
			if err != nil {
				return err
			}
			switch {
			case upper:
				s.ToUpperCase()
			case lower:
				s.ToLowerCase()
			case capitalize:
				s.Capitalize()
			}
			if cmd.Flags().Changed("suffix") {
				if cmd.Flags().Changed("at") {
					if err := s.ConcatAt(suffix, at); err != nil {
						return err
					}
				} else {
					s.Concat(suffix)
				}
			} else if cmd.Flags().Changed("at") {
				return errors.New("--at requires --suffix")
			}
			return emit(a, cmd, s.List, out)
		},
	}
	cmd.Flags().BoolVar(&upper, "upper", false, "convert to upper case")
	cmd.Flags().BoolVar(&lower, "lower", false, "convert to lower case")
	cmd.Flags().BoolVar(&capitalize, "capitalize", false, "upper-case the first letter of each element")
	cmd.MarkFlagsMutuallyExclusive("upper", "lower", "capitalize")
	cmd.Flags().StringVar(&suffix, "suffix", "", "text appended to the elements")
	cmd.Flags().IntVar(&at, "at", 0, "append the suffix only to the element at this 0-based index")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the result to this file instead of stdout")
	return cmd
}

func newMathCmd(a *app) *cobra.Command {
	var pow, delta float64
	var out string
	cmd := &cobra.Command{
		Use:   "math FILE",
		Short: "Increment and/or exponentiate every number of a list file",
		Long: `Applies --increment first, then --pow. With the default "literal"
increment mode every element grows by exactly 1 whatever the delta; use
--increment-mode delta (or increment_mode: delta in listkit.yaml) to add the
given delta instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.readNumbers(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("increment") {
				logging.Debugf("increment by %g in %s mode", delta, n.IncrementMode())
				n.Increment(delta)
			}
			if cmd.Flags().Changed("pow") {
				n.Pow(pow)
			}
			return emit(a, cmd, n.List, out)
		},
	}
	cmd.Flags().Float64Var(&delta, "increment", 1, "increment every element")
	cmd.Flags().Float64Var(&pow, "pow", 1, "raise every element to this power")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the result to this file instead of stdout")
	return cmd
}
