// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"cmp"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdk6/listkit/core/list"
	"github.com/sdk6/listkit/internal/i18n"
)

func (a *app) readOptions() list.ReadOptions {
	return list.ReadOptions{Validate: a.skipBad, Separator: a.cfg.Separator}
}

func (a *app) readNumbers(path string) (*list.Numbers, error) {
	n := list.NewNumbers(a.listOptions()...)
	if err := n.ReadFile(path, a.readOptions()); err != nil {
		return nil, err
	}
	return n, nil
}

func (a *app) readStrings(path string) (*list.Strings, error) {
	s := list.NewStrings(a.listOptions()...)
	if err := s.ReadFile(path, a.readOptions()); err != nil {
		return nil, err
	}
	return s, nil
}

// emit writes l to out with the configured separator, or prints it one
// element per line when out is empty.
func emit[T cmp.Ordered](a *app, cmd *cobra.Command, l *list.List[T], out string) error {
	if out == "" {
		return l.Fprint(cmd.OutOrStdout(), "", false)
	}
	if err := l.WriteFile(out, a.cfg.Separator); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T("write.done", l.Size(), out))
	return err
}

// printValues prints values one per line using the traits formatter.
func printValues[T cmp.Ordered](cmd *cobra.Command, traits list.Traits[T], values []T) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), traits.Format(v)); err != nil {
			return err
		}
	}
	return nil
}
