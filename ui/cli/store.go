// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sdk6/listkit/core/list"
	"github.com/sdk6/listkit/internal/i18n"
	"github.com/sdk6/listkit/internal/logging"
	"github.com/sdk6/listkit/internal/store"
)

// withStore opens the configured store for the duration of fn.
func (a *app) withStore(ctx context.Context, fn func(*store.Store) error) error {
	s, err := store.New(ctx, a.cfg.Store.Type, a.cfg.Store.DSN)
	if err != nil {
		return err
	}
	logging.Infof("store: using %s", s.Type())
	defer func() { _ = s.Close() }()
	return fn(s)
}

func newSaveCmd(a *app) *cobra.Command {
	var numbers bool
	cmd := &cobra.Command{
		Use:   "save NAME FILE",
		Short: "Save a list file into the store under NAME",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var snap store.Snapshot
			if numbers {
				n, err := a.readNumbers(args[1])
				if err != nil {
					return err
				}
				snap = store.Capture(args[0], n.List)
			} else {
				s, err := a.readStrings(args[1])
				if err != nil {
					return err
				}
				snap = store.Capture(args[0], s.List)
			}
			return a.withStore(cmd.Context(), func(st *store.Store) error {
				if err := st.SaveList(cmd.Context(), snap); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T("store.saved", len(snap.Values), snap.Name))
				return err
			})
		},
	}
	cmd.Flags().BoolVarP(&numbers, "numbers", "n", false, "treat elements as numbers")
	return cmd
}

func newLoadCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "load NAME",
		Short: "Print a saved list or write it to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(st *store.Store) error {
				snap, err := st.LoadList(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if snap.Kind == list.KindNumber {
					n, err := snap.Numbers(list.WithIncrementMode(a.incMode))
					if err != nil {
						return err
					}
					return emit(a, cmd, n.List, out)
				}
				s, err := snap.Strings()
				if err != nil {
					return err
				}
				return emit(a, cmd, s.List, out)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the list to this file instead of stdout")
	return cmd
}

func newListsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show the saved lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd.Context(), func(st *store.Store) error {
				summaries, err := st.Lists(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if len(summaries) == 0 {
					_, err := fmt.Fprintln(w, i18n.T("store.none"))
					return err
				}
				sty := newStyler(w)
				for _, s := range summaries {
					line := i18n.T("store.entry", sty.title(s.Name), s.Kind, s.Size)
					if !s.AllowDuplicates {
						line += " " + sty.dim(i18n.T("store.unique"))
					}
					if _, err := fmt.Fprintln(w, line); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(st *store.Store) error {
				if err := st.DeleteList(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T("store.deleted", args[0]))
				return err
			})
		},
	}
}

func newBackupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output-file]",
		Short: "Create a compressed (zstd) JSON backup of all saved lists",
		Long: `Dumps every saved list into a single, Zstandard-compressed JSON file.

If an output file is specified, '.zst' will be appended to the name if it's not already present.
If no output file is specified, a default filename 'listkit-backup-YYYY-MM-DD.json.zst' is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := store.DefaultBackupName(time.Now())
			if len(args) > 0 {
				path = args[0]
				if !strings.HasSuffix(path, ".zst") {
					path += ".zst"
				}
			}
			return a.withStore(cmd.Context(), func(st *store.Store) error {
				n, err := st.Backup(cmd.Context(), path)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("backup.written", path), newStyler(cmd.OutOrStdout()).dim(fmt.Sprintf("(%d)", n)))
				return err
			})
		},
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore BACKUP",
		Short: "Restore saved lists from a backup file",
		Long:  "Loads every list in the backup, replacing saved lists with the same name. Other saved lists are left untouched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(st *store.Store) error {
				n, err := st.Restore(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("restore.done", n, args[0]))
				return err
			})
		},
	}
}
