// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sdk6/listkit/core/list"
	"github.com/sdk6/listkit/internal/config"
	"github.com/sdk6/listkit/internal/i18n"
	"github.com/sdk6/listkit/internal/logging"
)

// app carries the resolved settings of one root command invocation.
type app struct {
	cfg        config.Config
	incMode    list.IncrementMode
	configFile string
	unique     bool
	lang       string
	verbose    bool
	skipBad    bool
	incModeArg string
}

// separatorEscapes lets shells pass control characters as separators.
var separatorEscapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\r`, "\r")

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no listkit.yaml found, running on defaults")
	} else if err != nil {
		return errors.New(i18n.T("error.config", err))
	}

	if cmd.Flags().Changed("unique") {
		a.cfg.AllowDuplicates = !a.unique
	}
	if cmd.Flags().Changed("lang") {
		a.cfg.Language = a.lang
	}
	if cmd.Flags().Changed("increment-mode") {
		a.cfg.IncrementMode = a.incModeArg
	}
	a.cfg.Separator = separatorEscapes.Replace(a.cfg.Separator)

	if a.verbose {
		logging.SetDebug(true)
	} else if err := logging.SetLevel(a.cfg.LogLevel); err != nil {
		return err
	}
	i18n.Init(a.cfg.Language)

	a.incMode, err = list.ParseIncrementMode(a.cfg.IncrementMode)
	if err != nil {
		return err
	}
	return nil
}

// listOptions returns the container options implied by the configuration.
func (a *app) listOptions() []list.Option {
	return []list.Option{
		list.WithDuplicates(a.cfg.AllowDuplicates),
		list.WithIncrementMode(a.incMode),
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// It is used for the main application command as well as for fresh
// instances in isolated tests.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "listkit",
		Short: "listkit manipulates ordered lists of numbers and strings.",
		Long: `listkit loads lists from text files, one element per line (or split by
--separator), and runs queries and transformations on them: sorting,
duplicate elimination, filters, range queries, case mapping and arithmetic.
Lists can be saved by name into a database and backed up as compressed JSON.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.Version = compositeVersion(resolveBuildVersion(nil))

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file")
	pf.StringP("separator", "s", "", `element separator for reading and writing (default newline; accepts \n, \t)`)
	pf.BoolVar(&a.unique, "unique", false, "reject duplicate elements")
	pf.StringVar(&a.lang, "lang", "en", `output language ("en", "de")`)
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.skipBad, "skip-invalid", false, "skip tokens that cannot be parsed instead of failing")
	pf.StringVar(&a.incModeArg, "increment-mode", "literal", `how increment treats its delta ("literal" adds 1, "delta" adds the delta)`)
	pf.String("store.type", "sqlite", "store database type (sqlite, postgres, mysql)")
	pf.String("store.dsn", "./listkit.db", "store connection string (DSN)")

	cmd.AddCommand(
		newPrintCmd(a),
		newStatsCmd(a),
		newFilterCmd(a),
		newRangeCmd(a),
		newEqualCmd(a),
		newSortCmd(a),
		newDedupCmd(a),
		newTransformCmd(a),
		newMathCmd(a),
		newSaveCmd(a),
		newLoadCmd(a),
		newListsCmd(a),
		newDeleteCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}
