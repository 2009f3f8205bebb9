package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/ancestry"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/level"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
	"github.com/cory-johannsen/fage2e/internal/sheet"
	"github.com/cory-johannsen/fage2e/internal/snapshot"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "fagectl",
		Short:         "Build Fantasy AGE characters",
		Long:          `fagectl stores level 1 character drafts and reports which choices are complete, incomplete or invalid.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to configuration file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before configuration")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level, including every die rolled")

	root.AddCommand(newNewCmd(a), newShowCmd(a), newImportCmd(a), newExportCmd(a), newDeleteCmd(a), newRollCmd(a))
	return root
}

func newNewCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty level 1 draft and print its key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := snapshot.NewKey()
			l := newLevel1()
			l.Name.Name = name
			if err := a.drafts.Set(cmd.Context(), key, l); err != nil {
				return err
			}
			a.logger.Info("draft created", zap.String("key", key))
			fmt.Fprintln(a.out, key)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "character name")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var blank bool
	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Print the character sheet and the status of every choice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				l   *level.Level1
				err error
			)
			if blank {
				l, err = a.drafts.Get(cmd.Context(), args[0], newLevel1)
			} else {
				l, err = a.drafts.Load(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			c, done, applyErr := l.Build()
			if err := sheet.Render(a.out, c, rules.DefaultCatalog()); err != nil {
				return err
			}
			fmt.Fprintln(a.out)
			if err := sheet.RenderReports(a.out, advancement.Inspect(l, character.New())); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "\nstatus: %s\n", advancement.StatusOf(done, applyErr))
			return nil
		},
	}
	cmd.Flags().BoolVar(&blank, "blank", false, "show an empty draft when the key is not stored")
	return cmd
}

func codecFor(path, format string) (snapshot.Codec, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	switch format {
	case "yaml", "yml", "":
		return snapshot.YAML{}, nil
	case "json":
		return snapshot.JSON{}, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

func newImportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import <key> <file>",
		Short: "Replace a draft with the contents of a YAML or JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := codecFor(args[1], format)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading draft: %w", err)
			}
			l := newLevel1()
			if err := codec.Unmarshal(data, l); err != nil {
				return fmt.Errorf("decoding %s: %w", args[1], err)
			}
			return a.drafts.Set(cmd.Context(), args[0], l)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "yaml or json; defaults to the file extension")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <key>",
		Short: "Print a draft as YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := codecFor("", format)
			if err != nil {
				return err
			}
			l, err := a.drafts.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := codec.Marshal(l)
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "yaml or json")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.drafts.Delete(cmd.Context(), args[0])
		},
	}
}

func newRollCmd(a *app) *cobra.Command {
	roll := &cobra.Command{
		Use:   "roll",
		Short: "Fill dice-driven choices of a draft",
	}
	roll.AddCommand(
		rollSubcommand(a, "health", "Roll the level 1 health die", func(l *level.Level1) error {
			l.Health.Roll(a.roller)
			fmt.Fprintf(a.out, "health roll: %d\n", *l.Health.RollResult)
			return nil
		}),
		rollSubcommand(a, "abilities", "Roll 3d6 for every ability", func(l *level.Level1) error {
			r := &advancement.RollAbilities{}
			r.Roll(a.roller)
			l.Abilities.Method = r
			for i, ab := range rules.Abilities() {
				fmt.Fprintf(a.out, "%s: %d\n", ab, advancement.ScoreForRoll(*r.Rolls[i]))
			}
			return nil
		}),
		rollSubcommand(a, "benefits", "Roll two ancestry benefits", func(l *level.Level1) error {
			d, ok := l.Ancestry.Selected.(*ancestry.DraakSelections)
			if !ok {
				return fmt.Errorf("ancestry has no benefit table")
			}
			if err := advancement.RollBenefits(&d.Benefits, a.roller); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "benefits: %s, %s\n", *d.Benefits.Selection1, *d.Benefits.Selection2)
			return nil
		}),
	)
	return roll
}

func rollSubcommand(a *app, use, short string, fill func(*level.Level1) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <key>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.drafts.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := fill(l); err != nil {
				return err
			}
			return a.drafts.Set(cmd.Context(), args[0], l)
		},
	}
}
