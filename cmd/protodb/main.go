package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/Jadiker/prototype-database/internal/cliconfig"
	"github.com/Jadiker/prototype-database/pkg/codec"
	"github.com/Jadiker/prototype-database/pkg/log"
	"github.com/Jadiker/prototype-database/pkg/store"
)

const longHelp = `Reloadable single-value database over timestamped save records.

protodb keeps one database value per directory. Every save writes a full
snapshot to a new timestamped record and updates a single-line pointer
file naming the latest one; earlier records stay on disk as history.

This CLI operates on a JSON-object database (string keys, arbitrary
values) and is primarily a demonstration of the library in pkg/store.`

const exampleUsage = `  protodb --dir mydata set wow haha
  protodb --dir mydata show
  protodb history
  protodb prune --keep 5
  protodb watch`

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the assembled configuration and store across subcommands.
type app struct {
	cfg    cliconfig.Config
	logger zerolog.Logger
	db     *store.Store[map[string]any]
}

func (a *app) setup(cmd *cobra.Command, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	// Build set of changed flags so file and env never override explicit flags.
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	// Environment variables (PROTODB_*) override file config but lose to flags.
	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = cliconfig.Logger(a.cfg.Verbose)

	var c codec.Codec
	switch a.cfg.Codec {
	case cliconfig.CodecJSON:
		c = codec.NewJSONCodec()
	default:
		c = codec.NewGobCodec()
	}

	db, err := store.New(
		store.Config{
			Dir:          a.cfg.Dir,
			PointerFile:  a.cfg.PointerFile,
			RecordPrefix: a.cfg.RecordPrefix,
		},
		func() map[string]any { return map[string]any{} },
		store.WithCodec(c),
		store.WithLogger(log.NewZerologAdapterWithLogger(a.logger)),
	)
	if err != nil {
		return err
	}
	a.db = db
	return nil
}

func (a *app) printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// parseValue interprets a CLI argument as JSON when possible and falls
// back to a plain string, so `set n 42` stores a number and
// `set name bob` stores a string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func main() {
	var a app
	a.cfg = cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "protodb",
		Short:   "Reloadable single-value database over timestamped save records",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, cfgPath)
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.protodb/config.toml)")
	root.PersistentFlags().StringVar(&a.cfg.Dir, "dir", a.cfg.Dir, "directory holding save records and the pointer file")
	root.PersistentFlags().StringVar(&a.cfg.PointerFile, "pointer-file", a.cfg.PointerFile, "name of the pointer file")
	root.PersistentFlags().StringVar(&a.cfg.RecordPrefix, "record-prefix", a.cfg.RecordPrefix, "prefix for save record filenames")
	root.PersistentFlags().StringVar(&a.cfg.Codec, "codec", a.cfg.Codec, "save record format: gob or json")
	root.PersistentFlags().BoolVarP(&a.cfg.Verbose, "verbose", "v", a.cfg.Verbose, "enable debug logging")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.db.ExposeOrLoad()
			if err != nil {
				return err
			}
			return a.printJSON(v)
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a key and save a new record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.db.Update(func(v *map[string]any) error {
				(*v)[args[0]] = parseValue(args[1])
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "del <key>",
		Short: "Delete a key and save a new record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.db.Update(func(v *map[string]any) error {
				delete(*v, args[0])
				return nil
			})
		},
	}

	latest := &cobra.Command{
		Use:   "latest",
		Short: "Print the save record the pointer file names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.db.Latest()
			if err != nil {
				return err
			}
			if record == "" {
				fmt.Println("no database saved yet")
				return nil
			}
			fmt.Println(record)
			return nil
		},
	}

	history := &cobra.Command{
		Use:   "history",
		Short: "List all save records, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.db.History()
			if err != nil {
				return err
			}
			for _, r := range records {
				fmt.Printf("%s  %8d  %s\n", r.SavedAt.Format("2006-01-02 15:04:05"), r.Size, r.Path)
			}
			return nil
		},
	}

	var keep int
	prune := &cobra.Command{
		Use:   "prune",
		Short: "Remove old save records, keeping the newest ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("keep") {
				keep = a.cfg.KeepRecords
			}
			removed, err := a.db.Prune(keep)
			if err != nil {
				return err
			}
			a.logger.Info().Int("removed", removed).Int("kept", keep).Msg("prune completed")
			return nil
		},
	}
	prune.Flags().IntVar(&keep, "keep", cliconfig.DefaultConfig().KeepRecords, "number of records to keep")

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Watch the pointer file and report new saves until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				a.logger.Info().Msg("received signal, stopping...")
				cancel()
			}()

			return a.db.Watch(ctx, func(record string) {
				a.logger.Info().Str("record", record).Msg("database saved")
			})
		},
	}

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run the load/mutate/save walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.db.Load()
			if err != nil {
				return err
			}
			if err := a.printJSON(v); err != nil {
				return err
			}

			v["wow"] = "haha"
			if err := a.db.SaveValue(v); err != nil {
				return err
			}

			// Scoped session: the save runs on exit no matter what.
			if err := a.db.Update(func(v *map[string]any) error {
				(*v)["hi"] = "yay"
				return nil
			}); err != nil {
				return err
			}

			final, err := a.db.Expose()
			if err != nil {
				return err
			}
			return a.printJSON(final)
		},
	}

	root.AddCommand(show, set, del, latest, history, prune, watch, demo)

	if err := root.Execute(); err != nil {
		logger := cliconfig.Logger(false)
		logger.Error().Err(err).Msg("protodb")
		os.Exit(1)
	}
}
