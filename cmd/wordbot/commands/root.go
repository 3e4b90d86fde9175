package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"wordbot/internal/app"
)

// options carries the state shared by the command tree.
type options struct {
	configFile string
	v          *viper.Viper
	cfg        *app.Config
	wire       *app.Wire
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	o := &options{v: app.NewViper()}

	root := &cobra.Command{
		Use:           "wordbot",
		Short:         "Keep a deduplicated word list through chat commands",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(o.v, o.configFile)
			if err != nil {
				return err
			}
			wire, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			o.cfg, o.wire = cfg, wire
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.wire == nil {
				return nil
			}
			return o.wire.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "config file (yaml, json, toml or .env)")
	pf.String("data", "", "word list file (default data/added_words.json)")
	pf.String("debug", "", "debug flag shown by /status (default False)")
	pf.String("log-dir", "", "directory for log files (default stderr)")
	bindFlags(o.v, pf, map[string]string{
		"data_path": "data",
		"debug":     "debug",
		"log_dir":   "log-dir",
	})

	root.AddCommand(execCmd(o), chatCmd(o), serveCmd(o))
	return root
}

// bindFlags binds config keys to flags; a flag only wins when it is set.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		_ = v.BindPFlag(key, fs.Lookup(flag))
	}
}
