package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"addressbook/internal/app"
	"addressbook/internal/store"
)

// logToFile marks commands whose logs must not reach the terminal.
const logToFile = "log-to-file"

var (
	configPath string
	home       string
	backend    string
	dataFile   string
	passphrase string
	logLevel   string

	wire *app.Wire
)

func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if wire != nil {
		_ = wire.Close()
		wire = nil
	}
	return err
}

// NewRootCmd builds the command tree. Running it without a subcommand
// opens the shell.
func NewRootCmd() *cobra.Command {
	shell := shellCmd()
	root := &cobra.Command{
		Use:          "addressbook",
		Short:        "Keep track of your contacts from the terminal",
		SilenceUsage: true,
		Annotations:  shell.Annotations,
		RunE:         shell.RunE,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Annotations[logToFile] != "" && cfg.LogFile == "" {
				cfg.LogFile = filepath.Join(cfg.Home, "addressbook.log")
			}
			wire, err = app.NewWire(cmd.Context(), cfg, cmd.ErrOrStderr())
			return err
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	f.StringVar(&home, "home", "", "data dir (default ~/.addressbook)")
	f.StringVar(&backend, "storage", "", "storage backend: json, sqlite or badger")
	f.StringVar(&dataFile, "data-file", "", "data location (default depends on --storage)")
	f.StringVarP(&passphrase, "passphrase", "p", "", "passphrase to encrypt the json data file")
	f.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(shell, execCmd(), exportCmd(), importCmd())
	return root
}

// loadConfig layers explicitly set flags over the config file and environment.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	flags := cmd.Flags()
	path := configPath
	if path == "" && flags.Changed("home") {
		path = filepath.Join(home, app.ConfigFileName)
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		return app.Config{}, err
	}
	if flags.Changed("home") {
		cfg.Home = home
	}
	if flags.Changed("storage") {
		cfg.Storage = store.Backend(backend)
	}
	if flags.Changed("data-file") {
		cfg.DataFile = dataFile
	}
	if flags.Changed("passphrase") {
		cfg.Passphrase = passphrase
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}
