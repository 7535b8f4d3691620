package cli

import (
	"fmt"

	"github.com/ka2n/mcpdocs/api"
	"github.com/ka2n/mcpdocs/config"
	"github.com/ka2n/mcpdocs/log"
	"github.com/ka2n/mcpdocs/mcp"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Version information. Commit and Date are set at link time and fall back to
// the VCS stamp in the binary:
//
//	go build -ldflags "-X github.com/ka2n/mcpdocs/cli.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/mcpdocs
var (
	Version = api.Version
	Commit  = ""
	Date    = ""
)

// app carries the settings shared by every subcommand
type app struct {
	cfg       config.Config
	seedFlag  string
	debugFlag bool
}

// NewRootCommand builds the mcpdocs command tree
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:           "mcpdocs",
		Short:         "Serve an in-memory document collection over MCP",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `mcpdocs holds a small set of named text documents in memory and exposes
them to MCP clients over stdio: tools to read and edit documents, resources
listing and fetching them, and prompts to reformat or summarise them.

The other subcommands work on a fresh copy of the same documents, so edits
made from the terminal are not kept between runs.`,
		PersistentPreRunE: a.loadConfig,
	}

	rootCmd.PersistentFlags().StringVar(&a.seedFlag, "seed", "", "YAML file replacing the built-in documents")
	rootCmd.PersistentFlags().BoolVar(&a.debugFlag, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		mcp.Command(a.newServer),
		a.listCmd(),
		a.showCmd(),
		a.editCmd(),
		a.promptCmd(),
		versionCmd(),
	)

	return rootCmd
}

// Run executes the main CLI functionality
func Run() error {
	return NewRootCommand().Execute()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about mcpdocs",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mcpdocs version %s\n", Version)
			fmt.Fprintf(out, "  commit: %s\n", firstOrUnknown(Commit, api.VersionCommit))
			fmt.Fprintf(out, "  built:  %s\n", firstOrUnknown(Date, api.VersionDate))
		},
	}
}

func firstOrUnknown(values ...string) string {
	return lo.CoalesceOrEmpty(append(values, "unknown")...)
}

// loadConfig reads the environment and applies flag overrides
func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.SeedFile = a.seedFlag
	}
	if a.debugFlag {
		cfg.Debug = true
	}
	log.SetDebug(cfg.Debug)
	a.cfg = cfg

	log.Debug("configuration loaded",
		"seed", cfg.SeedFile,
		"server_name", cfg.ServerName,
	)
	return nil
}

func (a *app) openStore() (*api.Store, error) {
	store, err := api.OpenStore(a.cfg.SeedFile)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	return store, nil
}

func (a *app) newServer() (*mcp.Server, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	return mcp.NewServer(store, mcp.WithName(a.cfg.ServerName)), nil
}
