package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tphakala/go-secadvisor"
)

var errNoAccount = errors.New("no account id: set account_id in the profile, SECADVISOR_ACCOUNT_ID or --account")

// cli holds the state shared by all subcommands.
type cli struct {
	verbose    bool
	configPath string
	profile    string
	accountID  string
	jsonOut    bool

	getenv    func(string) string
	newClient func(cfg *config, logger *slog.Logger) (*secadvisor.Client, error)

	cfg    *config
	client *secadvisor.Client
}

func newCLI() *cli {
	return &cli{
		getenv:    os.Getenv,
		newClient: newClient,
	}
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "secadvisor",
		Short: "Query and manage Security Advisor findings and notification channels",
		Long: `secadvisor talks to the IBM Cloud Security Advisor findings and
notifications APIs. Credentials and the account are read from a YAML profile
and can be overridden with SECADVISOR_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			if cmd.Name() == "version" {
				return nil
			}

			cfg, err := loadConfig(c.configPath, c.profile, c.getenv)
			if err != nil {
				return err
			}
			if c.accountID != "" {
				cfg.AccountID = c.accountID
			}
			c.cfg = cfg

			client, err := c.newClient(cfg, logger)
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}
			c.client = client
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "Path to the profile file (default $XDG_CONFIG_HOME/secadvisor/config.yaml)")
	flags.StringVarP(&c.profile, "profile", "p", defaultProfile, "Profile to use from the config file")
	flags.StringVar(&c.accountID, "account", "", "Account id, overriding the profile")
	flags.BoolVar(&c.jsonOut, "json", false, "Output in JSON format")

	rootCmd.AddCommand(
		newProvidersCmd(c),
		newNotesCmd(c),
		newOccurrencesCmd(c),
		newChannelsCmd(c),
		newGraphCmd(c),
		newPublicKeyCmd(c),
		newVersionCmd(),
	)
	return rootCmd
}

// account returns the configured account id.
func (c *cli) account() (string, error) {
	if c.cfg == nil || c.cfg.AccountID == "" {
		return "", errNoAccount
	}
	return c.cfg.AccountID, nil
}

func newClient(cfg *config, logger *slog.Logger) (*secadvisor.Client, error) {
	opts := []secadvisor.ClientOption{
		secadvisor.WithBearerToken(cfg.APIToken),
		secadvisor.WithLogger(logger),
	}
	switch {
	case cfg.URL != "":
		opts = append(opts, secadvisor.WithBaseURL(cfg.URL))
	case cfg.Region != "":
		opts = append(opts, secadvisor.WithRegion(cfg.Region))
	}
	return secadvisor.NewClient(opts...)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
