package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/go-secadvisor"
)

func newChannelsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "Manage notification channels",
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the notification channels of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			channels, err := collect(secadvisor.AllChannels(cmd.Context(), c.client.Notifications, account, 0), limit)
			if err != nil {
				return fmt.Errorf("listing channels: %w", err)
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), channels)
			}
			for _, ch := range channels {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					deref(ch.ChannelID), deref(ch.Name), enabled(ch.Enabled))
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of channels to list (0 for all)")

	getCmd := &cobra.Command{
		Use:   "get CHANNEL_ID",
		Short: "Show a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			result, _, err := c.client.Notifications.GetChannel(cmd.Context(), account, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result.Channel)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete CHANNEL_ID...",
		Short: "Delete one or more channels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				result, _, err := c.client.Notifications.DeleteChannel(cmd.Context(), account, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), deref(result.Message))
				return nil
			}
			result, _, err := c.client.Notifications.DeleteChannels(cmd.Context(), account, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), deref(result.Message))
			return nil
		},
	}

	testCmd := &cobra.Command{
		Use:   "test CHANNEL_ID",
		Short: "Send a test notification through a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			result, _, err := c.client.Notifications.TestChannel(cmd.Context(), account, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), deref(result.Test))
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, deleteCmd, testCmd)
	return cmd
}

func newPublicKeyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "public-key",
		Short: "Print the key that signs notification payloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			result, _, err := c.client.Notifications.GetPublicKey(cmd.Context(), account)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.PublicKey)
			return nil
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func enabled(b *bool) string {
	switch {
	case b == nil:
		return "-"
	case *b:
		return "enabled"
	default:
		return "disabled"
	}
}
