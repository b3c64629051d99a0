package main

import (
	"encoding/json"
	"fmt"
	"iter"
	"os"

	"github.com/spf13/cobra"

	"github.com/tphakala/go-secadvisor"
)

func newProvidersCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "Inspect finding providers",
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the providers of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			seq := secadvisor.AllProviders(cmd.Context(), c.client.Findings, account, 0)
			providers, err := collect(seq, limit)
			if err != nil {
				return fmt.Errorf("listing providers: %w", err)
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), providers)
			}
			for _, p := range providers {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.ID, p.Name)
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of providers to list (0 for all)")

	cmd.AddCommand(listCmd)
	return cmd
}

func newNotesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage the notes of a provider",
	}

	var (
		limit    int
		pageSize int64
	)
	listCmd := &cobra.Command{
		Use:   "list PROVIDER",
		Short: "List the notes of a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			notes, err := collect(secadvisor.AllNotes(cmd.Context(), c.client.Findings, account, args[0], pageSize), limit)
			if err != nil {
				return fmt.Errorf("listing notes: %w", err)
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), notes)
			}
			for _, n := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", n.ID, n.Kind, n.ShortDescription)
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of notes to list (0 for all)")
	listCmd.Flags().Int64Var(&pageSize, "page-size", 0, "Notes requested per page")

	getCmd := &cobra.Command{
		Use:   "get PROVIDER NOTE_ID",
		Short: "Show a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			note, _, err := c.client.Findings.GetNote(cmd.Context(), account, args[0], args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), note)
		},
	}

	var createFile string
	createCmd := &cobra.Command{
		Use:   "create PROVIDER",
		Short: "Create a note from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			var note secadvisor.Note
			if err := readJSONFile(createFile, &note); err != nil {
				return err
			}
			created, _, err := c.client.Findings.CreateNote(cmd.Context(), account, args[0], &note)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), created)
		},
	}
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "Note JSON file")
	_ = createCmd.MarkFlagRequired("file")

	deleteCmd := &cobra.Command{
		Use:   "delete PROVIDER NOTE_ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			if _, err := c.client.Findings.DeleteNote(cmd.Context(), account, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %s\n", args[1])
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, createCmd, deleteCmd)
	return cmd
}

func newOccurrencesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "occurrences",
		Aliases: []string{"occ"},
		Short:   "Manage the occurrences of a provider",
	}

	var (
		limit  int
		noteID string
	)
	listCmd := &cobra.Command{
		Use:   "list PROVIDER",
		Short: "List the occurrences of a provider or of one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			seq := secadvisor.AllOccurrences(cmd.Context(), c.client.Findings, account, args[0], 0)
			if noteID != "" {
				seq = secadvisor.AllNoteOccurrences(cmd.Context(), c.client.Findings, account, args[0], noteID, 0)
			}
			occurrences, err := collect(seq, limit)
			if err != nil {
				return fmt.Errorf("listing occurrences: %w", err)
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), occurrences)
			}
			for _, o := range occurrences {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", o.ID, o.Kind, o.NoteName)
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of occurrences to list (0 for all)")
	listCmd.Flags().StringVar(&noteID, "note", "", "Only list occurrences of this note")

	getCmd := &cobra.Command{
		Use:   "get PROVIDER OCCURRENCE_ID",
		Short: "Show an occurrence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			occ, _, err := c.client.Findings.GetOccurrence(cmd.Context(), account, args[0], args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), occ)
		},
	}

	noteCmd := &cobra.Command{
		Use:   "note PROVIDER OCCURRENCE_ID",
		Short: "Show the note of an occurrence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			note, _, err := c.client.Findings.GetOccurrenceNote(cmd.Context(), account, args[0], args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), note)
		},
	}

	var (
		createFile string
		replace    bool
	)
	createCmd := &cobra.Command{
		Use:   "create PROVIDER",
		Short: "Create an occurrence from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			var occ secadvisor.Occurrence
			if err := readJSONFile(createFile, &occ); err != nil {
				return err
			}
			var opts *secadvisor.CreateOccurrenceOptions
			if cmd.Flags().Changed("replace") {
				opts = &secadvisor.CreateOccurrenceOptions{ReplaceIfExists: secadvisor.Ptr(replace)}
			}
			created, _, err := c.client.Findings.CreateOccurrence(cmd.Context(), account, args[0], &occ, opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), created)
		},
	}
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "Occurrence JSON file")
	createCmd.Flags().BoolVar(&replace, "replace", false, "Replace an existing occurrence with the same id")
	_ = createCmd.MarkFlagRequired("file")

	deleteCmd := &cobra.Command{
		Use:   "delete PROVIDER OCCURRENCE_ID",
		Short: "Delete an occurrence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}
			if _, err := c.client.Findings.DeleteOccurrence(cmd.Context(), account, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted occurrence %s\n", args[1])
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, noteCmd, createCmd, deleteCmd)
	return cmd
}

func newGraphCmd(c *cli) *cobra.Command {
	var (
		file     string
		jsonBody bool
	)
	cmd := &cobra.Command{
		Use:   "graph [QUERY]",
		Short: "Run a graph query over the account's findings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := c.account()
			if err != nil {
				return err
			}

			var query string
			switch {
			case len(args) == 1:
				query = args[0]
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading query: %w", err)
				}
				query = string(data)
			default:
				return fmt.Errorf("a query argument or --file is required")
			}

			q := &secadvisor.GraphQuery{Query: query}
			if jsonBody {
				q.ContentType = secadvisor.GraphContentTypeJSON
			}
			result, _, err := c.client.Findings.PostGraph(cmd.Context(), account, q)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the query from a file")
	cmd.Flags().BoolVar(&jsonBody, "json-body", false, "Send the query as an application/json request")
	return cmd
}

// collect gathers up to limit items, or all of them when limit is zero.
func collect[T any](seq iter.Seq2[T, error], limit int) ([]T, error) {
	if limit > 0 {
		return secadvisor.CollectN(seq, limit)
	}
	return secadvisor.Collect(seq)
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
