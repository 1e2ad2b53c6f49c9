package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pytutor-ai/backend/internal/share"
)

var shareCmd = &cobra.Command{
	Use:     "share <bank-id>",
	GroupID: "library",
	Short:   "Print a share link for a bank",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := application.Library.GetBank(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		link := share.Link(application.Config.ShareBaseURL, bank)
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"token": share.Encode(bank),
				"url":   link,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:     "import <link-or-token>",
	GroupID: "library",
	Short:   "Import a shared bank into the imported folder",
	Long: `Import a bank from a share link or a bare token.

Importing the same link again overwrites the earlier copy.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := application.Importer.Import(cmd.Context(), share.TokenFromURL(args[0]))
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s with %d problems (%s)\n",
			res.Bank.Title, len(res.Bank.Problems), res.Bank.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(importCmd)
}
