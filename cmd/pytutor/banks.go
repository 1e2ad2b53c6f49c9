package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

var banksCmd = &cobra.Command{
	Use:     "banks",
	GroupID: "library",
	Short:   "Manage question banks",
}

var banksListCmd = &cobra.Command{
	Use:   "list <folder-id>",
	Short: "List the banks of a folder, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		banks, err := application.Library.ListBanksByFolder(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, banks)
		}
		if len(banks) == 0 {
			fmt.Fprintln(out, "No banks in this folder")
			return nil
		}
		for _, b := range banks {
			fmt.Fprintf(out, "%-36s %3d  %s\n", b.ID, len(b.Problems), b.Title)
		}
		return nil
	},
}

var banksShowCmd = &cobra.Command{
	Use:   "show <bank-id>",
	Short: "Show a bank and its problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := application.Library.GetBank(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, bank)
		}
		fmt.Fprintf(out, "%s (%s)\n", bank.Title, bank.ID)
		fmt.Fprintf(out, "Folder: %s\n", bank.FolderID)
		for _, p := range bank.Problems {
			fmt.Fprintf(out, "\n[%s] %s\n%s\n", p.ID, p.Title, p.Description)
		}
		return nil
	},
}

var banksCreateCmd = &cobra.Command{
	Use:   "create <folder-id> [title]",
	Short: "Create a bank from a problems file or a PDF",
	Long: `Create a bank in a folder.

Problems come from exactly one source:
  --problems  a JSON array of {"id","title","description"} objects
  --pdf       a PDF handed to the configured model for extraction

Without a title the file name is used.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		problemsPath, _ := cmd.Flags().GetString("problems")
		pdfPath, _ := cmd.Flags().GetString("pdf")
		if (problemsPath == "") == (pdfPath == "") {
			return errors.New("exactly one of --problems and --pdf is required")
		}

		source := problemsPath + pdfPath
		title := titleFromPath(source)
		if len(args) == 2 {
			title = args[1]
		}

		ctx := cmd.Context()
		var (
			bank *questionbank.QuestionBank
			err  error
		)
		if pdfPath != "" {
			pdf, rerr := os.ReadFile(pdfPath)
			if rerr != nil {
				return rerr
			}
			bank, err = application.Extraction.ExtractToBank(ctx, args[0], title, pdf)
		} else {
			problems, rerr := readProblems(problemsPath)
			if rerr != nil {
				return rerr
			}
			bank, err = application.Library.CreateBank(ctx, args[0], title, problems)
		}
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), bank)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created bank %s with %d problems (%s)\n", bank.Title, len(bank.Problems), bank.ID)
		return nil
	},
}

var banksDeleteCmd = &cobra.Command{
	Use:   "delete <bank-id>",
	Short: "Delete a bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.Library.DeleteBank(cmd.Context(), args[0]); err != nil {
			return err
		}
		if !jsonOutput {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted bank %s\n", args[0])
		}
		return nil
	},
}

func init() {
	banksCreateCmd.Flags().String("problems", "", "JSON file with the problems")
	banksCreateCmd.Flags().String("pdf", "", "PDF file to extract problems from")

	banksCmd.AddCommand(banksListCmd)
	banksCmd.AddCommand(banksShowCmd)
	banksCmd.AddCommand(banksCreateCmd)
	banksCmd.AddCommand(banksDeleteCmd)
	rootCmd.AddCommand(banksCmd)
}

func readProblems(path string) ([]questionbank.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var problems []questionbank.Problem
	if err := json.Unmarshal(data, &problems); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return problems, nil
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
