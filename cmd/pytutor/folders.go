package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var foldersCmd = &cobra.Command{
	Use:     "folders",
	GroupID: "library",
	Short:   "List and create folders",
}

var foldersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List folders, newest first",
	Long: `List the signed-in user's folders.

A user with no folders gets the three default folders on first listing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		folders, err := application.Library.ListFolders(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, folders)
		}
		for _, f := range folders {
			fmt.Fprintf(out, "%-24s %s\n", f.ID, f.Name)
		}
		return nil
	},
}

var foldersCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		f, err := application.Library.CreateFolder(cmd.Context(), args[0], description)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), f)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created folder %s (%s)\n", f.Name, f.ID)
		return nil
	},
}

var foldersEnsureImportCmd = &cobra.Command{
	Use:   "ensure-import",
	Short: "Create the imported folder if it is missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := application.Library.EnsureImportFolder(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), f)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", f.ID, f.Name)
		return nil
	},
}

func init() {
	foldersCreateCmd.Flags().StringP("description", "d", "", "Folder description")

	foldersCmd.AddCommand(foldersListCmd)
	foldersCmd.AddCommand(foldersCreateCmd)
	foldersCmd.AddCommand(foldersEnsureImportCmd)
	rootCmd.AddCommand(foldersCmd)
}
