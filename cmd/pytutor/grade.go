package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pytutor-ai/backend/internal/auth"
	"github.com/pytutor-ai/backend/internal/grader"
)

var gradeCmd = &cobra.Command{
	Use:     "grade <bank-id> <problem-id> <file.py>",
	GroupID: "ai",
	Short:   "Grade a Python solution against a stored problem",
	Long: `Send a solution to the configured model and print its verdict.

Use "-" as the file to read the code from standard input.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			code []byte
			err  error
		)
		if args[2] == "-" {
			code, err = io.ReadAll(cmd.InOrStdin())
		} else {
			code, err = os.ReadFile(args[2])
		}
		if err != nil {
			return err
		}

		res, err := application.Grading.GradeSubmission(cmd.Context(), args[0], args[1], string(code))
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:     "token <uid>",
	GroupID: "library",
	Short:   "Sign an identity token for prod mode",
	Long: `Sign an HS256 identity token with JWT_SECRET.

The token works as --token here and as a Bearer token against the server.`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{"standalone": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			return fmt.Errorf("JWT_SECRET is not set")
		}
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		token, err := auth.NewVerifier(secret).Sign(auth.Identity{
			UID:         args[0],
			DisplayName: name,
			Email:       email,
		}, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("name", "", "Display name")
	tokenCmd.Flags().String("email", "", "Email address")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")

	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(tokenCmd)
}

func printResult(w io.Writer, res *grader.Result) {
	verdict := "incorrect"
	if res.IsCorrect {
		verdict = "correct"
	}
	fmt.Fprintf(w, "Score: %d/100 (%s)\n\n%s\n", res.Score, verdict, res.Feedback)
	if res.SuggestedSolution != "" {
		fmt.Fprintf(w, "\nSuggested solution:\n%s\n", res.SuggestedSolution)
	}
}
