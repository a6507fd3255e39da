package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"arspell/internal/app"
	"arspell/internal/config"
	"arspell/internal/spellcheck"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "checker",
		Short: "Arabic dictionary spell checker",
		Long:  "Flags Arabic words absent from the reference dictionary and proposes likely corrections.",
	}

	rootCmd.AddCommand(createCheckCmd())
	rootCmd.AddCommand(createSuggestCmd())
	rootCmd.AddCommand(createNormalizeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Check text for misspellings, reading stdin when no arguments are given",
		Run: func(cmd *cobra.Command, args []string) {
			checker := buildChecker()

			text := strings.Join(args, " ")
			if text == "" {
				sc := bufio.NewScanner(os.Stdin)
				var lines []string
				for sc.Scan() {
					lines = append(lines, sc.Text())
				}
				text = strings.Join(lines, " ")
			}

			res := checker.Check(text)
			if res.Clean() {
				fmt.Println("no spelling errors found")
				return
			}
			for _, m := range res.Misspellings {
				fmt.Printf("%s:\n", m.Token)
				if len(m.Suggestions) == 0 {
					fmt.Println("  no suggestions")
					continue
				}
				for _, s := range m.Suggestions {
					fmt.Printf("  %s (%.2f)\n", s.Word, s.Score)
				}
			}
		},
	}
	return cmd
}

func createSuggestCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suggest <word>",
		Short: "Rank dictionary candidates for a single word",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			checker := buildChecker()
			for _, s := range checker.Suggest(args[0], limit) {
				fmt.Printf("%s\t%.3f\n", s.Word, s.Score)
			}
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum number of suggestions")
	return cmd
}

func createNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <word...>",
		Short: "Print the normalized form of each word",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, w := range args {
				fmt.Println(spellcheck.Normalize(w))
			}
		},
	}
}

func buildChecker() *spellcheck.Checker {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	log := app.NewLogger(cfg.Log)
	return app.BuildChecker(cfg, log)
}
