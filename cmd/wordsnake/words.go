package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Inspect the word list and dictionary",
	Long: `Show the target words the current config plays with, or check
strings against the built-in dictionary.

Examples:
  wordsnake words list
  wordsnake words list --config ./my-wordsnake.yaml
  wordsnake words check fox xqcat`,
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the playable target words",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadGameConfig(false)
		if err != nil {
			return err
		}
		set, err := cfg.WordSet(words.DefaultDictionary())
		if err != nil {
			return err
		}
		list := set.Words()
		fmt.Printf("%d target words:\n\n", len(list))
		fmt.Println(strings.Join(list, " "))
		return nil
	},
}

var wordsCheckCmd = &cobra.Command{
	Use:   "check <letters>...",
	Short: "Check strings against the dictionary",
	Long: `For each argument, report whether it is a dictionary word and the
longest word it ends with, the same way collected letters are scored.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		checkWords(os.Stdout, words.DefaultDictionary(), args)
	},
}

func init() {
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsCheckCmd)
}

func checkWords(w io.Writer, oracle words.Oracle, args []string) {
	for _, arg := range args {
		valid := "no"
		if oracle.IsValidWord(arg) {
			valid = "yes"
		}
		suffix := "-"
		if s, ok := words.LongestSuffixWord(strings.ToLower(arg), oracle); ok {
			suffix = s
		}
		fmt.Fprintf(w, "%-16s  word: %-3s  longest suffix word: %s\n", arg, valid, suffix)
	}
}
