package main

import (
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/nibble/ebnf/earley"
	"github.com/dhamidi/nibble/rules"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Print the rule grammar or check input against an EBNF grammar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(rules.GrammarSource)
			return err
		},
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarMatchCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadGrammar(args[0], startProduction)
			return err
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", rules.Start, "start production for verification")

	return cmd
}

func newGrammarMatchCmd() *cobra.Command {
	var grammarFile string
	var startProduction string

	cmd := &cobra.Command{
		Use:           "match <input>",
		Short:         "Check that a file is a sentence of a grammar (the rule grammar by default)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var g ebnf.Grammar
			var err error
			if grammarFile == "" {
				g, err = rules.Grammar()
				if err != nil {
					printErrors(err)
					return err
				}
			} else {
				g, err = loadGrammar(grammarFile, startProduction)
				if err != nil {
					return err
				}
			}

			r, err := earley.New(g, startProduction)
			if err != nil {
				return err
			}

			input, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if err := r.Recognize(input); err != nil {
				fmt.Printf("%s: %v\n", args[0], err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&grammarFile, "grammar", "", "EBNF grammar file (defaults to the rule grammar)")
	cmd.Flags().StringVar(&startProduction, "start", rules.Start, "start production")

	return cmd
}

func loadGrammar(filename, start string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	grammar, err := ebnf.Parse(filename, f)
	if err != nil {
		printErrors(err)
		return nil, err
	}

	if err := ebnf.Verify(grammar, start); err != nil {
		printErrors(err)
		return nil, err
	}

	return grammar, nil
}

func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
