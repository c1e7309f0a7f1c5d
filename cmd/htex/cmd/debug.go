package cmd

import (
	"fmt"
	"os"

	"github.com/eolymp/go-htex"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var showSource bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <input.htex>",
	Short: "Prints tokens of an input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}

		for _, token := range htex.Tokenize(text) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %5d  %q\n", token.Kind, token.Offset, token.Text)
		}

		return nil
	},
}

var astCmd = &cobra.Command{
	Use:   "ast <input.htex>",
	Short: "Prints syntax tree of an input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}

		root, err := htex.ParseString(text)
		if err != nil {
			return errors.Wrap(err, "could not parse "+args[0])
		}

		if showSource {
			for _, child := range root.Children {
				if eq, ok := child.(*htex.Equation); ok {
					fmt.Fprintln(cmd.OutOrStdout(), htex.String(eq))
				}
			}

			return nil
		}

		setColoring()

		_, err = pp.Fprintln(cmd.OutOrStdout(), root)
		return err
	},
}

// setColoring disables colored dumps when output is not a terminal
func setColoring() {
	pp.ColoringEnabled = term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	astCmd.Flags().BoolVar(&showSource, "source", false, "print equations in HTex notation instead of the tree")

	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
}
