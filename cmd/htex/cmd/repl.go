package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/eolymp/go-htex"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Converts HTex lines interactively",
	Long: `repl reads HTex lines from the terminal and prints LaTeX for each of them.
When standard input is not a terminal, the whole input is converted to a
complete document on standard output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tr := htex.NewTranspiler(cfg.Options())

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return runScript(tr, os.Stdin, cmd.OutOrStdout())
		}

		return runInteractive(tr, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runScript converts everything from rd to a complete document
func runScript(tr *htex.Transpiler, rd io.Reader, w io.Writer) error {
	data, err := io.ReadAll(rd)
	if err != nil {
		return errors.Wrap(err, "could not read input")
	}

	root, err := htex.ParseString(string(data))
	if err != nil {
		return errors.Wrap(err, "could not parse input")
	}

	latex, err := tr.Document(root)
	if err != nil {
		return errors.Wrap(err, "could not transpile input")
	}

	_, err = fmt.Fprint(w, latex)
	return err
}

func runInteractive(tr *htex.Transpiler, w, ew io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFile()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		input, err := line.Prompt("htex> ")
		if err == liner.ErrPromptAborted {
			fmt.Fprintln(ew)
			continue
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return err
		}

		if strings.TrimSpace(input) == "" {
			continue
		}

		line.AppendHistory(input)

		out, err := fragment(tr, input)
		if err != nil {
			fmt.Fprintln(ew, err)
			continue
		}

		fmt.Fprint(w, out)
	}

	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}

	return nil
}

// fragment converts one piece of HTex to LaTeX without preamble
func fragment(tr *htex.Transpiler, text string) (string, error) {
	root, err := htex.ParseString(text + "\n")
	if err != nil {
		return "", err
	}

	return tr.Body(root)
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".htex_history")
}
