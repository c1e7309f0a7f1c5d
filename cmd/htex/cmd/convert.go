package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/eolymp/go-htex"
	"github.com/eolymp/go-htex/internal/config"
	"github.com/pkg/errors"
)

// convert transpiles input file and writes the result, it returns path of the written file
func convert(cfg *config.Config, input string, logger *log.Logger) (string, error) {
	text, err := readInput(input)
	if err != nil {
		return "", err
	}

	logger.Println("read", input, humanize.Bytes(uint64(len(text))))

	root, err := htex.ParseString(text)
	if err != nil {
		return "", errors.Wrap(err, "could not parse "+input)
	}

	latex, err := htex.NewTranspiler(cfg.Options()).Document(root)
	if err != nil {
		return "", errors.Wrap(err, "could not transpile "+input)
	}

	output := cfg.OutputPath(input)
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return "", errors.Wrap(err, "could not create output directory")
	}

	if err := os.WriteFile(output, []byte(latex), 0644); err != nil {
		return "", errors.Wrap(err, "could not write output")
	}

	logger.Printf("wrote %s (%s, %d blocks)", output, humanize.Bytes(uint64(len(latex))), len(root.Children))

	return output, nil
}

func readInput(input string) (string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return "", errors.Wrap(err, "could not open input")
	}

	if info.IsDir() {
		return "", errors.Errorf("input %s is a directory", input)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", errors.Wrap(err, "could not read input")
	}

	return string(data), nil
}
