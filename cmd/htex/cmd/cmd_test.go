package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eolymp/go-htex"
	"github.com/eolymp/go-htex/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gauss = "Gauss fand heraus:\nsum(i=1, n, i) = frac(n x (n+1), 2)\n"

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "gauss.htex")
	require.NoError(t, os.WriteFile(input, []byte(gauss), 0644))

	t.Run("next to input", func(t *testing.T) {
		output, err := convert(config.Default(), input, log.New(io.Discard, "", 0))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "gauss.tex"), output)

		data, err := os.ReadFile(output)
		require.NoError(t, err)

		latex := string(data)
		assert.True(t, strings.HasPrefix(latex, "\\documentclass{article}\n"))
		assert.Contains(t, latex, "Gauss fand heraus:\n\n")
		assert.Contains(t, latex, "\\[\\sum_{i = 1}^{n} i = \\frac{nx(n + 1)}{2}\\]")
		assert.True(t, strings.HasSuffix(latex, "\\end{document}\n"))
	})

	t.Run("into output directory", func(t *testing.T) {
		cfg := config.Default()
		cfg.Output.Dir = filepath.Join(dir, "build", "tex")

		buffer := bytes.NewBuffer(nil)
		output, err := convert(cfg, input, log.New(buffer, "", 0))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "build", "tex", "gauss.tex"), output)
		assert.FileExists(t, output)
		assert.Contains(t, buffer.String(), "wrote "+output)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := convert(config.Default(), filepath.Join(dir, "missing.htex"), log.New(io.Discard, "", 0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not open input")
	})

	t.Run("directory as input", func(t *testing.T) {
		_, err := convert(config.Default(), dir, log.New(io.Discard, "", 0))
		assert.Error(t, err)
	})

	t.Run("invalid input", func(t *testing.T) {
		broken := filepath.Join(dir, "broken.htex")
		require.NoError(t, os.WriteFile(broken, []byte("y = frac(a)\n"), 0644))

		_, err := convert(config.Default(), broken, log.New(io.Discard, "", 0))
		require.Error(t, err)
		assert.ErrorIs(t, err, htex.ErrMalformedCall)
		assert.NoFileExists(t, filepath.Join(dir, "broken.tex"))
	})
}

func TestFragment(t *testing.T) {
	tr := htex.NewTranspiler(htex.DefaultOptions())

	out, err := fragment(tr, "y = sum(i, n, i)")
	require.NoError(t, err)
	assert.Equal(t, "\\[y = \\sum_{i}^{n} i\\]\n\n", out)

	out, err = fragment(tr, "- alpha element set")
	require.NoError(t, err)
	assert.Equal(t, "\\begin{itemize}\n  \\item $\\alpha$ $\\in$ set\n\\end{itemize}\n\n", out)

	_, err = fragment(tr, "a)")
	assert.ErrorIs(t, err, htex.ErrUnbalancedParenthesis)
}

func TestRunScript(t *testing.T) {
	buffer := bytes.NewBuffer(nil)

	err := runScript(htex.NewTranspiler(htex.DefaultOptions()), strings.NewReader("x = 1 + 2\n"), buffer)
	require.NoError(t, err)
	assert.Contains(t, buffer.String(), "\\begin{document}\n\n\\[x = 1 + 2\\]\n\n\\end{document}\n")
}

func TestLoadConfigFlags(t *testing.T) {
	t.Setenv("HTEX_CONFIG", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	outputDir, packages, verbose = "out", "amsmath, babel=ngerman", true
	defer func() { outputDir, packages, verbose = "", "", false }()

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Output.Dir)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, []htex.Package{{Name: "amsmath"}, {Name: "babel", Options: "ngerman"}}, cfg.Options().Packages)
}

func TestRootCommand(t *testing.T) {
	rootCmd.SetArgs([]string{})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing input file")
}
