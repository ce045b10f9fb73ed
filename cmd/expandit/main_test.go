package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testIndex = `  1 This software and database is being provided to you, the LICENSEE, by
apple n 2 1 @ 2 1 07739125 12633994
eating_apple n 1 1 @ 1 0 07739125
entity n 1 1 ~ 1 0 00001740
object n 1 2 @ ~ 1 0 00002684
orchard_apple_tree n 1 1 @ 1 0 12633994
`

const testData = `  1 This software and database is being provided to you, the LICENSEE, by
00001740 03 n 01 entity 0 001 ~ 00002684 n 0000 | that which is perceived or known or inferred to have its own distinct existence
00002684 03 n 02 object 0 physical_object 0 002 @ 00001740 n 0000 ~ 07739125 n 0000 | a tangible and visible entity
07739125 13 n 02 apple 0 eating_apple 0 001 @ 00002684 n 0000 | fruit with red or yellow or green skin
12633994 20 n 02 apple 0 orchard_apple_tree 0 001 @ 00002684 n 0000 | native Eurasian tree
`

// importLexicon writes a small WordNet database and imports it.
func importLexicon(t *testing.T) string {
	t.Helper()
	dict := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dict, "index.noun"), []byte(testIndex), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dict, "data.noun"), []byte(testData), 0644))

	db := filepath.Join(t.TempDir(), "lexicon")
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run([]string{"expandit", "import", "--db", db, "--dict", dict, "--workers", "2"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Imported 4 synsets and 5 words")
	return db
}

func findFlag[T cli.Flag](t *testing.T, cmd *cli.Command, name string) T {
	t.Helper()
	for _, flag := range cmd.Flags {
		if f, ok := flag.(T); ok && flag.Names()[0] == name {
			return f
		}
	}
	require.Failf(t, "flag not found", "%s", name)
	var zero T
	return zero
}

func TestCommandFlags(t *testing.T) {
	app := newApp(&bytes.Buffer{}, &bytes.Buffer{})

	t.Run("commands", func(t *testing.T) {
		require.Len(t, app.Commands, 3)
		assert.Equal(t, "import", app.Commands[0].Name)
		assert.Equal(t, "expand", app.Commands[1].Name)
		assert.Equal(t, "batch", app.Commands[2].Name)
	})

	t.Run("db is required", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}, &bytes.Buffer{}).Run([]string{"expandit", "expand", "apple"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("dict is required", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}, &bytes.Buffer{}).Run([]string{"expandit", "import", "--db", t.TempDir()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dict")
	})

	t.Run("method defaults to similarity", func(t *testing.T) {
		method := findFlag[*cli.StringFlag](t, app.Commands[1], "method")
		assert.Equal(t, "similarity", method.Value)
	})

	t.Run("max-tokens defaults to 64", func(t *testing.T) {
		maxTokens := findFlag[*cli.IntFlag](t, app.Commands[2], "max-tokens")
		assert.Equal(t, 64, maxTokens.Value)
	})

	t.Run("max-synonyms defaults to unlimited", func(t *testing.T) {
		maxSynonyms := findFlag[*cli.IntFlag](t, app.Commands[1], "max-synonyms")
		assert.Equal(t, 0, maxSynonyms.Value)
	})

	t.Run("expand and batch do not share flag values", func(t *testing.T) {
		a := findFlag[*cli.StringFlag](t, app.Commands[1], "method")
		b := findFlag[*cli.StringFlag](t, app.Commands[2], "method")
		assert.NotSame(t, a, b)
	})
}

func TestImportCommandValidation(t *testing.T) {
	t.Run("zero workers", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}, &bytes.Buffer{}).Run([]string{"expandit", "import", "--db", t.TempDir(), "--dict", t.TempDir(), "--workers", "0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "workers")
	})

	t.Run("zero batch size", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}, &bytes.Buffer{}).Run([]string{"expandit", "import", "--db", t.TempDir(), "--dict", t.TempDir(), "--batch-size", "0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch-size")
	})

	t.Run("missing WordNet files", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}, &bytes.Buffer{}).Run([]string{"expandit", "import", "--db", t.TempDir(), "--dict", t.TempDir()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "import failed")
	})
}

func TestExpandCommand(t *testing.T) {
	db := importLexicon(t)

	t.Run("expands query", func(t *testing.T) {
		var stdout bytes.Buffer
		err := newApp(&stdout, &bytes.Buffer{}).Run([]string{"expandit", "expand", "--db", db, "--no-morphology", "apple"})
		require.NoError(t, err)
		assert.Equal(t, "( apple ) OR ( eating )\n", stdout.String())
	})

	t.Run("joins arguments", func(t *testing.T) {
		var stdout bytes.Buffer
		err := newApp(&stdout, &bytes.Buffer{}).Run([]string{"expandit", "expand", "--db", db, "--no-morphology", "the", "apple"})
		require.NoError(t, err)
		assert.Equal(t, "( the apple ) OR ( eating )\n", stdout.String())
	})

	t.Run("prints senses", func(t *testing.T) {
		var stdout bytes.Buffer
		err := newApp(&stdout, &bytes.Buffer{}).Run([]string{"expandit", "expand", "--db", db, "--no-morphology", "--senses", "apple"})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "apple\tapple.n.01\t0.0000\tfruit with red or yellow or green skin")
	})

	t.Run("no-expand echoes query", func(t *testing.T) {
		var stdout bytes.Buffer
		err := newApp(&stdout, &bytes.Buffer{}).Run([]string{"expandit", "expand", "--db", db, "--no-expand", "apple", "pie"})
		require.NoError(t, err)
		assert.Equal(t, "apple pie\n", stdout.String())
	})

	t.Run("read only", func(t *testing.T) {
		var stdout bytes.Buffer
		err := newApp(&stdout, &bytes.Buffer{}).Run([]string{"expandit", "expand", "--db", db, "--read-only", "--no-morphology", "apple"})
		require.NoError(t, err)
		assert.Equal(t, "( apple ) OR ( eating )\n", stdout.String())
	})

	t.Run("invalid method", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}, &bytes.Buffer{}).Run([]string{"expandit", "expand", "--db", db, "--method", "lesk", "apple"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("empty lexicon is an error", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}, &bytes.Buffer{}).Run([]string{"expandit", "expand", "--db", t.TempDir(), "--no-morphology", "apple"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resource unavailable")
	})
}

func TestBatchCommand(t *testing.T) {
	db := importLexicon(t)

	input := filepath.Join(t.TempDir(), "queries.txt")
	require.NoError(t, os.WriteFile(input, []byte("apple\n\nxyzzy\napple apple apple\n"), 0644))

	t.Run("one line per query", func(t *testing.T) {
		var stdout bytes.Buffer
		err := newApp(&stdout, &bytes.Buffer{}).Run([]string{"expandit", "batch", "--db", db, "--no-morphology", "--input", input})
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		assert.Equal(t, []string{
			"( apple ) OR ( eating )",
			"",
			"xyzzy",
			"( apple apple apple ) OR ( eating )",
		}, lines)
	})

	t.Run("failed queries echoed", func(t *testing.T) {
		var stdout bytes.Buffer
		err := newApp(&stdout, &bytes.Buffer{}).Run([]string{"expandit", "batch", "--db", db, "--no-morphology", "--max-tokens", "2", "--input", input})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "some queries were not expanded")
		assert.Contains(t, stdout.String(), "apple apple apple\n")
	})

	t.Run("missing input", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}, &bytes.Buffer{}).Run([]string{"expandit", "batch", "--db", db, "--input", filepath.Join(t.TempDir(), "none")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open input")
	})
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}, &bytes.Buffer{}).Run([]string{"expandit", "--log-level", "verbose", "expand", "--db", "x", "apple"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("logs go to the app error writer", func(t *testing.T) {
		var stderr bytes.Buffer
		app := newApp(&bytes.Buffer{}, &stderr)
		app.Commands = append(app.Commands, &cli.Command{
			Name: "noop",
			Action: func(c *cli.Context) error {
				return nil
			},
		})
		require.NoError(t, app.Run([]string{"expandit", "--log-level", "debug", "noop"}))

		// setupLogger installed a handler writing to stderr
		slog.Warn("probe")
		assert.Contains(t, stderr.String(), "probe")
	})
}
