// Command generate emits a ready-made go.code-snippets file built from
// the template constructors. It doubles as a usage example for the
// snippet package; the library itself has no CLI surface.
//
// Usage:
//
//	generate -o ~/.config/Code/User/snippets/go.code-snippets
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/sakif/snippetgen/snippet"
)

func main() {
	out := pflag.StringP("out", "o", "snippets/go.code-snippets", "path of the generated snippets file")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	file, err := snippet.NewFileFromBuilders(
		// Marker comments.
		snippet.GoTodoComment("/TODO", "TODO"),
		snippet.GoTodoComment("/FIXME", "FIXME"),
		snippet.GoTodoComment("/NOTE", "NOTE"),

		// Common call aliases.
		snippet.GoFnAlias("pr", "fmt.Println").SetDescription("Print line to stdout"),
		snippet.GoFnAlias("pf", "fmt.Printf").SetDescription("Formatted print"),
		snippet.GoFnAlias("lgi", "slog.Info").SetDescription("Structured info log"),
		snippet.GoFnAlias("lge", "slog.Error").SetDescription("Structured error log"),

		// Blocks.
		snippet.GoErrCheck("iferr").
			SetName("error-check").
			SetDescription("Standard error check").
			SetPriority(10),

		snippet.NewBuilder().
			SetName("test-func").
			SetPrefix("tf").
			SetBody(
				"func Test${1:Name}(t *testing.T) {",
				"    ${0}",
				"}",
			).
			SetDescription("Test function skeleton").
			SetScope("go"),

		snippet.NewBuilder().
			SetName("main-package").
			SetPrefix("pkgmain").
			SetBody(
				"package main",
				"",
				"func main() {",
				"    ${0}",
				"}",
			).
			SetDescription("Minimal main package").
			SetScope("go").
			SetIsFileTemplate(true),
	)
	if err != nil {
		logger.Error("failed to build snippets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	file.SetLogger(logger)

	if err := file.Save(*out); err != nil {
		logger.Error("failed to save snippets file",
			slog.String("path", *out),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}
