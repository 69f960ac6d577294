// Command formfill fills in a form described by a definition file from the
// terminal and prints the submitted payload as JSON.
//
// Run:
//
//	go run ./cmd/formfill -def signup.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"

	fv "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/definition"
)

func main() {
	defPath := flag.String("def", "", "form definition file (.yaml, .yml, .json or .hcl)")
	debug := flag.Bool("debug", false, "log debug events to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *defPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*defPath, logger); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			os.Exit(130)
		}
		logger.Error("formfill failed", "error", err)
		os.Exit(1)
	}
}

func run(path string, logger *slog.Logger) error {
	def, err := definition.Load(path)
	if err != nil {
		return err
	}
	form, err := def.Build()
	if err != nil {
		return err
	}

	m := fv.NewModel(fv.WithLogger(logger))
	prompts := newPromptRegistry()

	for _, e := range form.Elements() {
		// Fields become active one at a time, as they would on screen.
		m.RegisterField(e.ID, e.Field)
		ask, ok := prompts.Resolve(e)
		if !ok {
			logger.Warn("no prompt for field kind, keeping default", "field", e.ID, "kind", e.Kind)
			continue
		}
		if err := ask(e, m); err != nil {
			return fmt.Errorf("field %s: %w", e.ID, err)
		}
	}

	if _, err := m.Submit(); err != nil {
		for _, key := range m.Keys() {
			if msg := m.VisibleError(key); msg != "" {
				fmt.Fprintf(os.Stderr, "%s: %s\n", key, msg)
			}
		}
		return err
	}

	out, err := m.MarshalPayload()
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
