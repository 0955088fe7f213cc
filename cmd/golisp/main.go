/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Command golisp is the REPL / script driver for the interpreter in
// package scm. The teacher runs its scm package embedded inside a
// database server and has no standalone front-end of its own; this is
// that front-end, grown in the teacher's manner (chzyer/readline,
// panic-recovery per input line) but with a real CLI and config layer.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/cph-lab/golisp/internal/reader"
	"github.com/cph-lab/golisp/scm"
)

var cli struct {
	Config string   `help:"Path to a YAML config file." type:"path"`
	Load   []string `arg:"" optional:"" help:"Scheme source files to load before the REPL starts."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("golisp"),
		kong.Description("A small applicative-order Lisp REPL."),
	)

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("config: "+err.Error()))
		os.Exit(1)
	}
	if !cfg.Color {
		styleResult = lipgloss.NewStyle()
		styleError = lipgloss.NewStyle()
	}

	env := scm.NewGlobalEnv()

	for _, path := range cli.Load {
		if err := loadFile(path, env); err != nil {
			fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
			os.Exit(1)
		}
	}
	if cfg.Prelude != "" {
		if err := loadFile(cfg.Prelude, env); err != nil {
			fmt.Fprintln(os.Stderr, styleError.Render("prelude: "+err.Error()))
			os.Exit(1)
		}
	}

	repl(cfg, env)
}

// loadFile reads and evaluates every top-level form in path against
// env, in order, stopping at the first error.
func loadFile(path string, env *scm.Env) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	forms, err := reader.ReadAll(path, string(data))
	if err != nil {
		return err
	}
	for _, s := range forms {
		expr, err := scm.Parse(s, env)
		if err != nil {
			return err
		}
		if _, err := scm.Eval(expr, env); err != nil {
			return err
		}
	}
	return nil
}

func historyPath(cfg config) string {
	if cfg.History != "" {
		return cfg.History
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	// No configured history file is shared across sessions; namespace
	// a throwaway one per run instead of colliding on a fixed name.
	return filepath.Join(dir, "golisp-history-"+uuid.NewString())
}

func repl(cfg config, env *scm.Env) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          renderPrompt(cfg, "> "),
		HistoryFile:     historyPath(cfg),
		AutoComplete:    &symbolCompleter{env: env},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	var buf strings.Builder
	prompt := "> "
	for {
		rl.SetPrompt(renderPrompt(cfg, prompt))
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf.Reset()
			prompt = "> "
			continue
		}
		if err != nil { // io.EOF
			return
		}
		buf.WriteString(line)
		buf.WriteByte('\n')

		forms, perr := reader.ReadAll("<stdin>", buf.String())
		if perr == reader.ErrIncomplete {
			prompt = "... "
			continue
		}
		buf.Reset()
		prompt = "> "
		if perr != nil {
			fmt.Fprintln(os.Stderr, styleError.Render(perr.Error()))
			continue
		}
		if done := evalForms(forms, env, cfg); done {
			return
		}
	}
}

// evalForms parses and evaluates each form in turn, recovering from a
// panic in the evaluator the way the teacher's prompt loop does (a bug
// in one expression shouldn't kill the whole session). It returns true
// once (exit) has been evaluated.
func evalForms(forms []scm.Syntax, env *scm.Env, cfg config) (exit bool) {
	for _, syn := range forms {
		if runForm(syn, env, cfg) {
			return true
		}
	}
	return false
}

func runForm(syn scm.Syntax, env *scm.Env, cfg config) (exit bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, styleError.Render(fmt.Sprintf("panic: %v", r)))
		}
	}()

	expr, err := scm.Parse(syn, env)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		return false
	}
	val, err := scm.Eval(expr, env)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		return false
	}
	if _, ok := val.(scm.Terminate); ok {
		return true
	}
	if _, ok := val.(scm.VoidVal); !ok {
		fmt.Println(styleResult.Render(scm.WriteString(val)))
	}
	return false
}

// symbolCompleter fuzzy-matches the word under the cursor against the
// special forms, the primitives, and every name currently bound in
// env, using sahilm/fuzzy instead of a plain prefix match.
type symbolCompleter struct {
	env *scm.Env
}

func (c *symbolCompleter) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && !isWordBoundary(line[start-1]) {
		start--
	}
	word := string(line[start:pos])
	if word == "" {
		return nil, 0
	}

	candidates := completionCandidates(c.env)
	matches := fuzzyFind(word, candidates)

	out := make([][]rune, 0, len(matches))
	for _, m := range matches {
		// fuzzy.Find ranks by subsequence, not just prefix; only offer
		// a completion for matches that do extend what was typed.
		if !strings.HasPrefix(m, word) {
			continue
		}
		out = append(out, []rune(m[len(word):]))
	}
	return out, pos - start
}

func isWordBoundary(r rune) bool {
	switch r {
	case '(', ')', ' ', '\t', '\n', '\'':
		return true
	default:
		return false
	}
}

func completionCandidates(env *scm.Env) []string {
	var names []string
	names = append(names, scm.ReservedWords()...)
	names = append(names, scm.PrimitiveNames()...)
	for _, s := range scm.Names(env) {
		names = append(names, string(s))
	}
	return names
}
