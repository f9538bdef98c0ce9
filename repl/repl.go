package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bmatsuo/minischeme/lisp"
	"github.com/bmatsuo/minischeme/parser"
	"github.com/bmatsuo/minischeme/parser/rdparser"
	"github.com/chzyer/readline"
)

// LineReader reads lines of interactive input.  *readline.Instance
// implements LineReader.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// RunRepl runs a simple repl on the terminal.  When historyFile is non-empty
// input lines are saved there between sessions.
func RunRepl(prompt string, historyFile string, config ...lisp.Config) error {
	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{lisp.WithReader(parser.NewReader())}, config...)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lerr.Type == lisp.LError {
		return lisp.GoError(lerr)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	return Run(env, rl, prompt, rl.Stdout(), rl.Stderr())
}

// Run reads expressions from lines, one line at a time, and evaluates them in
// env.  Results are printed to stdout and read errors to stderr.  When a line
// ends inside an unclosed list the next line is appended to it.  An
// interrupt discards pending input.  Run returns nil when lines is exhausted.
func Run(env *lisp.LEnv, lines LineReader, prompt string, stdout, stderr io.Writer) error {
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf string
	for {
		line, err := lines.Readline()
		if err == readline.ErrInterrupt {
			buf = ""
			lines.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if buf != "" {
			line = buf + "\n" + line
			buf = ""
			lines.SetPrompt(prompt)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		expr, err := parser.Parse(line)
		if errors.Is(err, rdparser.ErrUnexpectedEOF) {
			buf = line
			lines.SetPrompt(contPrompt)
			continue
		}
		if err != nil {
			errln(stderr, err)
			continue
		}
		var result *lisp.LVal
		result, env = lisp.Evaluate(expr, env)
		fmt.Fprintln(stdout, lisp.Stringify(result))
	}
}

func errln(w io.Writer, v ...interface{}) {
	fmt.Fprintln(w, v...)
}
