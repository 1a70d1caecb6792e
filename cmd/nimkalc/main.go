// Command nimkalc is a calculator over the nimkalc expression language. With
// no arguments it runs an interactive REPL; otherwise it evaluates its
// arguments, or a script file with one expression per line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/nocturn9x/nimkalc"
)

// flag names
const (
	astFlagName  = "ast"
	fileFlagName = "file"
)

var (
	astFlag = &cli.BoolFlag{
		Name:    astFlagName,
		Aliases: []string{"a"},
		Usage:   "print the parse tree of each expression before its result",
	}
	fileFlag = &cli.StringFlag{
		Name:    fileFlagName,
		Aliases: []string{"f"},
		Usage:   "evaluate a script file with one expression per line",
	}
)

var errColor = color.New(color.FgRed)

func main() {
	log.SetFlags(0)
	app := &cli.App{
		Name:      "nimkalc",
		Usage:     "evaluate mathematical expressions",
		UsageText: "nimkalc [options] [expression ...]",
		Flags: []cli.Flag{
			astFlag,
			fileFlag,
		},
		Action: func(ctx *cli.Context) error {
			echo := ctx.Bool(astFlagName)
			if script := ctx.String(fileFlagName); script != "" {
				return runScript(script, echo)
			}
			if ctx.NArg() > 0 {
				for _, src := range ctx.Args().Slice() {
					if !eval(src, echo) {
						return cli.Exit("", 1)
					}
				}
				return nil
			}
			runREPL(echo)
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// eval runs one expression and prints its result, or a categorized error.
// It reports whether evaluation succeeded.
func eval(src string, echo bool) bool {
	if echo {
		toks, err := nimkalc.Tokenize(src)
		if err != nil {
			reportError(err)
			return false
		}
		ast, err := nimkalc.Parse(toks)
		if err != nil {
			reportError(err)
			return false
		}
		fmt.Println(ast)
		result, err := nimkalc.Evaluate(ast)
		if err != nil {
			reportError(err)
			return false
		}
		fmt.Println(format(result))
		return true
	}
	result, err := nimkalc.Run(src)
	if err != nil {
		reportError(err)
		return false
	}
	fmt.Println(format(result))
	return true
}

// format renders a reduced leaf, choosing an integer or float print format
// by its kind tag.
func format(n nimkalc.Node) string {
	switch n := n.(type) {
	case *nimkalc.IntegerLit:
		return strconv.FormatInt(int64(n.Value), 10)
	case *nimkalc.FloatLit:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	}
	// Evaluate only returns leaves.
	return n.String()
}

func reportError(err error) {
	var (
		input nimkalc.InputError
		arith nimkalc.EvalError
	)
	switch {
	case errors.As(err, &input):
		errColor.Fprintf(os.Stderr, "syntax error: %v\n", err)
	case errors.As(err, &arith):
		errColor.Fprintf(os.Stderr, "math error: %v\n", err)
	default:
		errColor.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

// runScript evaluates a file with one expression per line. Blank lines and
// lines starting with # are skipped. The first failing line stops the run.
func runScript(path string, echo bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening script")
	}
	defer f.Close()
	scan := bufio.NewScanner(f)
	line := 0
	for scan.Scan() {
		line++
		src := strings.TrimSpace(scan.Text())
		if src == "" || strings.HasPrefix(src, "#") {
			continue
		}
		if !eval(src, echo) {
			return cli.Exit(fmt.Sprintf("%s:%d", path, line), 1)
		}
	}
	return errors.Wrap(scan.Err(), "reading script")
}

func runREPL(echo bool) {
	if !isInteractive() {
		scan := bufio.NewScanner(os.Stdin)
		for scan.Scan() {
			if src := strings.TrimSpace(scan.Text()); src != "" {
				eval(src, echo)
			}
		}
		return
	}

	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)
	state.SetCompleter(complete)

	historyPath := historyPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		input, err := state.Prompt("=> ")
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}
		src := strings.TrimSpace(input)
		if src == "" {
			continue
		}
		state.AppendHistory(src)
		eval(src, echo)
	}
}

// complete offers the built-in function and constant names whose prefix
// matches the word under the cursor.
func complete(line string) []string {
	i := strings.LastIndexFunc(line, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_')
	})
	head, word := line[:i+1], line[i+1:]
	if word == "" {
		return nil
	}
	var out []string
	for _, name := range append(nimkalc.Functions(), nimkalc.Constants()...) {
		if strings.HasPrefix(name, strings.ToLower(word)) {
			out = append(out, head+name)
		}
	}
	return out
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".nimkalc_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
