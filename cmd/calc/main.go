package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fduxiao/calculator"
)

// ANSI color codes for terminal output
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[1;31m"
	colorYellow = "\033[1;33m"
)

func main() {
	root := &cobra.Command{
		Use:   "calc [expression]",
		Short: "Evaluate arithmetic expressions",
		Long: "calc evaluates arithmetic expressions with + - * / and\n" +
			"parentheses.  With no arguments it starts an interactive\n" +
			"loop; a blank line exits.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return evalLine(strings.Join(args, " "))
			}
			repl()
			return nil
		},
	}
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func repl() {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		text, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("")
			return
		}
		if strings.TrimSpace(text) == "" {
			return
		}

		// each line is parsed and evaluated independently; no
		// error ends the session
		_ = evalLine(text)
	}
}

// evalLine parses and evaluates a single input line, printing either
// the value or a diagnostic.  The three failure surfaces are kept
// apart: parse errors and evaluation errors come back from Parse as
// distinct types, and trailing input after a successful parse is a
// condition of its own.
func evalLine(line string) error {
	value, rest, err := calculator.Parse(line)
	switch e := err.(type) {
	case nil:
	case *calculator.ParseError:
		fmt.Printf("%sparse error:%s %s at %s\n", colorRed, colorReset, e.Message, e.Location())
		return err
	case *calculator.EvalError:
		fmt.Printf("%sevaluation error:%s %s\n", colorYellow, colorReset, e.Message)
		return err
	default:
		fmt.Printf("%serror:%s %s\n", colorRed, colorReset, err.Error())
		return err
	}
	if rest != "" {
		fmt.Printf("%sextra input:%s %q left after expression\n", colorRed, colorReset, rest)
		return fmt.Errorf("extra input: %q", rest)
	}
	fmt.Println(value)
	return nil
}
