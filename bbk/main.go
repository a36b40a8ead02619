package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime/debug"

	"github.com/etnz/bankbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

// logFile collects full diagnostics; the terminal only ever sees friendly
// messages.
const logFile = "bank.log"

func main() {
	// Shell completion: returns immediately when not running as a completer.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"open":    {},
			"summary": {},
			"tx":      {},
			"history": {},
			"revenue": {},
			"fmt":     {},
			"topic":   {},
		},
	}
	completion.Complete("bbk")

	if f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		log.SetOutput(f)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic: %v\n%s", r, debug.Stack())
			fmt.Println("Sorry! Something unexpected happened. If this problem persists please contact our support team for assistance.")
			os.Exit(1)
		}
	}()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
