package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/simonhull/firebird-suite/quill/internal/commands"
	"github.com/simonhull/firebird-suite/quill/term"
)

func main() {
	// Restore the terminal before dying on a signal; a raw-mode read may
	// be in flight when it arrives.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		_ = term.Stdin().Release()
		os.Exit(130)
	}()

	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.DemoCmd())
	rootCmd.AddCommand(commands.AskCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
