// terminal
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/corerpc/rpcclient"
	"golang.org/x/crypto/ssh/terminal"
)

// terminalState is the state toggled by the built-in terminal commands.
type terminalState struct {
	protected bool
	clear     bool
}

// execute runs a single terminal line and reports whether the terminal
// should exit.
func execute(state *terminalState, client *rpcclient.Client, cfg *config, line string) bool {
	switch strings.TrimSpace(line) {
	case "h", "help":
		fmt.Printf("[h]elp          print this message\n")
		fmt.Printf("[l]ist          list all available commands\n")
		fmt.Printf("[p]rotect       toggle protected mode (for passwords)\n")
		fmt.Printf("[c]lear         clear command history\n")
		fmt.Printf("[q]uit/ctrl+d   exit\n")
		fmt.Printf("Enter commands with arguments to execute them.\n")

	case "l", "list":
		if err := listCommands(client); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}

	case "q", "quit":
		return true

	case "p", "protect":
		state.protected = !state.protected

	case "c", "clear":
		state.clear = true

	case "":

	default:
		args := strings.Fields(line)

		// Arguments are never read from stdin while the terminal owns
		// it.
		stdin := bufio.NewReader(strings.NewReader(""))
		err := runCommand(client, cfg, args[0], args[1:], stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return false
}

func startTerminal(client *rpcclient.Client, cfg *config) {
	var state terminalState

	fmt.Println("Starting terminal mode.")
	fmt.Println("Enter h for [h]elp.")
	fmt.Println("Enter l for [l]ist of commands.")
	fmt.Println("Enter q for [q]uit.")

	termState, err := terminal.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set raw mode on STDIN: %v\n",
			err)
		return
	}
	n := terminal.NewTerminal(os.Stdin, "> ")
	for {
		var ln string
		var err error
		if !state.protected {
			ln, err = n.ReadLine()
		} else {
			ln, err = n.ReadPassword(">*")
		}
		terminal.Restore(int(os.Stdin.Fd()), termState)
		if err != nil {
			break
		}

		quit := execute(&state, client, cfg, ln)
		if quit {
			break
		}

		termState, err = terminal.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to set raw "+
				"mode on STDIN: %v\n", err)
			break
		}
		if state.clear {
			fmt.Println("Clearing history...")
			n = terminal.NewTerminal(os.Stdin, "> ")
			state.clear = false
		}
	}
	fmt.Println("exiting...")
}
