// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/corerpc/internal/log"
	"github.com/btcsuite/corerpc/rpcclient"
	"github.com/davecgh/go-spew/spew"
)

const (
	showHelpMessage = "Specify -h to show available options"
	listCmdMessage  = "Specify -l to list available commands"
)

// usage displays the general usage when the help flag is not displayed and
// and an invalid command was specified.
func usage(errorMessage string) {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	fmt.Fprintln(os.Stderr, errorMessage)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  %s [OPTIONS] <command> <args...>\n\n",
		appName)
	fmt.Fprintln(os.Stderr, showHelpMessage)
	fmt.Fprintln(os.Stderr, listCmdMessage)
}

// parseParams converts command line arguments to request parameters.
// Arguments that are valid JSON are sent as is, everything else is sent as
// a JSON string.  The special argument "-" is replaced by the next line read
// from stdin.
func parseParams(args []string, stdin *bufio.Reader) ([]json.RawMessage, error) {
	params := make([]json.RawMessage, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			param, err := stdin.ReadString('\n')
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read data from "+
					"stdin: %w", err)
			}
			if err == io.EOF && len(param) == 0 {
				return nil, errors.New("not enough lines provided " +
					"on stdin")
			}
			arg = strings.TrimRight(param, "\r\n")
		}

		if json.Valid([]byte(arg)) {
			params = append(params, json.RawMessage(arg))
			continue
		}

		quoted, err := json.Marshal(arg)
		if err != nil {
			return nil, err
		}
		params = append(params, quoted)
	}

	return params, nil
}

// formatResult renders a raw result for display.  Objects and arrays are
// indented, strings are unquoted and null produces no output.
func formatResult(result json.RawMessage, useSpew bool) (string, error) {
	if useSpew {
		var decoded interface{}
		if err := json.Unmarshal(result, &decoded); err != nil {
			return "", fmt.Errorf("failed to unmarshal result: %w", err)
		}
		return strings.TrimRight(spew.Sdump(decoded), "\n"), nil
	}

	strResult := string(result)
	switch {
	case strings.HasPrefix(strResult, "{") || strings.HasPrefix(strResult, "["):
		var dst bytes.Buffer
		if err := json.Indent(&dst, result, "", "  "); err != nil {
			return "", fmt.Errorf("failed to format result: %w", err)
		}
		return dst.String(), nil

	case strings.HasPrefix(strResult, `"`):
		var str string
		if err := json.Unmarshal(result, &str); err != nil {
			return "", fmt.Errorf("failed to unmarshal result: %w", err)
		}
		return str, nil

	case strResult == "null" || strResult == "":
		return "", nil

	default:
		return strResult, nil
	}
}

// describeError returns the message printed for a failed call, prefixed with
// the kind of failure.
func describeError(err error) string {
	switch rpcclient.KindOf(err) {
	case rpcclient.ErrKindConnection:
		return fmt.Sprintf("connection error: %v", err)
	case rpcclient.ErrKindAuth:
		return fmt.Sprintf("authentication error: %v", err)
	case rpcclient.ErrKindRPC:
		return fmt.Sprintf("error code %v", err)
	case rpcclient.ErrKindUnknown:
		return fmt.Sprintf("unexpected response: %v", err)
	default:
		return err.Error()
	}
}

// runCommand sends method with the passed arguments and prints the result.
func runCommand(client *rpcclient.Client, cfg *config, method string,
	args []string, stdin *bufio.Reader) error {

	params, err := parseParams(args, stdin)
	if err != nil {
		return err
	}

	if cfg.PrintJSON {
		req, err := json.Marshal(struct {
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}{method, params})
		if err != nil {
			return err
		}
		fmt.Println(string(req))
	}

	result, err := client.RawRequest(method, params)
	if err != nil {
		return errors.New(describeError(err))
	}

	if cfg.PrintJSON {
		fmt.Println(string(result))
	}

	out, err := formatResult(result, cfg.Spew)
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Println(out)
	}
	return nil
}

// listCommands prints the commands the node supports.
func listCommands(client *rpcclient.Client) error {
	help, err := client.Help(nil)
	if err != nil {
		return errors.New(describeError(err))
	}
	fmt.Println(help)
	return nil
}

// newClient connects to the node, or to the selected wallet of the node.
func newClient(cfg *config) (*rpcclient.Client, error) {
	connCfg, err := connConfig(cfg)
	if err != nil {
		return nil, err
	}
	client, err := rpcclient.New(connCfg)
	if err != nil {
		return nil, err
	}
	if cfg.Wallet != "" {
		return client.WalletClient(cfg.Wallet), nil
	}
	return client, nil
}

// run executes the utility and returns its exit code.
func run() int {
	cfg, args, err := loadConfig()
	if err != nil {
		return 1
	}

	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer log.LogRotator.Close()
	}
	log.SetLogLevels(cfg.DebugLevel)

	client, err := newClient(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer client.Shutdown()
	log.CtlLog.Debugf("Connecting to %s", cfg.RPCServer)

	switch {
	case cfg.ListCommands:
		err = listCommands(client)

	case cfg.Terminal:
		startTerminal(client, cfg)

	case len(args) < 1:
		usage("No command specified")
		return 1

	default:
		err = runCommand(client, cfg, args[0], args[1:],
			bufio.NewReader(os.Stdin))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
