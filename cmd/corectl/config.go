// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/corerpc/internal/log"
	"github.com/btcsuite/corerpc/internal/version"
	"github.com/btcsuite/corerpc/rpcclient"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/crypto/ssh/terminal"
)

const (
	defaultConfigFilename = "corectl.conf"
	defaultLogFilename    = "corectl.log"
	defaultLogLevel       = "info"
	defaultRPCServer      = "localhost"
)

var (
	bitcoinHomeDir    = btcutil.AppDataDir("bitcoin", false)
	corectlHomeDir    = btcutil.AppDataDir("corectl", false)
	defaultConfigFile = filepath.Join(corectlHomeDir, defaultConfigFilename)
)

// config defines the configuration options for corectl.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion   bool   `short:"V" long:"version" description:"Display version information and exit"`
	ListCommands  bool   `short:"l" long:"listcommands" description:"List the commands supported by the node and exit"`
	ConfigFile    string `short:"C" long:"configfile" description:"Path to configuration file"`
	RPCUser       string `short:"u" long:"rpcuser" description:"RPC username"`
	RPCPassword   string `short:"P" long:"rpcpass" default-mask:"-" description:"RPC password"`
	RPCCookie     string `long:"rpccookie" description:"Authenticate with the cookie file written by the node instead of a username and password"`
	RPCServer     string `short:"s" long:"rpcserver" description:"RPC server to connect to"`
	RPCCert       string `short:"c" long:"rpccert" description:"RPC server certificate chain for validation"`
	TLS           bool   `long:"tls" description:"Connect with TLS, for nodes behind a TLS terminating proxy"`
	TLSSkipVerify bool   `long:"skipverify" description:"Do not verify tls certificates (not recommended!)"`
	Proxy         string `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser     string `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass     string `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
	TestNet       bool   `long:"testnet" description:"Connect to testnet"`
	RegTest       bool   `long:"regtest" description:"Connect to the regression test network"`
	SigNet        bool   `long:"signet" description:"Connect to signet"`
	Wallet        string `short:"w" long:"wallet" description:"Send the command to the named wallet"`
	PrintJSON     bool   `short:"j" long:"json" description:"Print json messages sent and received"`
	Spew          bool   `long:"spew" description:"Dump the decoded result instead of pretty printing it"`
	Terminal      bool   `short:"t" long:"terminal" description:"Start an interactive terminal"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	LogDir        string `long:"logdir" description:"Also write logs to a rotated file in this directory"`
}

// netName returns the name of the selected network, which is also the name
// of its data directory below the bitcoin home directory.
func (cfg *config) netName() string {
	switch {
	case cfg.TestNet:
		return "testnet3"
	case cfg.RegTest:
		return "regtest"
	case cfg.SigNet:
		return "signet"
	default:
		return ""
	}
}

// normalizeAddress returns addr with the default RPC port of the selected
// network appended if there is not already a port specified.
func normalizeAddress(addr string, useTestNet, useRegTest, useSigNet bool) string {
	_, _, err := net.SplitHostPort(addr)
	if err != nil {
		var defaultPort string
		switch {
		case useTestNet:
			defaultPort = "18332"
		case useRegTest:
			defaultPort = "18443"
		case useSigNet:
			defaultPort = "38332"
		default:
			defaultPort = "8332"
		}

		return net.JoinHostPort(addr, defaultPort)
	}
	return addr
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return ""
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// defaultCookiePath returns the path of the cookie file the node writes for
// the selected network.
func defaultCookiePath(cfg *config) string {
	return filepath.Join(bitcoinHomeDir, cfg.netName(), ".cookie")
}

// connConfig builds the client configuration from the parsed options.
func connConfig(cfg *config) (*rpcclient.ConnConfig, error) {
	scheme := "http"
	if cfg.TLS {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: cfg.RPCServer}

	connCfg := &rpcclient.ConnConfig{
		URL:           u.String(),
		User:          cfg.RPCUser,
		Pass:          cfg.RPCPassword,
		CookiePath:    cfg.RPCCookie,
		TLSSkipVerify: cfg.TLSSkipVerify,
		Proxy:         cfg.Proxy,
		ProxyUser:     cfg.ProxyUser,
		ProxyPass:     cfg.ProxyPass,
	}

	if cfg.TLS && cfg.RPCCert != "" {
		certs, err := os.ReadFile(cfg.RPCCert)
		if err != nil {
			return nil, err
		}
		connCfg.Certificates = certs
	}

	return connCfg, nil
}

// readPassword prompts for the RPC password on the terminal.
func readPassword(user string) (string, error) {
	fmt.Fprintf(os.Stderr, "RPC password for %s: ", user)
	pass, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprint(os.Stderr, "\n")
	if err != nil {
		return "", fmt.Errorf("unable to read password: %w", err)
	}
	return string(pass), nil
}

// validateConfig checks the parsed options and fills in the values derived
// from them.
func validateConfig(cfg *config) error {
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	for _, selected := range []bool{cfg.TestNet, cfg.RegTest, cfg.SigNet} {
		if selected {
			numNets++
		}
	}
	if numNets > 1 {
		return errors.New("the testnet, regtest and signet params " +
			"can't be used together -- choose one of the three")
	}

	if !log.ValidLogLevel(cfg.DebugLevel) {
		return fmt.Errorf("the specified debug level %q is invalid",
			cfg.DebugLevel)
	}

	if cfg.RPCCookie != "" && (cfg.RPCUser != "" || cfg.RPCPassword != "") {
		return errors.New("--rpccookie can't be used together with " +
			"--rpcuser or --rpcpass")
	}

	// Fall back to the cookie file of the node when no credentials were
	// provided and the node wrote one.
	if cfg.RPCUser == "" && cfg.RPCPassword == "" && cfg.RPCCookie == "" {
		if cookie := defaultCookiePath(cfg); fileExists(cookie) {
			cfg.RPCCookie = cookie
		}
	}

	// Handle environment variable expansion in the paths.
	cfg.RPCCert = cleanAndExpandPath(cfg.RPCCert)
	cfg.RPCCookie = cleanAndExpandPath(cfg.RPCCookie)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	// Add default port to RPC server based on the network flags if needed.
	cfg.RPCServer = normalizeAddress(cfg.RPCServer, cfg.TestNet,
		cfg.RegTest, cfg.SigNet)

	return nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in functioning properly without any config settings
// while still allowing the user to override settings with config files and
// command line options.  Command line options always take precedence.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		RPCServer:  defaultRPCServer,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			fmt.Fprintln(os.Stdout, "")
			fmt.Fprintln(os.Stdout, "The special parameter `-` "+
				"indicates that a parameter should be read "+
				"from the\nnext unread line from standard input.")
			os.Exit(0)
		}
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show options", appName)
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version.String())
		os.Exit(0)
	}

	// Load additional config from file.
	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n",
				err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, nil, err
	}

	if err := validateConfig(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "loadConfig: %v\n", err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	// Prompt for the password when only the user was given.
	if cfg.RPCUser != "" && cfg.RPCPassword == "" {
		cfg.RPCPassword, err = readPassword(cfg.RPCUser)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	return &cfg, remainingArgs, nil
}
