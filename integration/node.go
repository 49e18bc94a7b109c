// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/corerpc/corejson"
	"github.com/btcsuite/corerpc/integration/commandline"
	"github.com/btcsuite/corerpc/rpcclient"
)

const (
	// BitcoindExeEnvVar names the environment variable holding the path of
	// the bitcoind executable.  bitcoind is looked up in PATH when it is
	// unset.
	BitcoindExeEnvVar = "BITCOIND_EXE"

	// startupTimeout bounds how long Start waits for the RPC server.
	startupTimeout = time.Minute

	// stopTimeout is how long the node gets to shut down before it is
	// killed.
	stopTimeout = 30 * time.Second
)

// NodeConfig holds the options of a regtest node.
type NodeConfig struct {
	// Executable resolves the bitcoind binary.  It defaults to
	// BitcoindExeEnvVar with a PATH fallback.
	Executable commandline.ExecutablePathProvider

	// RPCUser and RPCPass are the credentials the node accepts.  The node
	// writes a cookie file instead when both are empty.
	RPCUser string
	RPCPass string

	// ExtraArgs are added to the bitcoind command line.  See
	// commandline.ArgumentsToStringArray for the format.
	ExtraArgs map[string]interface{}

	// DebugOutput copies the output of the node to the console.
	DebugOutput bool
}

// Node is a bitcoind process running on regtest in a temporary data
// directory.  It registers itself as a LeakyAsset once started.
type Node struct {
	cfg     NodeConfig
	dataDir *TempDirHandler
	process *commandline.ExternalProcess
	rpcPort int
	p2pPort int
	client  *rpcclient.Client

	registered bool
}

// NewNode reserves the ports of a new node and prepares its data directory.
// Nothing is launched until Start is called.
func NewNode(cfg NodeConfig) (*Node, error) {
	if cfg.Executable == nil {
		cfg.Executable = commandline.EnvExecutable{
			Name:   "bitcoind",
			EnvVar: BitcoindExeEnvVar,
		}
	}

	rpcPort, err := ReservePort()
	if err != nil {
		return nil, err
	}
	p2pPort, err := ReservePort()
	if err != nil {
		ReleasePort(rpcPort)
		return nil, err
	}

	parent, err := os.MkdirTemp("", "corerpc-regtest-")
	if err != nil {
		ReleasePort(rpcPort)
		ReleasePort(p2pPort)
		return nil, err
	}

	n := &Node{
		cfg:     cfg,
		dataDir: NewTempDir(parent, "data"),
		rpcPort: rpcPort,
		p2pPort: p2pPort,
	}
	n.dataDir.MakeDir()
	return n, nil
}

// arguments returns the bitcoind command line of the node.
func (n *Node) arguments() []string {
	args := map[string]interface{}{
		"regtest":     commandline.NoArgumentValue,
		"server":      1,
		"datadir":     n.dataDir.Path(),
		"rpcbind":     "127.0.0.1",
		"rpcallowip":  "127.0.0.1",
		"rpcport":     n.rpcPort,
		"bind":        fmt.Sprintf("127.0.0.1:%d", n.p2pPort),
		"listen":      0,
		"txindex":     1,
		"fallbackfee": "0.0002",
		"rpcuser":     n.cfg.RPCUser,
		"rpcpassword": n.cfg.RPCPass,
	}
	if !n.cfg.DebugOutput {
		args["printtoconsole"] = 0
	}
	for key, value := range n.cfg.ExtraArgs {
		args[key] = value
	}
	return commandline.ArgumentsToStringArray(args)
}

// CookiePath is where the node writes its cookie file.
func (n *Node) CookiePath() string {
	return filepath.Join(n.dataDir.Path(), "regtest", ".cookie")
}

// URL is the RPC endpoint of the node.
func (n *Node) URL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", n.rpcPort)
}

// ConnConfig returns a client configuration that authenticates with the
// configured credentials, or with the cookie file when there are none.
func (n *Node) ConnConfig() *rpcclient.ConnConfig {
	connCfg := &rpcclient.ConnConfig{
		URL:  n.URL(),
		User: n.cfg.RPCUser,
		Pass: n.cfg.RPCPass,
	}
	if n.cfg.RPCUser == "" && n.cfg.RPCPass == "" {
		connCfg.CookiePath = n.CookiePath()
	}
	return connCfg
}

// Client returns the client connected by Start.
func (n *Node) Client() *rpcclient.Client {
	return n.client
}

// Start launches bitcoind and blocks until its RPC server answers.
func (n *Node) Start(ctx context.Context) error {
	n.process = &commandline.ExternalProcess{
		CommandName: n.cfg.Executable.Executable(),
		Arguments:   n.arguments(),
		StopTimeout: stopTimeout,
	}
	if err := n.process.Launch(n.cfg.DebugOutput); err != nil {
		return err
	}
	RegisterDisposableAsset(n)
	n.registered = true

	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if n.cfg.RPCUser == "" && n.cfg.RPCPass == "" {
		if err := WaitForFile(n.CookiePath(), startupTimeout); err != nil {
			return err
		}
	}

	client, err := rpcclient.New(n.ConnConfig())
	if err != nil {
		return err
	}
	n.client = client

	return n.waitForRPC(ctx)
}

// waitForRPC polls the node until it leaves warmup.
func (n *Node) waitForRPC(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		_, err := n.client.GetBlockCount()
		switch {
		case err == nil:
			return nil

		case rpcclient.IsConnectionError(err),
			corejson.IsRPCError(err, corejson.ErrRPCInWarmup):

		default:
			return fmt.Errorf("node failed to start: %w", err)
		}

		select {
		case <-ticker.C:
		case <-n.process.Exited():
			return errors.New("bitcoind exited during startup: " +
				n.process.FullConsoleCommand())
		case <-ctx.Done():
			return fmt.Errorf("node did not start: %w", ctx.Err())
		}
	}
}

// Dispose stops the node and removes its data directory.
func (n *Node) Dispose() {
	if n.client != nil {
		// The process is interrupted below if the stop request fails.
		if _, err := n.client.Stop(); err == nil {
			select {
			case <-n.process.Exited():
			case <-time.After(stopTimeout):
			}
		}
		n.client.Shutdown()
		n.client.WaitForShutdown()
	}
	if n.process != nil && n.process.IsRunning() {
		if err := n.process.Stop(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	n.dataDir.Dispose()
	os.Remove(filepath.Dir(n.dataDir.Path()))
	ReleasePort(n.rpcPort)
	ReleasePort(n.p2pPort)

	if n.registered {
		n.registered = false
		DeRegisterDisposableAsset(n)
	}
}

// String identifies the node in the leak report.
func (n *Node) String() string {
	return fmt.Sprintf("bitcoind regtest node at %s", n.URL())
}
