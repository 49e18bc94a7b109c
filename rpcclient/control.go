// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"github.com/btcsuite/corerpc/corejson"
)

// GetMemoryInfoAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetMemoryInfo for the blocking version and more details.
func (c *Client) GetMemoryInfoAsync() FutureResult[*corejson.GetMemoryInfoResult] {
	return c.sendCmd("getmemoryinfo", corejson.MemoryModeStats)
}

// GetMemoryInfo returns general statistics about memory usage in the daemon.
func (c *Client) GetMemoryInfo() (*corejson.GetMemoryInfoResult, error) {
	return c.GetMemoryInfoAsync().Receive()
}

// GetMemoryInfoMallocAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetMemoryInfoMalloc for the blocking version and more details.
func (c *Client) GetMemoryInfoMallocAsync() FutureResult[string] {
	return c.sendCmd("getmemoryinfo", corejson.MemoryModeMallocInfo)
}

// GetMemoryInfoMalloc returns the XML document describing the low-level heap
// state, as reported by malloc_info.
func (c *Client) GetMemoryInfoMalloc() (string, error) {
	return c.GetMemoryInfoMallocAsync().Receive()
}

// HelpAsync returns an instance of a type that can be used to get the result
// of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See Help for the blocking version and more details.
func (c *Client) HelpAsync(command *string) FutureResult[string] {
	return c.sendCmd("help", command)
}

// Help returns the help text of the given command, or the list of commands
// when command is nil.
func (c *Client) Help(command *string) (string, error) {
	return c.HelpAsync(command).Receive()
}

// StopAsync returns an instance of a type that can be used to get the result
// of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See Stop for the blocking version and more details.
func (c *Client) StopAsync() FutureResult[string] {
	return c.sendCmd("stop")
}

// Stop asks the node to shut down.  The returned message is the node's
// acknowledgement.
func (c *Client) Stop() (string, error) {
	return c.StopAsync().Receive()
}

// UptimeAsync returns an instance of a type that can be used to get the result
// of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See Uptime for the blocking version and more details.
func (c *Client) UptimeAsync() FutureResult[int64] {
	return c.sendCmd("uptime")
}

// Uptime returns the number of seconds the node has been running.
func (c *Client) Uptime() (int64, error) {
	return c.UptimeAsync().Receive()
}
