// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"github.com/btcsuite/corerpc/corejson"
)

// AddNodeAsync returns an instance of a type that can be used to get the result
// of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See AddNode for the blocking version and more details.
func (c *Client) AddNodeAsync(host string, command corejson.AddNodeCommand) FutureVoidResult {
	return c.sendCmd("addnode", host, command)
}

// AddNode attempts to perform the passed command on the passed persistent peer.
// For example, it can be used to add or a remove a persistent peer, or to do
// a one time connection to a peer.
//
// It may not be used to remove non-persistent peers.
func (c *Client) AddNode(host string, command corejson.AddNodeCommand) error {
	return c.AddNodeAsync(host, command).Receive()
}

// ClearBannedAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See ClearBanned for the blocking version and more details.
func (c *Client) ClearBannedAsync() FutureVoidResult {
	return c.sendCmd("clearbanned")
}

// ClearBanned removes all banned addresses.
func (c *Client) ClearBanned() error {
	return c.ClearBannedAsync().Receive()
}

// DisconnectNodeAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See DisconnectNode for the blocking version and more details.
func (c *Client) DisconnectNodeAsync(address string) FutureVoidResult {
	return c.sendCmd("disconnectnode", address)
}

// DisconnectNode immediately disconnects from the peer with the given
// address.
func (c *Client) DisconnectNode(address string) error {
	return c.DisconnectNodeAsync(address).Receive()
}

// DisconnectNodeByIDAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See DisconnectNodeByID for the blocking version and more details.
func (c *Client) DisconnectNodeByIDAsync(nodeID int64) FutureVoidResult {
	// The address must be empty when selecting the peer by id.
	return c.sendCmd("disconnectnode", "", nodeID)
}

// DisconnectNodeByID immediately disconnects from the peer with the given id,
// as reported by GetPeerInfo.
func (c *Client) DisconnectNodeByID(nodeID int64) error {
	return c.DisconnectNodeByIDAsync(nodeID).Receive()
}

// GetAddedNodeInfoAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See GetAddedNodeInfo for the blocking version and more details.
func (c *Client) GetAddedNodeInfoAsync(peer *string) FutureResult[[]corejson.GetAddedNodeInfoResult] {
	return c.sendCmd("getaddednodeinfo", peer)
}

// GetAddedNodeInfo returns information about manually added (persistent)
// peers, or only about peer when it is not nil.
func (c *Client) GetAddedNodeInfo(peer *string) ([]corejson.GetAddedNodeInfoResult, error) {
	return c.GetAddedNodeInfoAsync(peer).Receive()
}

// GetConnectionCountAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetConnectionCount for the blocking version and more details.
func (c *Client) GetConnectionCountAsync() FutureResult[int64] {
	return c.sendCmd("getconnectioncount")
}

// GetConnectionCount returns the number of active connections to other peers.
func (c *Client) GetConnectionCount() (int64, error) {
	return c.GetConnectionCountAsync().Receive()
}

// GetNetTotalsAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetNetTotals for the blocking version and more details.
func (c *Client) GetNetTotalsAsync() FutureResult[*corejson.GetNetTotalsResult] {
	return c.sendCmd("getnettotals")
}

// GetNetTotals returns network traffic statistics.
func (c *Client) GetNetTotals() (*corejson.GetNetTotalsResult, error) {
	return c.GetNetTotalsAsync().Receive()
}

// GetNetworkInfoAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See GetNetworkInfo for the blocking version and more details.
func (c *Client) GetNetworkInfoAsync() FutureResult[*corejson.GetNetworkInfoResult] {
	return c.sendCmd("getnetworkinfo")
}

// GetNetworkInfo returns data about the current network.
func (c *Client) GetNetworkInfo() (*corejson.GetNetworkInfoResult, error) {
	return c.GetNetworkInfoAsync().Receive()
}

// GetPeerInfoAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetPeerInfo for the blocking version and more details.
func (c *Client) GetPeerInfoAsync() FutureResult[[]corejson.GetPeerInfoResult] {
	return c.sendCmd("getpeerinfo")
}

// GetPeerInfo returns data about each connected network peer.
func (c *Client) GetPeerInfo() ([]corejson.GetPeerInfoResult, error) {
	return c.GetPeerInfoAsync().Receive()
}

// ListBannedAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See ListBanned for the blocking version and more details.
func (c *Client) ListBannedAsync() FutureResult[[]corejson.ListBannedResult] {
	return c.sendCmd("listbanned")
}

// ListBanned returns all banned addresses and subnets.
func (c *Client) ListBanned() ([]corejson.ListBannedResult, error) {
	return c.ListBannedAsync().Receive()
}

// PingAsync returns an instance of a type that can be used to get the result of
// the RPC at some future time by invoking the Receive function on the returned
// instance.
//
// See Ping for the blocking version and more details.
func (c *Client) PingAsync() FutureVoidResult {
	return c.sendCmd("ping")
}

// Ping queues a ping to be sent to each connected peer.
//
// Use the GetPeerInfo function and examine the PingTime and PingWait fields to
// access the ping times.
func (c *Client) Ping() error {
	return c.PingAsync().Receive()
}

// SetBanAsync returns an instance of a type that can be used to get the result
// of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See SetBan for the blocking version and more details.
func (c *Client) SetBanAsync(subnet string, command corejson.SetBanCommand, banTime *int64, absolute *bool) FutureVoidResult {
	var seconds int64
	if banTime != nil {
		seconds = *banTime
	}
	return c.sendCmd("setban", subnet, command, seconds, absolute)
}

// SetBan adds or removes an IP or subnet from the ban list.  banTime is the
// ban duration in seconds, or an absolute UNIX time when absolute is true; 0
// (the default) uses the node's configured ban time.
func (c *Client) SetBan(subnet string, command corejson.SetBanCommand, banTime *int64, absolute *bool) error {
	return c.SetBanAsync(subnet, command, banTime, absolute).Receive()
}

// SetNetworkActiveAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See SetNetworkActive for the blocking version and more details.
func (c *Client) SetNetworkActiveAsync(active bool) FutureResult[bool] {
	return c.sendCmd("setnetworkactive", active)
}

// SetNetworkActive disables or enables all P2P network activity and returns
// the resulting state.
func (c *Client) SetNetworkActive(active bool) (bool, error) {
	return c.SetNetworkActiveAsync(active).Receive()
}
