// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson

import "encoding/json"

// GetAddedNodeInfoResultAddr models the data of the addresses portion of the
// getaddednodeinfo command.
type GetAddedNodeInfoResultAddr struct {
	Address   string `json:"address"`
	Connected string `json:"connected"`
}

// GetAddedNodeInfoResult models the data from the getaddednodeinfo command.
type GetAddedNodeInfoResult struct {
	AddedNode string                       `json:"addednode"`
	Connected bool                         `json:"connected"`
	Addresses []GetAddedNodeInfoResultAddr `json:"addresses"`
}

// UploadTarget models the uploadtarget section of getnettotals.
type UploadTarget struct {
	TimeFrame             int64 `json:"timeframe"`
	Target                int64 `json:"target"`
	TargetReached         bool  `json:"target_reached"`
	ServeHistoricalBlocks bool  `json:"serve_historical_blocks"`
	BytesLeftInCycle      int64 `json:"bytes_left_in_cycle"`
	TimeLeftInCycle       int64 `json:"time_left_in_cycle"`
}

// GetNetTotalsResult models the data returned from the getnettotals command.
type GetNetTotalsResult struct {
	TotalBytesRecv uint64       `json:"totalbytesrecv"`
	TotalBytesSent uint64       `json:"totalbytessent"`
	TimeMillis     int64        `json:"timemillis"`
	UploadTarget   UploadTarget `json:"uploadtarget"`
}

// NetworksResult models the networks data from the getnetworkinfo command.
type NetworksResult struct {
	Name                      string `json:"name"`
	Limited                   bool   `json:"limited"`
	Reachable                 bool   `json:"reachable"`
	Proxy                     string `json:"proxy"`
	ProxyRandomizeCredentials bool   `json:"proxy_randomize_credentials"`
}

// LocalAddressesResult models the localaddresses data from the getnetworkinfo
// command.
type LocalAddressesResult struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
	Score   int32  `json:"score"`
}

// GetNetworkInfoResult models the data returned from the getnetworkinfo
// command.  Warnings is a string on older nodes and a list on newer ones, so
// it is kept raw.
type GetNetworkInfoResult struct {
	Version         int32                  `json:"version"`
	SubVersion      string                 `json:"subversion"`
	ProtocolVersion int32                  `json:"protocolversion"`
	LocalServices   string                 `json:"localservices"`
	LocalRelay      bool                   `json:"localrelay"`
	TimeOffset      int64                  `json:"timeoffset"`
	Connections     int32                  `json:"connections"`
	ConnectionsIn   int32                  `json:"connections_in"`
	ConnectionsOut  int32                  `json:"connections_out"`
	NetworkActive   bool                   `json:"networkactive"`
	Networks        []NetworksResult       `json:"networks"`
	RelayFee        float64                `json:"relayfee"`
	IncrementalFee  float64                `json:"incrementalfee"`
	LocalAddresses  []LocalAddressesResult `json:"localaddresses"`
	Warnings        json.RawMessage        `json:"warnings,omitempty"`
}

// GetPeerInfoResult models the data returned from the getpeerinfo command.
type GetPeerInfoResult struct {
	ID              int32            `json:"id"`
	Addr            string           `json:"addr"`
	AddrBind        string           `json:"addrbind,omitempty"`
	AddrLocal       string           `json:"addrlocal,omitempty"`
	Services        string           `json:"services"`
	RelayTxes       bool             `json:"relaytxes"`
	LastSend        int64            `json:"lastsend"`
	LastRecv        int64            `json:"lastrecv"`
	BytesSent       uint64           `json:"bytessent"`
	BytesRecv       uint64           `json:"bytesrecv"`
	ConnTime        int64            `json:"conntime"`
	TimeOffset      int64            `json:"timeoffset"`
	PingTime        float64          `json:"pingtime"`
	MinPing         float64          `json:"minping,omitempty"`
	PingWait        float64          `json:"pingwait,omitempty"`
	Version         uint32           `json:"version"`
	SubVer          string           `json:"subver"`
	Inbound         bool             `json:"inbound"`
	StartingHeight  int32            `json:"startingheight"`
	SyncedHeaders   int32            `json:"synced_headers"`
	SyncedBlocks    int32            `json:"synced_blocks"`
	Inflight        []int32          `json:"inflight"`
	ConnectionType  string           `json:"connection_type,omitempty"`
	BytesSentPerMsg map[string]int64 `json:"bytessent_per_msg"`
	BytesRecvPerMsg map[string]int64 `json:"bytesrecv_per_msg"`
}

// ListBannedResult models a single entry of the listbanned command.
type ListBannedResult struct {
	Address     string `json:"address"`
	BannedUntil int64  `json:"banned_until"`
	BanCreated  int64  `json:"ban_created"`
	BanReason   string `json:"ban_reason,omitempty"`
}
