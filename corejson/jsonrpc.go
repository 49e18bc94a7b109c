// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RPCVersion is a type to indicate RPC versions.
type RPCVersion string

// RpcVersion2 is version 2 of the JSON-RPC protocol.  It is the only version
// the node is spoken to with.
const RpcVersion2 RPCVersion = RPCVersion("2.0")

var validRpcVersions = []RPCVersion{RpcVersion2}

// IsValid returns whether the version is a known JSON-RPC version.
func (r RPCVersion) IsValid() bool {
	for _, version := range validRpcVersions {
		if version == r {
			return true
		}
	}
	return false
}

// String returns the version as it appears on the wire.
func (r RPCVersion) String() string {
	return string(r)
}

// RPCError represents an error that is used as a part of a JSON-RPC Response
// object.  It is the error a node reports for a failed call, with the code
// and message passed through verbatim.
type RPCError struct {
	Code    RPCErrorCode `json:"code"`
	Message string       `json:"message"`
}

// Guarantee RPCError satisfies the builtin error interface.
var _, _ error = RPCError{}, (*RPCError)(nil)

// Error returns a string describing the RPC error.  This satisfies the
// builtin error interface.
func (e RPCError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Is reports whether target is an RPCError with the same code and message.
// This allows errors.Is to compare errors returned by the client against
// expected values regardless of whether either side is a pointer.
func (e RPCError) Is(target error) bool {
	var other *RPCError
	switch t := target.(type) {
	case RPCError:
		other = &t
	case *RPCError:
		other = t
	default:
		return false
	}
	if other == nil {
		return false
	}
	return e.Code == other.Code && e.Message == other.Message
}

// NewRPCError constructs and returns a new JSON-RPC error.
func NewRPCError(code RPCErrorCode, message string) *RPCError {
	return &RPCError{
		Code:    code,
		Message: message,
	}
}

// IsRPCError reports whether err carries an RPCError with the passed code.
func IsRPCError(err error, code RPCErrorCode) bool {
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}
	return rpcErr.Code == code
}

// IsValidIDType checks that the ID field (which can go in any of the JSON-RPC
// requests, responses, or notifications) is valid.  JSON-RPC 2.0 only allows
// string, number, or null, so this function restricts the allowed types to
// that list.
func IsValidIDType(id interface{}) bool {
	switch id.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		string,
		nil:
		return true
	default:
		return false
	}
}

// Request is a type for raw JSON-RPC requests.  The Method field identifies
// the remote procedure and Params holds its already marshalled positional
// parameters.
type Request struct {
	Jsonrpc RPCVersion        `json:"jsonrpc"`
	ID      interface{}       `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// NewRequest returns a new JSON-RPC request object given the provided rpc
// version, id, method, and parameters.  The parameters are marshalled into a
// json.RawMessage for the Params field of the returned request object.
func NewRequest(rpcVersion RPCVersion, id interface{}, method string,
	params []interface{}) (*Request, error) {

	if !rpcVersion.IsValid() {
		str := fmt.Sprintf("rpcversion '%s' is invalid", rpcVersion)
		return nil, makeError(ErrInvalidType, str)
	}

	if !IsValidIDType(id) {
		str := fmt.Sprintf("the id of type '%T' is invalid", id)
		return nil, makeError(ErrInvalidType, str)
	}

	rawParams := make([]json.RawMessage, 0, len(params))
	for i, param := range params {
		marshalledParam, err := json.Marshal(param)
		if err != nil {
			str := fmt.Sprintf("parameter #%d of method %q cannot "+
				"be marshalled: %v", i+1, method, err)
			return nil, makeError(ErrInvalidParam, str)
		}
		rawParams = append(rawParams, json.RawMessage(marshalledParam))
	}

	return &Request{
		Jsonrpc: rpcVersion,
		ID:      id,
		Method:  method,
		Params:  rawParams,
	}, nil
}

// MarshalRequest creates a request with NewRequest and marshals it into the
// byte slice sent over the wire.
func MarshalRequest(rpcVersion RPCVersion, id interface{}, method string,
	params []interface{}) ([]byte, error) {

	req, err := NewRequest(rpcVersion, id, method, params)
	if err != nil {
		return nil, err
	}
	return json.Marshal(req)
}

// Response is the general form of a JSON-RPC response.  The type of the
// Result field varies from one command to the next, so it is kept raw.  The
// ID field has to be a pointer to allow for a nil value when empty.
type Response struct {
	Jsonrpc RPCVersion      `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
	ID      *interface{}    `json:"id"`
}

// NewResponse returns a new JSON-RPC response object given the provided rpc
// version, id, marshalled result, and RPC error.  It frames replies for
// servers standing in for a node.
func NewResponse(rpcVersion RPCVersion, id interface{},
	marshalledResult []byte, rpcErr *RPCError) (*Response, error) {

	if !rpcVersion.IsValid() {
		str := fmt.Sprintf("rpcversion '%s' is invalid", rpcVersion)
		return nil, makeError(ErrInvalidType, str)
	}

	if !IsValidIDType(id) {
		str := fmt.Sprintf("the id of type '%T' is invalid", id)
		return nil, makeError(ErrInvalidType, str)
	}

	pid := &id
	return &Response{
		Jsonrpc: rpcVersion,
		Result:  marshalledResult,
		Error:   rpcErr,
		ID:      pid,
	}, nil
}

// MarshalResponse marshals the passed rpc version, id, result, and RPCError to
// a JSON-RPC response byte slice.
func MarshalResponse(rpcVersion RPCVersion, id interface{}, result interface{},
	rpcErr *RPCError) ([]byte, error) {

	marshalledResult, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	response, err := NewResponse(rpcVersion, id, marshalledResult, rpcErr)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&response)
}
