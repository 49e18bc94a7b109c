// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"errors"

	"github.com/btcsuite/corerpc/corejson"
)

var (
	// ErrBackendVersion is returned when the version reported by the node
	// cannot be parsed.
	ErrBackendVersion = errors.New("unrecognized backend version")

	// ErrInvalidParam is returned when the caller provides an invalid
	// parameter to an RPC method.
	ErrInvalidParam = errors.New("invalid param")

	// ErrClientShutdown is returned for calls issued after Shutdown, and for
	// calls that were still in flight when it was invoked.
	ErrClientShutdown = errors.New("the client has been shutdown")
)

const (
	connectionErrorMsg = "Connection to the provided address could not be " +
		"established."

	authErrorMsg = "Invalid credentials"
)

// ConnectionError is returned when the transport could not establish a
// connection to the node at all, for example because it was refused or the
// host name did not resolve.
type ConnectionError struct {
	Err error
}

// Error satisfies the error interface.
func (e *ConnectionError) Error() string {
	return connectionErrorMsg
}

// Unwrap returns the underlying dial error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// AuthError is returned when the node rejected the supplied credentials.
type AuthError struct{}

// Error satisfies the error interface.
func (e *AuthError) Error() string {
	return authErrorMsg
}

// UnknownError wraps any other transport failure.  The original message is
// preserved.
type UnknownError struct {
	Err error
}

// Error satisfies the error interface.
func (e *UnknownError) Error() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

// Unwrap returns the original transport error.
func (e *UnknownError) Unwrap() error {
	return e.Err
}

// ErrorKind identifies which class of failure an error returned by the client
// belongs to.
type ErrorKind uint8

const (
	// ErrKindNone is reported for a nil error and for errors that did not
	// originate from the transport, such as a result that could not be
	// unmarshalled.
	ErrKindNone ErrorKind = iota

	// ErrKindConnection is reported for a ConnectionError.
	ErrKindConnection

	// ErrKindAuth is reported for an AuthError.
	ErrKindAuth

	// ErrKindRPC is reported for an error returned by the node.
	ErrKindRPC

	// ErrKindUnknown is reported for an UnknownError.
	ErrKindUnknown
)

var errorKindStrings = map[ErrorKind]string{
	ErrKindNone:       "none",
	ErrKindConnection: "connection",
	ErrKindAuth:       "auth",
	ErrKindRPC:        "rpc",
	ErrKindUnknown:    "unknown",
}

// String returns the ErrorKind as a human-readable name.
func (k ErrorKind) String() string {
	if s, ok := errorKindStrings[k]; ok {
		return s
	}
	return "invalid"
}

// KindOf returns the kind of the passed error.  Wrapped errors are inspected
// with errors.As.
func KindOf(err error) ErrorKind {
	var (
		connErr    *ConnectionError
		authErr    *AuthError
		rpcErr     *corejson.RPCError
		unknownErr *UnknownError
	)
	switch {
	case err == nil:
		return ErrKindNone

	case errors.As(err, &connErr):
		return ErrKindConnection

	case errors.As(err, &authErr):
		return ErrKindAuth

	case errors.As(err, &rpcErr):
		return ErrKindRPC

	case errors.As(err, &unknownErr):
		return ErrKindUnknown

	default:
		return ErrKindNone
	}
}

// IsConnectionError reports whether err is a ConnectionError.
func IsConnectionError(err error) bool {
	return KindOf(err) == ErrKindConnection
}

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool {
	return KindOf(err) == ErrKindAuth
}
