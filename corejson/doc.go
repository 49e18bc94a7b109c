// Copyright (c) 2013-2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package corejson implements the JSON-RPC data model of a Bitcoin Core node.

# Protocol

Every request sent to the node has the form:

	{"jsonrpc":"2.0","id":1,"method":"SOMEMETHOD","params":[SOMEPARAMS]}

The params field holds the positional parameters of the call.  Unset optional
parameters are not sent at all, so the node applies its own defaults.

Replies have the form:

	{"result":SOMETHING,"error":null,"id":1}

The result field is kept raw in Response and decoded by the caller into one
of the result types of this package, or a plain Go value for calls that
return a scalar.

# Errors

There are two distinct kinds of errors in this package.

Errors reported by the node arrive in the error field of a Response as an
RPCError.  Its Code is one of the RPCErrorCode constants, although any value
the node sends is preserved.  Two RPCErrors are equal when both their code and
message are equal, which makes them usable with errors.Is:

	if errors.Is(err, corejson.NewRPCError(corejson.ErrRPCWalletNotFound,
		"Requested wallet does not exist or is not loaded")) {
		// ...
	}

The second kind is Error, which is returned when a request or response
envelope cannot be built, for example because a parameter cannot be
marshalled.  Its ErrorCode field identifies the condition.
*/
package corejson
