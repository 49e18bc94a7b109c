// Copyright (c) 2014-2020 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson

// AddressType is the kind of address the wallet derives.
type AddressType string

const (
	AddressTypeLegacy     AddressType = "legacy"
	AddressTypeP2SHSegwit AddressType = "p2sh-segwit"
	AddressTypeBech32     AddressType = "bech32"
	AddressTypeBech32m    AddressType = "bech32m"
)

// FeeEstimateMode selects how conservative fee estimation is.
type FeeEstimateMode string

const (
	EstimateModeUnset        FeeEstimateMode = "UNSET"
	EstimateModeEconomical   FeeEstimateMode = "ECONOMICAL"
	EstimateModeConservative FeeEstimateMode = "CONSERVATIVE"
)

// SigHashType enumerates the available signature hashing types that the
// signrawtransaction family of calls accepts.
type SigHashType string

// Constants used to indicate the signature hash type for SignRawTransaction.
const (
	// SigHashAll indicates ALL of the outputs should be signed.
	SigHashAll SigHashType = "ALL"

	// SigHashNone indicates NONE of the outputs should be signed.  This
	// can be thought of as specifying the signer does not care where the
	// bitcoins go.
	SigHashNone SigHashType = "NONE"

	// SigHashSingle indicates that a SINGLE output should be signed.  This
	// can be thought of specifying the signer only cares about where ONE of
	// the outputs goes, but not any of the others.
	SigHashSingle SigHashType = "SINGLE"

	// SigHashAllAnyoneCanPay indicates that signer does not care where the
	// other inputs to the transaction come from, so it allows other people
	// to add inputs.  In addition, it uses the SigHashAll signing method
	// for outputs.
	SigHashAllAnyoneCanPay SigHashType = "ALL|ANYONECANPAY"

	// SigHashNoneAnyoneCanPay indicates that signer does not care where the
	// other inputs to the transaction come from, so it allows other people
	// to add inputs.  In addition, it uses the SigHashNone signing method
	// for outputs.
	SigHashNoneAnyoneCanPay SigHashType = "NONE|ANYONECANPAY"

	// SigHashSingleAnyoneCanPay indicates that signer does not care where
	// the other inputs to the transaction come from, so it allows other
	// people to add inputs.  In addition, it uses the SigHashSingle signing
	// method for outputs.
	SigHashSingleAnyoneCanPay SigHashType = "SINGLE|ANYONECANPAY"
)

// AddNodeCommand enumerates the available commands that the addnode call
// supports.
type AddNodeCommand string

const (
	// ANAdd indicates the specified host should be added as a persistent
	// peer.
	ANAdd AddNodeCommand = "add"

	// ANRemove indicates the specified peer should be removed.
	ANRemove AddNodeCommand = "remove"

	// ANOneTry indicates the specified host should try to connect once,
	// but it should not be made persistent.
	ANOneTry AddNodeCommand = "onetry"
)

// SetBanCommand enumerates the commands accepted by setban.
type SetBanCommand string

const (
	SBAdd    SetBanCommand = "add"
	SBRemove SetBanCommand = "remove"
)

// MemoryInfoMode selects the output of getmemoryinfo.
type MemoryInfoMode string

const (
	MemoryModeStats      MemoryInfoMode = "stats"
	MemoryModeMallocInfo MemoryInfoMode = "mallocinfo"
)

// Bip125Replaceable reports whether a wallet transaction signals
// replaceability.
type Bip125Replaceable string

const (
	Bip125Yes     Bip125Replaceable = "yes"
	Bip125No      Bip125Replaceable = "no"
	Bip125Unknown Bip125Replaceable = "unknown"
)
