// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson

// Bool is a helper routine that allocates a new bool value to store v and
// returns a pointer to it.  This is useful when assigning optional parameters.
func Bool(v bool) *bool {
	p := new(bool)
	*p = v
	return p
}

// Int is a helper routine that allocates a new int value to store v and
// returns a pointer to it.  This is useful when assigning optional parameters.
func Int(v int) *int {
	p := new(int)
	*p = v
	return p
}

// Uint32 is a helper routine that allocates a new uint32 value to store v and
// returns a pointer to it.  This is useful when assigning optional parameters.
func Uint32(v uint32) *uint32 {
	p := new(uint32)
	*p = v
	return p
}

// Int64 is a helper routine that allocates a new int64 value to store v and
// returns a pointer to it.  This is useful when assigning optional parameters.
func Int64(v int64) *int64 {
	p := new(int64)
	*p = v
	return p
}

// Float64 is a helper routine that allocates a new float64 value to store v
// and returns a pointer to it.  This is useful when assigning optional
// parameters.
func Float64(v float64) *float64 {
	p := new(float64)
	*p = v
	return p
}

// String is a helper routine that allocates a new string value to store v and
// returns a pointer to it.  This is useful when assigning optional parameters.
func String(v string) *string {
	p := new(string)
	*p = v
	return p
}

// AddressTypePtr returns a pointer to the passed address type.
func AddressTypePtr(v AddressType) *AddressType {
	return &v
}

// FeeEstimateModePtr returns a pointer to the passed estimate mode.
func FeeEstimateModePtr(v FeeEstimateMode) *FeeEstimateMode {
	return &v
}

// SigHashTypePtr returns a pointer to the passed signature hash type.
func SigHashTypePtr(v SigHashType) *SigHashType {
	return &v
}
