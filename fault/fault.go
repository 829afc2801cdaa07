// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError     GenericError
	InvalidError    GenericError
	LengthError     GenericError
	NotFoundError   GenericError
	PermissionError GenericError
	ProcessError    GenericError
)

// registry, swap and escrow errors - keep in alphabetic order
var (
	ErrArithmeticOverflow         = ProcessError("arithmetic overflow")
	ErrDuplicateCategory          = ExistsError("duplicate category")
	ErrDuplicateItem              = ExistsError("duplicate item")
	ErrEmptyName                  = InvalidError("name is empty")
	ErrInvalidLeg                 = InvalidError("invalid leg selector")
	ErrItemHasOutstandingProposal = InvalidError("item has outstanding proposal")
	ErrItemNotSwappable           = InvalidError("item is not swappable")
	ErrNotACollector              = PermissionError("not a collector")
	ErrNotCollectionOwner         = PermissionError("not collection owner")
	ErrNothingToRedeem            = NotFoundError("nothing to redeem")
	ErrProposalAlreadyOutstanding = ExistsError("proposal already outstanding")
	ErrReferenceTooLong           = LengthError("tracking reference too long")
	ErrSelfSwap                   = InvalidError("cannot swap with self")
	ErrUnauthorized               = PermissionError("unauthorized")
	ErrUnknownCategory            = NotFoundError("unknown category")
	ErrUnknownCollection          = NotFoundError("unknown collection")
	ErrUnknownCollector           = NotFoundError("unknown collector")
	ErrUnknownItem                = NotFoundError("unknown item")
	ErrUnknownProposal            = NotFoundError("unknown proposal")
	ErrUnknownTargetItem          = NotFoundError("unknown target item")
	ErrValueMismatch              = InvalidError("value mismatch")
)

// infrastructure errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrCertificateFileExists    = ExistsError("certificate file already exists")
	ErrChecksumMismatch         = ProcessError("checksum mismatch")
	ErrConfigurationNotFound    = NotFoundError("configuration file not found")
	ErrIncompatibleDatabase     = ProcessError("incompatible database version")
	ErrInvalidAccount           = InvalidError("invalid account")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidDigest            = InvalidError("invalid digest")
	ErrInvalidIPAddress         = InvalidError("invalid IP address")
	ErrInvalidKeyLength         = LengthError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidLuaFile           = InvalidError("invalid lua configuration")
	ErrInvalidOperation         = InvalidError("invalid journal operation")
	ErrInvalidPrivateKeyFile    = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile     = InvalidError("invalid public key file")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrJournalSequenceGap       = ProcessError("journal sequence gap")
	ErrKeyFileExists            = ExistsError("key file already exists")
	ErrMissingParameters        = InvalidError("missing parameters")
	ErrNotAvailableDuringReplay = ProcessError("not available during replay")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrNotPublicKey             = InvalidError("not a public key")
	ErrPayoutFailed             = ProcessError("payout failed")
	ErrRateLimiting             = InvalidError("rate limiting")
	ErrRequestIDReused          = InvalidError("request id reused with different request")
	ErrRequiredCaller           = InvalidError("caller is required")
	ErrWrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
