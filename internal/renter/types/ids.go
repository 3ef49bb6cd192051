// Package types defines the typed values shared by the renterd sub-API
// clients: prefixed hex identifiers, exact currency amounts, percentage and
// bandwidth readings, and the integer duration encodings the API uses.
//
// All identifier types implement encoding.TextMarshaler and TextUnmarshaler,
// so they serialize as their canonical strings in JSON values and map keys
// alike, and every parse failure surfaces as an invalid-data error.
package types

import (
	"encoding/hex"
	"strings"

	"github.com/koustreak/SiaRi/internal/errs"
)

// PublicKey is a host's ed25519 public key, canonically "ed25519:<64 hex>".
type PublicKey [32]byte

const publicKeyPrefix = "ed25519:"

// ParsePublicKey parses the canonical "ed25519:<64 hex>" form.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	rest, ok := strings.CutPrefix(s, publicKeyPrefix)
	if !ok {
		return pk, errs.Newf(errs.ErrKindInvalidData, "public key %q: unsupported prefix", s)
	}
	if err := decodeHex(pk[:], rest); err != nil {
		return pk, errs.Wrap(errs.ErrKindInvalidData, "public key "+s, err)
	}
	return pk, nil
}

func (pk PublicKey) String() string {
	return publicKeyPrefix + hex.EncodeToString(pk[:])
}

// MarshalText implements encoding.TextMarshaler.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PublicKey) UnmarshalText(b []byte) error {
	parsed, err := ParsePublicKey(string(b))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

// Hash256 is a 256-bit hash, canonically "h:<64 hex>". Alert ids use it.
type Hash256 [32]byte

const hashPrefix = "h:"

// ParseHash256 parses the canonical "h:<64 hex>" form.
func ParseHash256(s string) (Hash256, error) {
	var h Hash256
	rest, ok := strings.CutPrefix(s, hashPrefix)
	if !ok {
		return h, errs.Newf(errs.ErrKindInvalidData, "hash %q: unsupported prefix", s)
	}
	if err := decodeHex(h[:], rest); err != nil {
		return h, errs.Wrap(errs.ErrKindInvalidData, "hash "+s, err)
	}
	return h, nil
}

func (h Hash256) String() string {
	return hashPrefix + hex.EncodeToString(h[:])
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash256) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash256) UnmarshalText(b []byte) error {
	parsed, err := ParseHash256(string(b))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// FileContractID identifies a file contract, canonically "fcid:<64 hex>".
type FileContractID [32]byte

const fileContractIDPrefix = "fcid:"

// ParseFileContractID parses the canonical "fcid:<64 hex>" form.
func ParseFileContractID(s string) (FileContractID, error) {
	var fcid FileContractID
	rest, ok := strings.CutPrefix(s, fileContractIDPrefix)
	if !ok {
		return fcid, errs.Newf(errs.ErrKindInvalidData, "file contract id %q: unsupported prefix", s)
	}
	if err := decodeHex(fcid[:], rest); err != nil {
		return fcid, errs.Wrap(errs.ErrKindInvalidData, "file contract id "+s, err)
	}
	return fcid, nil
}

func (fcid FileContractID) String() string {
	return fileContractIDPrefix + hex.EncodeToString(fcid[:])
}

// MarshalText implements encoding.TextMarshaler.
func (fcid FileContractID) MarshalText() ([]byte, error) {
	return []byte(fcid.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (fcid *FileContractID) UnmarshalText(b []byte) error {
	parsed, err := ParseFileContractID(string(b))
	if err != nil {
		return err
	}
	*fcid = parsed
	return nil
}

// SettingsID identifies a price table, a bare 32-char hex string on the wire.
type SettingsID [16]byte

// ParseSettingsID parses the bare 32-char hex form.
func ParseSettingsID(s string) (SettingsID, error) {
	var sid SettingsID
	if err := decodeHex(sid[:], s); err != nil {
		return sid, errs.Wrap(errs.ErrKindInvalidData, "settings id "+s, err)
	}
	return sid, nil
}

func (sid SettingsID) String() string {
	return hex.EncodeToString(sid[:])
}

// MarshalText implements encoding.TextMarshaler.
func (sid SettingsID) MarshalText() ([]byte, error) {
	return []byte(sid.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (sid *SettingsID) UnmarshalText(b []byte) error {
	parsed, err := ParseSettingsID(string(b))
	if err != nil {
		return err
	}
	*sid = parsed
	return nil
}

// decodeHex fills dst from s, insisting on an exact length match.
func decodeHex(dst []byte, s string) error {
	if len(s) != hex.EncodedLen(len(dst)) {
		return errs.Newf(errs.ErrKindInvalidData, "expected %d hex chars, got %d", hex.EncodedLen(len(dst)), len(s))
	}
	_, err := hex.Decode(dst, []byte(s))
	return err
}
