// Package keyindex maps ordered names (column or row titles) to positions
// and back.
//
// An Index keeps names in insertion order. Duplicate names are allowed:
// position→name lookup sees every entry, while name→position lookup resolves
// to the most recent insertion (earlier duplicates become unreachable by name).
//
// Independently of the declared names, an Index tracks an effective size:
// the highest position ever written through NotifyPositionalWrite, plus one.
// It only grows and may exceed Len when values are written to positions that
// were never given a name ("implicit" positions).
//
// Errors:
//
//   - ErrKeyNotFound: name lookup for an unknown name.
//   - ErrOutOfRange:  position lookup outside [0, Len()).
package keyindex
