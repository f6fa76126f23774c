// Package fixedstr provides Str, a UTF-8 string whose storage is a byte
// buffer of a length fixed at construction.
//
// Methods come in two families. Checked methods (SplitAt, Slice, FromBytes
// and friends) validate offsets and contents and either return an error or
// panic with a *BoundaryError naming the offending index. Unchecked and
// Unsafe methods (SliceUnchecked, FromBytesUnchecked, UnsafeBytesMut) do no
// validation; breaking their preconditions leaves the Str in a state where
// other methods have undefined results.
//
// Views returned by AsString, SplitAt, Slice and Get share the Str's
// buffer. Go cannot stop a mutable view from coexisting with them, so the
// caller must not read any view while bytes are being written through a
// MutView or UnsafeBytesMut.
package fixedstr
