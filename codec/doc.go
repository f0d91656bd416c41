// Package codec provides the opaque compression entry points used by the
// SGV0 compressed sequence format.
//
// What:
//
//   - Type enumerates the supported codecs: None (passthrough), ZLIB, GZIP.
//     The numeric values are stable; they are written into the SGV0 header.
//   - Compress turns (type, level) and a byte payload into a compressed blob.
//   - Decompress inverts it when told the expected output length up front,
//     which is how the SGV0 stream records vectors.
//
// Why:
//
//	Callers treat compression as a (type, level) → bytes contract. Every
//	other concern, including stream framing, lives with the caller.
//
// Errors:
//
//   - ErrUnknownType: the type byte does not name a codec.
//   - ErrCorrupt: the payload is not a valid stream for the type, or it
//     decodes to fewer bytes than promised.
//   - ErrBufferTooSmall: the payload decodes to more bytes than promised.
package codec
