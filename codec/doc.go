// Package codec writes and reads binary snapshots of xvec vectors.
//
// Only trivial vectors can be snapshotted: element types without lifecycle
// hooks and without Go pointers, whose storage is plain memory. The payload
// is the raw element memory in host byte order; the header is little endian.
//
// # Format
//
//	magic "XVEC"  [4]byte
//	version       u8
//	compression   u8     (0 none, 1 LZ4, 2 ZSTD)
//	elemSize      u32
//	count         u64
//	capacity      u64
//	rawLen        u32    uncompressed payload size
//	storedLen     u32    payload size on the wire
//	checksum      u32    CRC32C of the uncompressed payload
//	payload       [storedLen]byte
//
// When compression does not shrink the payload by at least 10% it is stored
// uncompressed and the header records compression 0.
//
// # Usage
//
//	var buf bytes.Buffer
//	err := codec.Encode(&buf, v, codec.WithCompression(codec.LZ4))
//	...
//	w, err := codec.Decode[float32](&buf)
package codec
