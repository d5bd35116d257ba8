package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// Magic identifies a vector snapshot.
	Magic = "XVEC"
	// Version is the current format version.
	Version = 1

	// HeaderSize is the size of the encoded header in bytes.
	HeaderSize = 4 + 1 + 1 + 4 + 8 + 8 + 4 + 4 + 4
)

var (
	// ErrCorrupt is returned when a snapshot fails validation.
	ErrCorrupt = errors.New("codec: corrupt snapshot")
	// ErrUnsupportedVersion is returned for snapshots written by a newer format.
	ErrUnsupportedVersion = errors.New("codec: unsupported version")
	// ErrNotTrivial is returned for element types with lifecycle hooks or Go pointers.
	ErrNotTrivial = errors.New("codec: element type is not trivially copyable")
	// ErrTooLarge is returned when a payload exceeds the 4 GiB format limit.
	ErrTooLarge = errors.New("codec: payload too large")
	// ErrUnsupportedHost is returned on big-endian hosts.
	ErrUnsupportedHost = errors.New("codec: host byte order is not little endian")
)

// Header describes a snapshot.
type Header struct {
	Version     uint8
	Compression Compression
	ElemSize    uint32
	Count       uint64
	Capacity    uint64
	RawLen      uint32
	StoredLen   uint32
	Checksum    uint32
}

// Encode serializes the header into buf, which must hold HeaderSize bytes.
func (h *Header) Encode(buf []byte) {
	copy(buf[0:4], Magic)
	buf[4] = h.Version
	buf[5] = uint8(h.Compression)
	binary.LittleEndian.PutUint32(buf[6:], h.ElemSize)
	binary.LittleEndian.PutUint64(buf[10:], h.Count)
	binary.LittleEndian.PutUint64(buf[18:], h.Capacity)
	binary.LittleEndian.PutUint32(buf[26:], h.RawLen)
	binary.LittleEndian.PutUint32(buf[30:], h.StoredLen)
	binary.LittleEndian.PutUint32(buf[34:], h.Checksum)
}

// DecodeHeader parses and validates a header. It checks the fields that do
// not depend on the element type.
func DecodeHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: header too small", ErrCorrupt)
	}
	if string(buf[0:4]) != Magic {
		return nil, fmt.Errorf("%w: invalid magic %q", ErrCorrupt, buf[0:4])
	}

	h := &Header{
		Version:     buf[4],
		Compression: Compression(buf[5]),
		ElemSize:    binary.LittleEndian.Uint32(buf[6:]),
		Count:       binary.LittleEndian.Uint64(buf[10:]),
		Capacity:    binary.LittleEndian.Uint64(buf[18:]),
		RawLen:      binary.LittleEndian.Uint32(buf[26:]),
		StoredLen:   binary.LittleEndian.Uint32(buf[30:]),
		Checksum:    binary.LittleEndian.Uint32(buf[34:]),
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	switch h.Compression {
	case None:
		if h.StoredLen != h.RawLen {
			return nil, fmt.Errorf("%w: stored %d bytes for %d raw", ErrCorrupt, h.StoredLen, h.RawLen)
		}
	case LZ4, ZSTD:
		if h.StoredLen >= h.RawLen {
			return nil, fmt.Errorf("%w: compressed payload not smaller than raw", ErrCorrupt)
		}
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrCorrupt, h.Compression)
	}

	if h.Capacity == 0 {
		if h.Count != 0 {
			return nil, fmt.Errorf("%w: %d elements without capacity", ErrCorrupt, h.Count)
		}
	} else if h.Capacity&(h.Capacity-1) != 0 || h.Capacity < h.Count {
		return nil, fmt.Errorf("%w: capacity %d for %d elements", ErrCorrupt, h.Capacity, h.Count)
	}
	return h, nil
}
