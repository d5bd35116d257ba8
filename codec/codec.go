package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"runtime"
	"unsafe"

	"github.com/hupe1980/xvec"
	"github.com/hupe1980/xvec/internal/conv"
	"github.com/hupe1980/xvec/resource"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

func checksum(b []byte) uint32 {
	return crc32.Checksum(b, castagnoli)
}

func checkHost() error {
	if binary.NativeEndian.Uint16([]byte{1, 0}) != 1 {
		return ErrUnsupportedHost
	}
	return nil
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// asBytes views the memory of s as bytes. T must be pointer-free.
func asBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*elemSize[T]()) //nolint:gosec // trivial element types only
}

// Encode writes a snapshot of v to w.
func Encode[T any](w io.Writer, v *xvec.Vector[T], optFns ...Option) error {
	if err := checkHost(); err != nil {
		return err
	}
	if !v.PlainMemory() {
		return ErrNotTrivial
	}
	o := applyOptions(optFns)

	raw := asBytes(v.Data())
	if uint64(len(raw)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, len(raw))
	}

	payload, comp, err := compress(raw, o.compression)
	if err != nil {
		return fmt.Errorf("codec: compress: %w", err)
	}

	h := Header{
		Version:     Version,
		Compression: comp,
		ElemSize:    uint32(elemSize[T]()), //nolint:gosec // element sizes fit in uint32
		Count:       uint64(v.Len()),       //nolint:gosec // non-negative
		Capacity:    uint64(v.Cap()),       //nolint:gosec // non-negative
		RawLen:      uint32(len(raw)),      //nolint:gosec // checked above
		StoredLen:   uint32(len(payload)),  //nolint:gosec // never larger than raw
		Checksum:    checksum(raw),
	}

	if o.controller != nil {
		w = resource.NewRateLimitedWriter(o.ctx, w, o.controller)
	}

	var hdr [HeaderSize]byte
	h.Encode(hdr[:])
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("codec: write header: %w", err)
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return fmt.Errorf("codec: write payload: %w", err)
		}
	}
	runtime.KeepAlive(v)
	return nil
}

// Decode reads a snapshot from r into a new vector with the stored length
// and capacity. A snapshot of an unbacked vector (capacity 0) decodes to an
// empty vector with capacity 1, like New.
func Decode[T any](r io.Reader, optFns ...Option) (*xvec.Vector[T], error) {
	if err := checkHost(); err != nil {
		return nil, err
	}
	o := applyOptions(optFns)

	if o.controller != nil {
		r = resource.NewRateLimitedReader(o.ctx, r, o.controller)
	}

	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("codec: read header: %w", err)
	}
	h, err := DecodeHeader(hdr[:])
	if err != nil {
		return nil, err
	}

	size := elemSize[T]()
	if int64(h.ElemSize) != int64(size) {
		return nil, fmt.Errorf("%w: element size %d, want %d", ErrCorrupt, h.ElemSize, size)
	}
	count, err := conv.Uint64ToInt(h.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	capacity, err := conv.Uint64ToInt(h.Capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	rawLen, err := conv.MulInt(count, size)
	if err != nil || uint64(rawLen) != uint64(h.RawLen) {
		return nil, fmt.Errorf("%w: payload of %d bytes for %d elements", ErrCorrupt, h.RawLen, count)
	}
	if capBytes, err := conv.MulInt(capacity, size); err != nil || uint64(capBytes) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: capacity %d", ErrTooLarge, capacity)
	}

	vopts := o.vectorOpts
	if o.controller != nil {
		vopts = append([]xvec.Option{xvec.WithMemoryController(o.controller)}, vopts...)
	}
	v, err := xvec.New[T](vopts...)
	if err != nil {
		return nil, err
	}
	if !v.PlainMemory() {
		v.Free()
		return nil, ErrNotTrivial
	}

	if err := fill(v, r, h, capacity, count); err != nil {
		v.Free()
		return nil, err
	}
	return v, nil
}

func fill[T any](v *xvec.Vector[T], r io.Reader, h *Header, capacity, count int) error {
	if err := v.Reserve(capacity); err != nil {
		return err
	}
	var zero T
	if err := v.Resize(count, zero); err != nil {
		return err
	}

	dst := asBytes(v.Data())
	if h.Compression == None {
		if _, err := io.ReadFull(r, dst); err != nil {
			return fmt.Errorf("codec: read payload: %w", err)
		}
	} else {
		stored := make([]byte, h.StoredLen)
		if _, err := io.ReadFull(r, stored); err != nil {
			return fmt.Errorf("codec: read payload: %w", err)
		}
		if err := decompress(dst, stored, h.Compression); err != nil {
			return err
		}
	}

	if got := checksum(dst); got != h.Checksum {
		return fmt.Errorf("%w: checksum %08x, want %08x", ErrCorrupt, got, h.Checksum)
	}
	runtime.KeepAlive(v)
	return nil
}

// Marshal returns a snapshot of v.
func Marshal[T any](v *xvec.Vector[T], optFns ...Option) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + v.Len()*elemSize[T]())
	if err := Encode(&buf, v, optFns...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a snapshot produced by Marshal or Encode.
func Unmarshal[T any](data []byte, optFns ...Option) (*xvec.Vector[T], error) {
	return Decode[T](bytes.NewReader(data), optFns...)
}
