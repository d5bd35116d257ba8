package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression algorithm.
type Compression uint8

const (
	// None stores the payload as is.
	None Compression = 0
	// LZ4 uses LZ4 block compression (fast, good for hot data).
	LZ4 Compression = 1
	// ZSTD uses ZSTD compression (better ratio, good for cold data).
	ZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// compress returns the payload to store and the algorithm that produced it.
// It falls back to None when compression saves less than 10%.
func compress(raw []byte, c Compression) ([]byte, Compression, error) {
	if c == None || len(raw) == 0 {
		return raw, None, nil
	}

	var out []byte
	switch c {
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, None, err
		}
		out = buf[:n] // n == 0 means incompressible
	case ZSTD:
		enc := getZstdEncoder()
		out = enc.EncodeAll(raw, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, None, fmt.Errorf("codec: unknown compression %d", c)
	}

	if len(out) == 0 || float64(len(out)) > float64(len(raw))*0.9 {
		return raw, None, nil
	}
	return out, c, nil
}

// decompress expands stored into dst, which has exactly the raw size.
func decompress(dst, stored []byte, c Compression) error {
	switch c {
	case LZ4:
		n, err := lz4.UncompressBlock(stored, dst)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if n != len(dst) {
			return fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return nil

	case ZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(stored, dst[:0])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if len(decoded) != len(dst) {
			return fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		if len(dst) > 0 && &decoded[0] != &dst[0] {
			copy(dst, decoded)
		}
		return nil

	default:
		return errors.New("codec: payload is not compressed")
	}
}
