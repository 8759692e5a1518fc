// Package wire implements the framing of strings and arbitrary-precision
// integers used by the binary encoding of money values.
//
// A string is an 8-byte big-endian byte count followed by the bytes.
// An integer that fits in 32 bits is a 0 tag byte followed by the value as a
// big-endian two's complement int32. Any other integer is a 1 tag byte, a sign
// byte (1 for positive, 0xFF for negative), an 8-byte big-endian byte count
// and the magnitude in little-endian byte order.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	ErrTruncated = errors.New("unexpected end of data")
	ErrTrailing  = errors.New("unexpected trailing data")
	ErrMalformed = errors.New("malformed data")
)

const (
	tagSmall = 0
	tagLarge = 1
)

var (
	minSmall = big.NewInt(math.MinInt32)
	maxSmall = big.NewInt(math.MaxInt32)
)

// AppendString appends the framed string s to data.
func AppendString(data []byte, s string) []byte {
	data = binary.BigEndian.AppendUint64(data, uint64(len(s)))
	return append(data, s...)
}

// AppendInt appends the framed integer i to data.
// A nil integer is encoded as 0.
func AppendInt(data []byte, i *big.Int) []byte {
	if i == nil {
		i = new(big.Int)
	}
	if i.Cmp(minSmall) >= 0 && i.Cmp(maxSmall) <= 0 {
		data = append(data, tagSmall)
		return binary.BigEndian.AppendUint32(data, uint32(int32(i.Int64()))) //nolint:gosec
	}
	data = append(data, tagLarge)
	if i.Sign() < 0 {
		data = append(data, 0xFF)
	} else {
		data = append(data, 1)
	}
	mag := i.Bytes() // big-endian
	data = binary.BigEndian.AppendUint64(data, uint64(len(mag)))
	for k := len(mag) - 1; k >= 0; k-- {
		data = append(data, mag[k])
	}
	return data
}

// Reader consumes framed values from a byte slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) take(n uint64) ([]byte, error) {
	if n > uint64(len(r.data)-r.pos) {
		return nil, fmt.Errorf("reading %v bytes at offset %v: %w", n, r.pos, ErrTruncated)
	}
	b := r.data[r.pos : r.pos+int(n)] //nolint:gosec
	r.pos += int(n)                   //nolint:gosec
	return b, nil
}

func (r *Reader) uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// String reads a framed string.
func (r *Reader) String() (string, error) {
	n, err := r.uint64()
	if err != nil {
		return "", err
	}
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Int reads a framed integer.
func (r *Reader) Int() (*big.Int, error) {
	tag, err := r.take(1)
	if err != nil {
		return nil, err
	}
	switch tag[0] {
	case tagSmall:
		b, err := r.take(4)
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(int32(binary.BigEndian.Uint32(b)))), nil //nolint:gosec
	case tagLarge:
		sign, err := r.take(1)
		if err != nil {
			return nil, err
		}
		if sign[0] != 1 && sign[0] != 0xFF {
			return nil, fmt.Errorf("sign byte %#x at offset %v: %w", sign[0], r.pos-1, ErrMalformed)
		}
		n, err := r.uint64()
		if err != nil {
			return nil, err
		}
		le, err := r.take(n)
		if err != nil {
			return nil, err
		}
		be := make([]byte, len(le))
		for k := range le {
			be[len(le)-1-k] = le[k]
		}
		i := new(big.Int).SetBytes(be)
		if sign[0] == 0xFF {
			i.Neg(i)
		}
		return i, nil
	default:
		return nil, fmt.Errorf("integer tag %#x at offset %v: %w", tag[0], r.pos-1, ErrMalformed)
	}
}

// Close returns an error if any data is left unread.
func (r *Reader) Close() error {
	if r.pos != len(r.data) {
		return fmt.Errorf("%v bytes left at offset %v: %w", len(r.data)-r.pos, r.pos, ErrTrailing)
	}
	return nil
}
