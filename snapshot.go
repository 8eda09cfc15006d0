package markbook

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hupe1980/markbook/codec"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// snapshotMagic leads every snapshot blob. The header line is
//
//	MBK1 <codec-name> <compression-name>\n
//
// followed by the (possibly compressed) transport payload. Storing both
// names makes snapshots self-describing: a blob written with one codec or
// compression is decoded by selecting the same one on load.
const snapshotMagic = "MBK1"

// Compression selects how snapshot payloads are compressed at rest.
type Compression int

const (
	// CompressionNone stores the transport bytes as-is.
	CompressionNone Compression = iota
	// CompressionZstd compresses with zstandard (good ratio, fast decode).
	CompressionZstd
	// CompressionLZ4 compresses with lz4 (fastest, lighter ratio).
	CompressionLZ4
)

// Name returns the stable name recorded in snapshot headers.
func (c Compression) Name() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// CompressionByName returns a compression by its stable name.
func CompressionByName(name string) (Compression, bool) {
	switch name {
	case "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (c Compression) compress(data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		out := enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return out, nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("failed to lz4-compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c.Name())
	}
}

func (c Compression) decompress(data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c.Name())
	}
}

// EncodeSnapshot frames the book's transport bytes with a self-describing
// header. If c is nil, codec.Default is used.
func EncodeSnapshot(b *Book, c codec.Codec, comp Compression) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	payload, err := b.MarshalTransport(c)
	if err != nil {
		return nil, err
	}
	payload, err = comp.compress(payload)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s %s\n", snapshotMagic, c.Name(), comp.Name())
	buf.Write(payload)
	return buf.Bytes(), nil
}

// DecodeSnapshot parses a snapshot blob back into a Book, selecting codec
// and compression from the header. Malformed framing or unknown names
// yield a *SnapshotFormatError; a payload that decompresses but does not
// decode yields a *DeserializationError.
func DecodeSnapshot(data []byte) (*Book, error) {
	nl := bytes.IndexByte(data, '\n')
	if nl < 0 {
		return nil, &SnapshotFormatError{Detail: "missing header line"}
	}
	fields := bytes.Fields(data[:nl])
	if len(fields) != 3 || string(fields[0]) != snapshotMagic {
		return nil, &SnapshotFormatError{Detail: "invalid header magic"}
	}

	c, ok := codec.ByName(string(fields[1]))
	if !ok {
		return nil, &SnapshotFormatError{Detail: fmt.Sprintf("unknown codec %q", fields[1])}
	}
	comp, ok := CompressionByName(string(fields[2]))
	if !ok {
		return nil, &SnapshotFormatError{Detail: fmt.Sprintf("unknown compression %q", fields[2])}
	}

	payload, err := comp.decompress(data[nl+1:])
	if err != nil {
		return nil, &SnapshotFormatError{Detail: "corrupt payload", cause: err}
	}
	return UnmarshalTransport(c, payload)
}
