package recordstore

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
)

// Magic and Version identify a record stream.
const (
	Magic   = "FEASTREC"
	Version = 1
)

// maxPrealloc caps the capacity reserved from a header count, so a corrupt
// count cannot force a huge allocation before decoding fails.
const maxPrealloc = 1024

// ErrCorrupt is returned (wrapped) when a stream exists but cannot be decoded.
var ErrCorrupt = errors.New("recordstore: corrupt record stream")

type header struct {
	Magic   string `bson:"magic"`
	Version int32  `bson:"version"`
	Kind    string `bson:"kind"`
	Count   int64  `bson:"count"`
}

// Encode renders records as a header document followed by one BSON document
// per record.
func Encode[T any](kind string, records []T) ([]byte, error) {
	var buf bytes.Buffer

	h, err := bson.Marshal(header{Magic: Magic, Version: Version, Kind: kind, Count: int64(len(records))})
	if err != nil {
		return nil, fmt.Errorf("recordstore: encode header: %w", err)
	}
	buf.Write(h)

	for i, rec := range records {
		doc, err := bson.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("recordstore: encode %s record %d: %w", kind, i, err)
		}
		buf.Write(doc)
	}
	return buf.Bytes(), nil
}

// Decode reads a stream written by Encode for the same kind. A zero-length
// stream decodes to no records. Format problems wrap ErrCorrupt; other read
// errors are returned as-is.
func Decode[T any](kind string, r io.Reader) ([]T, error) {
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return []T{}, nil
		}
		return nil, err
	}

	var h header
	if err := readDoc(br, &h); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	switch {
	case h.Magic != Magic:
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, h.Magic)
	case h.Version != Version:
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, h.Version)
	case h.Kind != kind:
		return nil, fmt.Errorf("%w: stream holds %q records, want %q", ErrCorrupt, h.Kind, kind)
	case h.Count < 0:
		return nil, fmt.Errorf("%w: negative record count", ErrCorrupt)
	}

	out := make([]T, 0, min(h.Count, maxPrealloc))
	for i := int64(0); i < h.Count; i++ {
		var rec T
		if err := readDoc(br, &rec); err != nil {
			return nil, fmt.Errorf("record %d of %d: %w", i+1, h.Count, err)
		}
		out = append(out, rec)
	}

	if _, err := br.Peek(1); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: trailing data after %d records", ErrCorrupt, h.Count)
	}
	return out, nil
}

// maxDocSize is the BSON document size limit MongoDB itself enforces.
const maxDocSize = 16 << 20

func readDoc(r io.Reader, v interface{}) error {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return framing(err)
	}
	size := int32(binary.LittleEndian.Uint32(lenBuf[:]))
	if size < 5 || size > maxDocSize {
		return fmt.Errorf("%w: document length %d out of range", ErrCorrupt, size)
	}

	doc := make([]byte, size)
	copy(doc, lenBuf[:])
	if _, err := io.ReadFull(r, doc[4:]); err != nil {
		return framing(err)
	}

	raw := bson.Raw(doc)
	if err := raw.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := bson.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}

// framing turns a short read into ErrCorrupt and passes I/O errors through.
func framing(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated document", ErrCorrupt)
	}
	return err
}
