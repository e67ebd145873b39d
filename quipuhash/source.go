package quipuhash

import (
	"io"
)

// MessageSource is the pull-style byte reader every digest consumes. It is
// single-pass: a caller that needs to hash the same message twice must
// construct a fresh source. Length is advisory; digests must not rely on it
// being known.
type MessageSource interface {
	io.Reader

	// Length returns the total message length in bytes when it is known
	// up-front, e.g. when the source wraps a byte slice.
	Length() (uint64, bool)
}

// SliceSource adapts an in-memory byte slice to a MessageSource using an
// internal cursor.
type SliceSource struct {
	data   []byte
	cursor int
}

func NewSliceSource(data []byte) *SliceSource {
	return &SliceSource{data: data}
}

func (ss *SliceSource) Read(dst []byte) (int, error) {
	if ss.cursor >= len(ss.data) {
		return 0, io.EOF
	}
	numCopied := copy(dst, ss.data[ss.cursor:])
	ss.cursor += numCopied
	return numCopied, nil
}

func (ss *SliceSource) Length() (uint64, bool) {
	return uint64(len(ss.data)), true
}

// StreamSource adapts an io.Reader to a MessageSource. The caller remains
// responsible for closing the underlying reader if it owns one.
type StreamSource struct {
	reader      io.Reader
	totalLength uint64
	hasLength   bool
}

func NewStreamSource(reader io.Reader) *StreamSource {
	return &StreamSource{reader: reader}
}

// NewStreamSourceWithLength is like NewStreamSource for readers whose total
// size is known up-front, e.g. a file with a stat'ed size.
func NewStreamSourceWithLength(reader io.Reader, length uint64) *StreamSource {
	return &StreamSource{reader: reader, totalLength: length, hasLength: true}
}

func (ss *StreamSource) Read(dst []byte) (int, error) {
	return ss.reader.Read(dst)
}

func (ss *StreamSource) Length() (uint64, bool) {
	return ss.totalLength, ss.hasLength
}

// readFull reads exactly len(dst) bytes from src unless EOF intervenes. EOF
// is not reported as an error: it shows only as a count short of len(dst)
// (zero when nothing remains), which is the contract the block loops in this
// package are written against. Any other read error is returned as is.
func readFull(src MessageSource, dst []byte) (int, error) {
	totalRead := 0
	for totalRead < len(dst) {
		numRead, err := src.Read(dst[totalRead:])
		totalRead += numRead
		if err == io.EOF {
			return totalRead, nil
		}
		if err != nil {
			return totalRead, err
		}
		if numRead == 0 {
			return totalRead, nil
		}
	}
	return totalRead, nil
}
