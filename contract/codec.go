package contract

import (
	"bytes"
	"encoding/binary"
	"errors"

	"buymeacoffee/sdk"
)

// Binary codec for stored records. Donations are written once and read often,
// so the encoding is a plain field sequence with varint lengths.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount scaling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

var errTruncated = errors.New("record truncated")

type binReader struct {
	data []byte
	off  int
}

func newReader(data []byte) *binReader { return &binReader{data: data} }

func (r *binReader) readUint64() (uint64, error) {
	if r.off+8 > len(r.data) {
		return 0, errTruncated
	}
	v := binary.BigEndian.Uint64(r.data[r.off:])
	r.off += 8
	return v, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *binReader) readVarUint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.off:])
	if n <= 0 {
		return 0, errTruncated
	}
	r.off += n
	return v, nil
}

func (r *binReader) readAmount() (Amount, error) {
	v, err := r.readInt64()
	return Amount(v), err
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.off+int(n) > len(r.data) {
		return "", errTruncated
	}
	s := string(r.data[r.off : r.off+int(n)])
	r.off += int(n)
	return s, nil
}

// encodeSaleRecord packs a donation for kv storage.
func encodeSaleRecord(rec *SaleRecord) string {
	w := newWriter()
	w.writeInt64(rec.Timestamp)
	w.writeString(rec.From.String())
	w.writeString(rec.To.String())
	w.writeAmount(rec.Value)
	w.writeString(rec.Name)
	w.writeString(rec.Message)
	return string(w.bytes())
}

// decodeSaleRecord is the storage counterpart of encodeSaleRecord.
func decodeSaleRecord(data string) (*SaleRecord, error) {
	r := newReader([]byte(data))
	rec := &SaleRecord{}
	var err error
	if rec.Timestamp, err = r.readInt64(); err != nil {
		return nil, err
	}
	var from, to string
	if from, err = r.readString(); err != nil {
		return nil, err
	}
	if to, err = r.readString(); err != nil {
		return nil, err
	}
	rec.From = sdk.Address(from)
	rec.To = sdk.Address(to)
	if rec.Value, err = r.readAmount(); err != nil {
		return nil, err
	}
	if rec.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if rec.Message, err = r.readString(); err != nil {
		return nil, err
	}
	return rec, nil
}
