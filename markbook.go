package markbook

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/markbook/codec"
	"github.com/hupe1980/markbook/fuzzy"
)

// RecordID is the persistent identifier of a record. It is minted from a
// monotonically increasing counter the first time marks are written to a
// record and never changes or gets reused afterwards.
type RecordID uint32

// NullRecordID marks a record that has never had marks assigned.
const NullRecordID RecordID = 0

const firstRecordID RecordID = 1

// Marks is the ordered sequence of item marks of one record.
type Marks []uint32

// Sum returns the total of all item marks.
func (m Marks) Sum() uint32 {
	var sum uint32
	for _, v := range m {
		sum += v
	}
	return sum
}

// String renders the marks as a comma-separated list, e.g. "[1, 2, 3]".
func (m Marks) String() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Record is one student row of a Book.
type Record struct {
	ID      RecordID `json:"id,omitempty"`
	Student string   `json:"student"`
	Marks   Marks    `json:"marks"`
}

// Book is an ordered container of student marks records.
//
// Order is significant: the record at index 0 is the implicit target of
// SetMarksAtTop, and SortWith reorders the sequence so the best fuzzy
// match for a query ends up there. Order carries no identity of its own.
//
// Book is a plain mutable value with no internal locking. When embedded
// in a concurrent host, treat it as a single resource requiring exclusive
// access for the duration of any operation.
type Book struct {
	nextRecordID RecordID
	records      []Record
}

// New creates an empty Book.
func New() *Book {
	return &Book{nextRecordID: firstRecordID}
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.records) }

// IsEmpty reports whether the book has no records.
func (b *Book) IsEmpty() bool { return len(b.records) == 0 }

// Records returns a copy of the record sequence in current order.
func (b *Book) Records() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// Top returns the record at index 0, or false if the book is empty.
func (b *Book) Top() (Record, bool) {
	if len(b.records) == 0 {
		return Record{}, false
	}
	return b.records[0], true
}

// AddStudent appends a new record with no identifier and empty marks.
func (b *Book) AddStudent(student string) {
	b.records = append(b.records, Record{ID: NullRecordID, Student: student})
}

// SetMarksAtTop replaces the marks of the record at index 0. If that
// record has no identifier yet, the next counter value is assigned and the
// counter advances; repeated calls on the same top record overwrite the
// marks but keep the identifier.
//
// Returns ErrEmptyBook if the book holds no records; the book is left
// unchanged in that case.
func (b *Book) SetMarksAtTop(marks Marks) error {
	if len(b.records) == 0 {
		return ErrEmptyBook
	}
	top := &b.records[0]
	top.Marks = slices.Clone(marks)
	if top.ID == NullRecordID {
		top.ID = b.nextRecordID
		b.nextRecordID++
	}
	return nil
}

// SortWith reorders the records by descending fuzzy similarity between
// each student name and the query. Equally scored records keep their
// prior relative order, but tie order is not part of the contract.
func (b *Book) SortWith(query string) {
	scores := make([]float32, len(b.records))
	order := make([]int, len(b.records))
	for i, r := range b.records {
		scores[i] = fuzzy.Score(r.Student, query)
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return cmp.Compare(scores[j], scores[i])
	})

	sorted := make([]Record, len(b.records))
	for pos, i := range order {
		sorted[pos] = b.records[i]
	}
	b.records = sorted
}

// Clear discards all records. The identifier counter is kept, so
// identifiers minted after a clear never collide with exported ones.
func (b *Book) Clear() {
	b.records = nil
}

// bookTransport is the lossless wire shape of a Book.
type bookTransport struct {
	NextRecordID RecordID `json:"next_record_id"`
	Records      []Record `json:"records"`
}

// MarshalTransport serializes the full book, identifier counter included,
// with the given codec. If c is nil, codec.Default is used.
func (b *Book) MarshalTransport(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	records := b.records
	if records == nil {
		records = []Record{}
	}
	data, err := c.Marshal(bookTransport{
		NextRecordID: b.nextRecordID,
		Records:      records,
	})
	if err != nil {
		return nil, fmt.Errorf("failed serialization: %w", err)
	}
	return data, nil
}

// UnmarshalTransport parses transport-format bytes back into a Book.
// Malformed input yields a *DeserializationError carrying the offending
// text and the underlying cause.
func UnmarshalTransport(c codec.Codec, data []byte) (*Book, error) {
	if c == nil {
		c = codec.Default
	}
	var t bookTransport
	if err := c.Unmarshal(data, &t); err != nil {
		return nil, &DeserializationError{Input: string(data), cause: err}
	}
	if t.NextRecordID == NullRecordID {
		t.NextRecordID = firstRecordID
	}
	return &Book{nextRecordID: t.NextRecordID, records: t.Records}, nil
}

// ExportString renders the book as a tab-separated table for spreadsheet
// consumption: a header line, then one line per record in current order
// with identifier (blank when unassigned), student name, marks total and
// the individual item marks. This view is lossy; use MarshalTransport for
// round-trip persistence.
func (b *Book) ExportString() string {
	var sb strings.Builder
	sb.WriteString("Record Id\tStudent Id\tTotal Marks\tItem Marks\n")
	for _, r := range b.records {
		if r.ID != NullRecordID {
			sb.WriteString(strconv.FormatUint(uint64(r.ID), 10))
		}
		sb.WriteByte('\t')
		sb.WriteString(r.Student)
		sb.WriteByte('\t')
		sb.WriteString(strconv.FormatUint(uint64(r.Marks.Sum()), 10))
		sb.WriteByte('\t')
		for i, m := range r.Marks {
			if i > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.FormatUint(uint64(m), 10))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders a fixed-width presentation view of the book. It is
// computed fresh on every call and is not part of the persisted model.
func (b *Book) String() string {
	var sb strings.Builder
	for _, r := range b.records {
		if r.ID == NullRecordID {
			sb.WriteString("    ")
		} else {
			fmt.Fprintf(&sb, "%-4d", r.ID)
		}
		fmt.Fprintf(&sb, "%-24.24s", r.Student)
		if len(r.Marks) > 0 {
			fmt.Fprintf(&sb, " %10d = %s", r.Marks.Sum(), r.Marks)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
