package model

// Record is implemented by the four top level record types.
type Record interface {
	RecordID() uint32
	RecordKind() Kind
	String() string
}

var (
	_ Record = (*Artist)(nil)
	_ Record = (*Label)(nil)
	_ Record = (*Master)(nil)
	_ Record = (*Release)(nil)
)

// Ptr returns a pointer to v; handy for building expected records.
func Ptr[T any](v T) *T { return &v }

// Deref returns the value p points to, or the zero value if p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
