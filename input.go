package json

// Input presents a JSON document as a contiguous, read-only byte range.
// Implementations are either an owning memory-mapped file (MmapInput) or a
// non-owning borrowed buffer (BufferInput); both satisfy this interface so
// the parser never has to care which one it was handed.
type Input interface {
	// Bytes returns the full document. The returned slice must not be
	// mutated or retained past Close.
	Bytes() []byte
	// Len returns len(Bytes()).
	Len() int
	// Close releases any resources (file descriptor, mapping). It is a
	// no-op for borrowed buffers and safe to call more than once.
	Close() error
}

// BufferInput wraps a caller-owned byte slice. The caller guarantees the
// bytes outlive any parse using this Input.
type BufferInput struct {
	data []byte
}

// NewBufferInput returns an Input backed by b without copying it.
func NewBufferInput(b []byte) *BufferInput {
	return &BufferInput{data: b}
}

func (b *BufferInput) Bytes() []byte { return b.data }
func (b *BufferInput) Len() int      { return len(b.data) }
func (b *BufferInput) Close() error  { return nil }
