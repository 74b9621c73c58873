package json

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// pageStride is used to eagerly touch every page of a mapping right after
// it is established. mmap-go has no portable MAP_POPULATE equivalent, so
// OpenMmap simulates prefaulting by reading one byte per page on
// platforms that support eager fault-in; this is best-effort and
// harmless where the OS already faults pages in on mmap.
const pageStride = 4096

// MmapInput is a read-only memory-mapped file. Construction opens the
// file, stats it for size, and maps the whole thing; if stat or mmap fails
// after open succeeded, OpenMmap closes the descriptor itself before
// returning the error. Close unmaps and closes the descriptor.
type MmapInput struct {
	file *os.File
	m    mmap.MMap
	path string
}

// OpenMmap maps path read-only. An empty file maps to a zero-length
// MmapInput without calling into the mmap syscall, since POSIX mmap (and
// mmap-go) reject zero-length mappings.
func OpenMmap(path string) (*MmapInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Kind: KindIO, Msg: fmt.Sprintf("open %s: %v", path, err)}
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &ParseError{Kind: KindIO, Msg: fmt.Sprintf("stat %s: %v", path, err)}
	}

	in := &MmapInput{file: f, path: path}

	if fi.Size() == 0 {
		return in, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, &ParseError{Kind: KindIO, Msg: fmt.Sprintf("mmap %s: %v", path, err)}
	}
	in.m = m
	touchPages(m)

	return in, nil
}

func touchPages(b []byte) {
	var sink byte
	for i := 0; i < len(b); i += pageStride {
		sink += b[i]
	}
	_ = sink
}

// Bytes returns the mapped region. It is empty (not nil-panicking) for a
// zero-length file.
func (in *MmapInput) Bytes() []byte {
	if in.m == nil {
		return nil
	}
	return in.m
}

// Len returns the mapped file's size in bytes.
func (in *MmapInput) Len() int { return len(in.Bytes()) }

// Close unmaps the region, if any, and closes the file descriptor. It is
// safe to call more than once.
func (in *MmapInput) Close() error {
	var unmapErr error
	if in.m != nil {
		unmapErr = in.m.Unmap()
		in.m = nil
	}
	var closeErr error
	if in.file != nil {
		closeErr = in.file.Close()
		in.file = nil
	}
	if unmapErr != nil {
		return &ParseError{Kind: KindIO, Msg: fmt.Sprintf("munmap %s: %v", in.path, unmapErr)}
	}
	if closeErr != nil {
		return &ParseError{Kind: KindIO, Msg: fmt.Sprintf("close %s: %v", in.path, closeErr)}
	}
	return nil
}
