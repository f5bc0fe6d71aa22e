package rtasm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/xyproto/env/v2"
)

// VerboseMode echoes every encoded instruction and its bytes to TraceOutput.
var VerboseMode = env.Bool("RTASM_VERBOSE")

// TraceOutput receives the VerboseMode trace.
var TraceOutput io.Writer = os.Stderr

// Writer is the code sink an Out emits into.
type Writer interface {
	Write(b byte) int
	WriteBytes(bs []byte) int
	WriteWord(w uint32) int
	Len() int
	Patch(offset int, bs []byte)
}

// Buffer is the default Writer. Instruction words are stored in the configured
// byte order; single bytes are stored as given.
type Buffer struct {
	buf       bytes.Buffer
	order     binary.ByteOrder
	committed bool
}

// NewBuffer creates an empty Buffer storing words in order.
func NewBuffer(order binary.ByteOrder) *Buffer {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Buffer{order: order}
}

func (b *Buffer) Write(v byte) int {
	b.mustOpen()
	b.buf.WriteByte(v)
	if VerboseMode {
		fmt.Fprintf(TraceOutput, " %02x", v)
	}
	return 1
}

func (b *Buffer) WriteBytes(bs []byte) int {
	b.mustOpen()
	b.buf.Write(bs)
	if VerboseMode {
		for _, v := range bs {
			fmt.Fprintf(TraceOutput, " %02x", v)
		}
	}
	return len(bs)
}

// WriteWord appends a 32-bit instruction word in the buffer's byte order.
func (b *Buffer) WriteWord(w uint32) int {
	b.mustOpen()
	var tmp [4]byte
	b.order.PutUint32(tmp[:], w)
	b.buf.Write(tmp[:])
	if VerboseMode {
		fmt.Fprintf(TraceOutput, " %08x", w)
	}
	return 4
}

func (b *Buffer) Len() int { return b.buf.Len() }

// Patch overwrites already emitted bytes, used by label fixups.
func (b *Buffer) Patch(offset int, bs []byte) {
	copy(b.buf.Bytes()[offset:offset+len(bs)], bs)
}

// Bytes returns the emitted code.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// Order returns the word byte order.
func (b *Buffer) Order() binary.ByteOrder { return b.order }

// Commit marks the buffer as complete; later writes panic.
func (b *Buffer) Commit() {
	if VerboseMode {
		fmt.Fprintf(TraceOutput, "buffer: committed with %d bytes\n", b.buf.Len())
	}
	b.committed = true
}

// Reset clears the buffer and reopens it.
func (b *Buffer) Reset() {
	b.buf.Reset()
	b.committed = false
}

func (b *Buffer) mustOpen() {
	if b.committed {
		panic("rtasm: write to committed buffer")
	}
}

