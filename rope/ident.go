package rope

// ID identifies one character of one Buffer. Zero is never assigned.
type ID uint64

// Source hands out identities. The zero value is ready to use.
//
// A Source belongs to a single pass; identities from different sources are
// not comparable.
type Source struct {
	next ID
}

// Buffer wraps text in a new Buffer and reserves one ID per byte of it.
func (s *Source) Buffer(text string) Buffer {
	if s.next == 0 {
		s.next = 1
	}
	b := Buffer{text: text, base: s.next}
	s.next += ID(len(text))
	return b
}

// Rope returns a single-fragment rope over a new Buffer holding text.
func (s *Source) Rope(text string) Rope {
	b := s.Buffer(text)
	return From(&b)
}

// Buffer is immutable text with a reserved run of identities.
type Buffer struct {
	text string
	base ID
}

func (b *Buffer) Text() string { return b.text }

func (b *Buffer) Len() int { return len(b.text) }

// Base returns the identity of the byte at offset 0.
func (b *Buffer) Base() ID { return b.base }

// IDAt returns the identity of the character starting at byte offset off.
func (b *Buffer) IDAt(off int) ID {
	return b.base + ID(off)
}
