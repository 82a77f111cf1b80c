package codec

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// box builds a length-prefixed box: 4-byte big-endian size (header
// inclusive), 4-byte tag, payload.
func box(tag string, payload []byte) []byte {
	buf := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint32(buf[:4], uint32(8+len(payload)))
	copy(buf[4:8], tag)
	copy(buf[8:], payload)
	return buf
}

// sampleEntry builds a video sample entry box with its 78-byte fixed field
// block followed by child boxes.
func sampleEntry(tag string, children []byte) []byte {
	body := make([]byte, sampleEntryHeaderLen+len(children))
	copy(body[sampleEntryHeaderLen:], children)
	return box(tag, body)
}

func TestFindBoxPayloadTopLevel(t *testing.T) {
	t.Parallel()

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	buf := box("avcC", payload)

	got := findBoxPayload(buf, "avcC")
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %x, want %x", got, payload)
	}
}

func TestFindBoxPayloadAfterSiblings(t *testing.T) {
	t.Parallel()

	var buf []byte
	buf = append(buf, box("free", make([]byte, 12))...)
	buf = append(buf, box("avcC", []byte{1, 2, 3})...)

	got := findBoxPayload(buf, "avcC")
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("payload = %x, want 010203", got)
	}
}

func TestFindBoxPayloadNestedContainer(t *testing.T) {
	t.Parallel()

	payload := []byte{0x01, 0x64}
	buf := box("stsd", box("avcC", payload))

	got := findBoxPayload(buf, "avcC")
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %x, want %x", got, payload)
	}
}

func TestFindBoxPayloadInsideSampleEntry(t *testing.T) {
	t.Parallel()

	payload := []byte{0x01, 0x64, 0x00, 0x28}
	buf := box("stsd", sampleEntry("avc1", box("avcC", payload)))

	got := findBoxPayload(buf, "avcC")
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %x, want %x", got, payload)
	}
}

func TestFindBoxPayloadDeepNesting(t *testing.T) {
	t.Parallel()

	payload := []byte{0xAB}
	inner := box("stbl", box("stsd", sampleEntry("hvc1", box("hvcC", payload))))
	buf := box("trak", box("mdia", box("minf", inner)))

	got := findBoxPayload(buf, "hvcC")
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %x, want %x", got, payload)
	}
}

func TestFindBoxPayloadZeroLengthExtendsToEnd(t *testing.T) {
	t.Parallel()

	payload := []byte{9, 8, 7}
	buf := box("avcC", payload)
	binary.BigEndian.PutUint32(buf[:4], 0)

	got := findBoxPayload(buf, "avcC")
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %x, want %x", got, payload)
	}
}

func TestFindBoxPayloadFirstMatchWins(t *testing.T) {
	t.Parallel()

	var buf []byte
	buf = append(buf, box("avcC", []byte{1})...)
	buf = append(buf, box("avcC", []byte{2})...)

	got := findBoxPayload(buf, "avcC")
	if !bytes.Equal(got, []byte{1}) {
		t.Fatalf("payload = %x, want first match 01", got)
	}
}

func TestFindBoxPayloadMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"under 8 bytes", []byte{0, 0, 0, 9, 'a', 'v', 'c'}},
		{"length past buffer", []byte{0, 0, 0, 0xFF, 'a', 'v', 'c', 'C', 1, 2}},
		{"length under 8", []byte{0, 0, 0, 4, 'a', 'v', 'c', 'C', 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := findBoxPayload(tt.buf, "avcC"); got != nil {
				t.Errorf("payload = %x, want nil", got)
			}
		})
	}
}

func TestFindBoxPayloadCorruptSiblingDoesNotBlockContainer(t *testing.T) {
	t.Parallel()

	// A container whose body is garbage is abandoned; the target in a
	// later top-level box must still be found.
	corrupt := box("stsd", []byte{0xFF, 0xFF, 0xFF, 0xFF, 'j', 'u', 'n', 'k', 0, 0})
	var buf []byte
	buf = append(buf, corrupt...)
	buf = append(buf, box("avcC", []byte{0x42})...)

	got := findBoxPayload(buf, "avcC")
	if !bytes.Equal(got, []byte{0x42}) {
		t.Fatalf("payload = %x, want 42", got)
	}
}

func TestFindBoxPayloadEmptyPayloadBox(t *testing.T) {
	t.Parallel()

	buf := box("avcC", nil)
	got := findBoxPayload(buf, "avcC")
	if got == nil {
		t.Fatal("expected a (possibly empty) match, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("payload = %x, want empty", got)
	}
}

func TestFindBoxPayloadSkipsUnknownBoxContents(t *testing.T) {
	t.Parallel()

	// An unknown box containing bytes that happen to look like the target
	// is skipped whole, not examined.
	decoy := box("mdat", box("avcC", []byte{0x01}))
	var buf []byte
	buf = append(buf, decoy...)

	if got := findBoxPayload(buf, "avcC"); got != nil {
		t.Fatalf("payload = %x, want nil (contents of unknown boxes are opaque)", got)
	}
}
