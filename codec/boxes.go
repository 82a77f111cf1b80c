package codec

import "encoding/binary"

// sampleEntryHeaderLen is the fixed block of entry-specific fields between
// a video sample entry's box header and its child boxes (ISO 14496-12
// VisualSampleEntry). It is skipped verbatim, never parsed.
const sampleEntryHeaderLen = 78

// findBoxPayload locates the payload of the first box tagged marker in a
// depth-first, left-to-right walk of buf, or nil when no such box exists.
// Each box is a 4-byte big-endian length (inclusive of the 8-byte header)
// followed by a 4-byte tag.
func findBoxPayload(buf []byte, marker string) []byte {
	return walkRange(buf, 0, len(buf), marker)
}

// walkRange scans the boxes between cursor and limit. Recursion descends into
// sample-entry and generic container boxes only, so every recursive call
// operates on a strictly smaller sub-range of the original buffer. A box
// whose declared length is under 8 or escapes the enclosing range abandons
// the range as unparseable; the caller's siblings are unaffected.
func walkRange(buf []byte, cursor, limit int, marker string) []byte {
	for cursor+8 <= limit {
		size := int(binary.BigEndian.Uint32(buf[cursor : cursor+4]))
		if size == 0 {
			// Zero length means the box extends to the end of the range.
			size = limit - cursor
		}
		if size < 8 || cursor+size > limit {
			return nil
		}

		kind := string(buf[cursor+4 : cursor+8])
		if kind == marker {
			return buf[cursor+8 : cursor+size]
		}

		switch kind {
		case "avc1", "hvc1", "hev1":
			// Video sample entries nest child boxes after their fixed
			// field block.
			bodyStart := cursor + 8 + sampleEntryHeaderLen
			if bodyStart < cursor+size {
				if payload := walkRange(buf, bodyStart, cursor+size, marker); payload != nil {
					return payload
				}
			}
		case "stsd", "trak", "mdia", "minf", "stbl":
			// Generic containers wrap child boxes with no extra offset.
			bodyStart := cursor + 8
			if bodyStart < cursor+size {
				if payload := walkRange(buf, bodyStart, cursor+size, marker); payload != nil {
					return payload
				}
			}
		}

		cursor += size
	}
	return nil
}
