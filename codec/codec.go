// Package codec recovers decoder initialization parameters from the
// container header carried by the first packet of a mirroring video stream.
// The header arrives in whatever shape the sender produces: a bare
// parameter-set record, or the record nested arbitrarily deep inside a
// box/atom container fragment. Detection and extraction are best-effort
// and never trust the declared structure beyond the buffer's bounds.
package codec

// Codec identifies the video codec family of a stream.
type Codec int

const (
	H264 Codec = iota
	H265
	Unknown
)

func (c Codec) String() string {
	switch c {
	case H264:
		return "h264"
	case H265:
		return "h265"
	default:
		return "unknown"
	}
}

// Detect classifies a config header by the 4-byte tag at offset 4. Only
// "hvc1" selects H265; every other tag defaults to H264, since senders that
// ship raw parameter-set records carry no tag at all. Headers shorter than
// 8 bytes cannot be classified.
func Detect(header []byte) Codec {
	if len(header) < 8 {
		return Unknown
	}
	if string(header[4:8]) == "hvc1" {
		return H265
	}
	return H264
}

// ExtractRecord returns the raw decoder configuration record for the given
// codec family, or nil when none can be located. A header whose first byte
// is 1 is already a raw record and is returned verbatim; otherwise the
// box walker searches for the family's configuration box. The returned
// slice aliases header and must not be modified.
func ExtractRecord(header []byte, c Codec) []byte {
	if len(header) > 0 && header[0] == 1 {
		return header
	}

	var marker string
	switch c {
	case H264:
		marker = "avcC"
	case H265:
		marker = "hvcC"
	default:
		return nil
	}

	return findBoxPayload(header, marker)
}

// PipelineSpec names the decode-pipeline elements and caps for a codec
// family, consumed by the playback subsystem when constructing a decoder.
type PipelineSpec struct {
	CapsMIME     string
	StreamFormat string
	Parser       string
	Decoder      string
}

// PipelineSpec returns the decode-pipeline parameters for the codec.
// Unknown falls back to the H.264 spec, matching the detector's default.
func (c Codec) PipelineSpec() PipelineSpec {
	if c == H265 {
		return PipelineSpec{
			CapsMIME:     "video/x-h265",
			StreamFormat: "hvc1",
			Parser:       "h265parse",
			Decoder:      "vtdec_hw",
		}
	}
	return PipelineSpec{
		CapsMIME:     "video/x-h264",
		StreamFormat: "avc",
		Parser:       "h264parse",
		Decoder:      "vtdec_hw",
	}
}
