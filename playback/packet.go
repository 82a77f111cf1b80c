package playback

import (
	"fmt"

	"github.com/hbouhadji/airglass/codec"
)

// PacketKind is the wire discriminant of a video data packet.
type PacketKind uint16

const (
	// KindPayload carries encoded frame data.
	KindPayload PacketKind = 0
	// KindConfig carries the container header with the codec
	// configuration record. Always the first packet of a stream; senders
	// may re-issue it on a format change.
	KindConfig PacketKind = 1
)

func (k PacketKind) String() string {
	switch k {
	case KindPayload:
		return "payload"
	case KindConfig:
		return "config"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(k))
	}
}

// VideoPacket is one unit of the per-stream ordered video channel.
type VideoPacket struct {
	Kind    PacketKind
	Payload []byte
}

// Decoder is the decode-pipeline collaborator for a single video stream.
// It is constructed once per codec configuration and consumes an ordered
// sequence of opaque payload buffers.
type Decoder interface {
	// Push forwards one encoded payload to the pipeline.
	Push(payload []byte) error
	// Close flushes the pipeline, signals end-of-stream downstream, and
	// releases its resources. Idempotent.
	Close() error
}

// DecoderFactory constructs the decode pipeline for a video stream. The
// record is the raw codec initialization bytes, consumed exactly once at
// construction time.
type DecoderFactory func(streamID uint64, c codec.Codec, record []byte, spec codec.PipelineSpec) (Decoder, error)
