package playback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/hbouhadji/airglass/codec"
)

// Video consumes one stream's ordered video packet channel. The first
// config packet initializes the decode pipeline; payload packets arriving
// before that are dropped with a warning rather than buffered, to bound
// memory.
type Video struct {
	id         uint64
	log        *slog.Logger
	newDecoder DecoderFactory

	forwarded atomic.Int64
	dropped   atomic.Int64
}

// VideoStats is a point-in-time snapshot of a video worker's forwarding
// counters.
type VideoStats struct {
	Forwarded int64
	Dropped   int64
}

// NewVideo creates the worker for one video stream. If log is nil,
// slog.Default() is used.
func NewVideo(streamID uint64, factory DecoderFactory, log *slog.Logger) *Video {
	if log == nil {
		log = slog.Default()
	}
	return &Video{
		id:         streamID,
		log:        log.With("component", "video-worker", "stream", streamID),
		newDecoder: factory,
	}
}

// Stats returns the worker's forwarding counters.
func (v *Video) Stats() VideoStats {
	return VideoStats{
		Forwarded: v.forwarded.Load(),
		Dropped:   v.dropped.Load(),
	}
}

// Run consumes packets until the channel closes, the context is cancelled,
// or the pipeline fails fatally. The decoder, once constructed, is closed
// on every exit path; a clean channel close flushes end-of-stream through
// it. Errors are local to this stream.
func (v *Video) Run(ctx context.Context, packets <-chan VideoPacket) error {
	var dec Decoder
	defer func() {
		if dec != nil {
			if err := dec.Close(); err != nil {
				v.log.Warn("decoder close failed", "error", err)
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case pkt, ok := <-packets:
			if !ok {
				v.log.Info("video channel closed",
					"forwarded", v.forwarded.Load(), "dropped", v.dropped.Load())
				return nil
			}

			switch pkt.Kind {
			case KindConfig:
				next, err := v.setupDecoder(pkt.Payload)
				if err != nil {
					v.log.Error("decoder init failed", "error", err)
					continue
				}
				if dec != nil {
					if err := dec.Close(); err != nil {
						v.log.Warn("decoder close failed", "error", err)
					}
				}
				dec = next

			case KindPayload:
				if dec == nil {
					v.dropped.Add(1)
					v.log.Warn("payload before decoder init, dropping")
					continue
				}
				if err := dec.Push(pkt.Payload); err != nil {
					v.log.Warn("payload push failed", "error", err)
					continue
				}
				v.forwarded.Add(1)

			default:
				v.log.Debug("unknown packet kind", "kind", pkt.Kind)
			}
		}
	}
}

// setupDecoder classifies the config header, extracts the codec record,
// and constructs the decode pipeline. When no record can be located inside
// the header, the raw header bytes serve as the record.
func (v *Video) setupDecoder(header []byte) (Decoder, error) {
	c := codec.Detect(header)
	switch c {
	case codec.Unknown:
		v.log.Warn("codec unknown", "len", len(header), "header", headerSnapshot(header))
	default:
		v.log.Info("codec detected", "codec", c.String())
	}

	record := codec.ExtractRecord(header, c)
	if record == nil {
		record = header
	}

	dec, err := v.newDecoder(v.id, c, record, c.PipelineSpec())
	if err != nil {
		return nil, fmt.Errorf("construct decoder: %w", err)
	}
	return dec, nil
}

// headerSnapshot renders the first 16 header bytes as hex for diagnostics.
func headerSnapshot(b []byte) string {
	n := len(b)
	if n > 16 {
		n = 16
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%02X", b[i])
	}
	return strings.Join(parts, " ")
}
