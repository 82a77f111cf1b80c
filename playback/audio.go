package playback

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/pion/rtp"
)

// AudioSink is the audio-pipeline collaborator for one stream. Payloads
// arrive in channel order with their RTP timestamps; decryption and decode
// happen downstream.
type AudioSink interface {
	Write(payload []byte, timestamp uint32) error
	// Close signals end-of-stream and releases the sink. Idempotent.
	Close() error
}

// Audio consumes one realtime audio stream's ordered packet channel,
// unwraps the RTP framing, and forwards payloads to the sink.
type Audio struct {
	id   uint64
	log  *slog.Logger
	sink AudioSink

	forwarded atomic.Int64
	lost      atomic.Int64

	lastSeq uint16
	haveSeq bool
}

// NewAudio creates the worker for one realtime audio stream. If log is
// nil, slog.Default() is used.
func NewAudio(streamID uint64, sink AudioSink, log *slog.Logger) *Audio {
	if log == nil {
		log = slog.Default()
	}
	return &Audio{
		id:   streamID,
		log:  log.With("component", "audio-worker", "stream", streamID),
		sink: sink,
	}
}

// Forwarded returns the number of payloads handed to the sink.
func (a *Audio) Forwarded() int64 {
	return a.forwarded.Load()
}

// Lost returns the number of packets missing from the sequence so far.
func (a *Audio) Lost() int64 {
	return a.lost.Load()
}

// Run consumes raw datagrams until the channel closes or the context is
// cancelled. The sink is closed on every exit path. Undecodable packets
// are dropped with a warning; sequence gaps are counted, not repaired,
// since loss concealment belongs to the decode pipeline.
func (a *Audio) Run(ctx context.Context, packets <-chan []byte) error {
	defer func() {
		if err := a.sink.Close(); err != nil {
			a.log.Warn("sink close failed", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case raw, ok := <-packets:
			if !ok {
				a.log.Info("audio channel closed",
					"forwarded", a.forwarded.Load(), "lost", a.lost.Load())
				return nil
			}

			var pkt rtp.Packet
			if err := pkt.Unmarshal(raw); err != nil {
				a.log.Warn("dropping undecodable audio packet", "error", err)
				continue
			}

			if a.haveSeq {
				if gap := pkt.SequenceNumber - a.lastSeq - 1; gap != 0 {
					a.lost.Add(int64(gap))
					a.log.Debug("audio sequence gap", "missing", gap, "seq", pkt.SequenceNumber)
				}
			}
			a.lastSeq = pkt.SequenceNumber
			a.haveSeq = true

			if err := a.sink.Write(pkt.Payload, pkt.Timestamp); err != nil {
				a.log.Warn("sink write failed", "error", err)
				continue
			}
			a.forwarded.Add(1)
		}
	}
}
