// Package session tracks the control session established by a connected
// sender and the media streams negotiated within it, providing stream-id
// allocation, response building, and teardown application.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hbouhadji/airglass/rtsp"
)

// DefaultAudioBufferSize is the buffer size offered to buffered-audio
// streams when the receiver config does not override it.
const DefaultAudioBufferSize uint32 = 8 * 1024 * 1024

// EndpointAllocator hands out local transport endpoints for negotiated
// streams. The concrete allocator lives in the transport layer; binding it
// behind an interface keeps negotiation testable without sockets.
type EndpointAllocator interface {
	AllocatePort() (uint16, error)
}

// Stream is one negotiated media channel, identified within its session by
// a server-chosen 64-bit id.
type Stream struct {
	ID        uint64
	Type      uint32
	Request   rtsp.StreamRequest
	StartedAt time.Time

	done chan struct{}
}

// Done is closed when the stream is torn down.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Session is one sender's control session. It is created on the first
// sender-info SETUP and lives until a full teardown or until the control
// connection closes. The sender identity, key material, and clock-sync
// mode are fixed at creation; only the active stream set mutates.
type Session struct {
	Sender    rtsp.SenderInfo
	StartedAt time.Time

	log             *slog.Logger
	audioBufferSize uint32

	mu      sync.RWMutex
	streams map[uint64]*Stream
	nextID  uint64
}

// New creates a session for the given sender. If log is nil, slog.Default()
// is used.
func New(info *rtsp.SenderInfo, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		Sender:          *info,
		StartedAt:       time.Now(),
		log:             log.With("component", "session", "sender", info.Name),
		audioBufferSize: DefaultAudioBufferSize,
		streams:         make(map[uint64]*Stream),
	}
}

// SetAudioBufferSize overrides the buffer size offered to buffered-audio
// streams. Effective for streams negotiated after the call.
func (s *Session) SetAudioBufferSize(size uint32) {
	s.mu.Lock()
	s.audioBufferSize = size
	s.mu.Unlock()
}

// Negotiate admits every stream in the request and builds the response
// list, ordered 1:1 positionally with the request list. Endpoint
// allocation happens before any stream is admitted, so a failed allocation
// leaves the session unchanged.
func (s *Session) Negotiate(req *rtsp.StreamsSetup, alloc EndpointAllocator) (*rtsp.StreamsResponse, []*Stream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make([]rtsp.StreamResponse, len(req.Requests))
	admitted := make([]*Stream, len(req.Requests))

	for i, sr := range req.Requests {
		id := s.nextID + uint64(i) + 1

		resp, err := buildResponse(id, sr, alloc, s.audioBufferSize)
		if err != nil {
			return nil, nil, fmt.Errorf("stream %d: %w", i, err)
		}
		responses[i] = resp
		admitted[i] = &Stream{
			ID:        id,
			Type:      sr.StreamType(),
			Request:   sr,
			StartedAt: time.Now(),
			done:      make(chan struct{}),
		}
	}

	for _, st := range admitted {
		s.streams[st.ID] = st
		s.log.Info("stream negotiated", "id", st.ID, "type", st.Type)
	}
	s.nextID += uint64(len(admitted)) + 1

	return &rtsp.StreamsResponse{Responses: responses}, admitted, nil
}

func buildResponse(id uint64, req rtsp.StreamRequest, alloc EndpointAllocator, bufSize uint32) (rtsp.StreamResponse, error) {
	dataPort, err := alloc.AllocatePort()
	if err != nil {
		return nil, fmt.Errorf("allocate data port: %w", err)
	}

	switch req.(type) {
	case *rtsp.AudioRealtimeRequest:
		controlPort, err := alloc.AllocatePort()
		if err != nil {
			return nil, fmt.Errorf("allocate control port: %w", err)
		}
		return &rtsp.AudioRealtimeResponse{ID: id, DataPort: dataPort, ControlPort: controlPort}, nil
	case *rtsp.AudioBufferedRequest:
		return &rtsp.AudioBufferedResponse{ID: id, DataPort: dataPort, AudioBufferSize: bufSize}, nil
	case *rtsp.VideoRequest:
		return &rtsp.VideoResponse{ID: id, DataPort: dataPort}, nil
	default:
		return nil, fmt.Errorf("unhandled stream request %T", req)
	}
}

// Stream returns the stream with the given id.
func (s *Session) Stream(id uint64) (*Stream, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.streams[id]
	return st, ok
}

// Streams returns all active streams.
func (s *Session) Streams() []*Stream {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Stream, 0, len(s.streams))
	for _, st := range s.streams {
		out = append(out, st)
	}
	return out
}

// Teardown applies a decoded TEARDOWN request and returns the streams that
// were removed. A request without a stream list removes everything. A
// listed entry with a stream id removes exactly that stream; an entry
// carrying only a type removes every stream of that type, since the
// protocol offers nothing else to disambiguate with.
func (s *Session) Teardown(req rtsp.TeardownRequest) []*Stream {
	s.mu.Lock()

	var removed []*Stream
	if req.All {
		for id, st := range s.streams {
			delete(s.streams, id)
			removed = append(removed, st)
		}
	} else {
		for _, target := range req.Streams {
			if target.HasID {
				if st, ok := s.streams[target.ID]; ok {
					delete(s.streams, target.ID)
					removed = append(removed, st)
				}
				continue
			}
			for id, st := range s.streams {
				if st.Type == target.Type {
					delete(s.streams, id)
					removed = append(removed, st)
				}
			}
		}
	}
	s.mu.Unlock()

	for _, st := range removed {
		close(st.done)
		s.log.Info("stream torn down", "id", st.ID, "type", st.Type)
	}
	return removed
}

// Close tears down every remaining stream. Called when the control
// connection drops without an explicit TEARDOWN.
func (s *Session) Close() {
	s.Teardown(rtsp.TeardownRequest{All: true})
	s.log.Info("session closed")
}
