package rtsp

// Stream-type codes fixed by the protocol. These are wire constants, not an
// extensible enumeration: any other value fails decoding.
const (
	StreamTypeAudioRealtime uint32 = 96
	StreamTypeAudioBuffered uint32 = 103
	StreamTypeVideo         uint32 = 110
)

// ClockSyncMode is the session-wide clock-synchronization strategy, fixed
// once at session creation and never renegotiated.
type ClockSyncMode int

const (
	// ClockSyncPeerToPeer exchanges clock state out-of-band; no extra port
	// is negotiated.
	ClockSyncPeerToPeer ClockSyncMode = iota
	// ClockSyncNetworkTime exchanges time packets with a sender-supplied
	// remote port.
	ClockSyncNetworkTime
)

func (m ClockSyncMode) String() string {
	switch m {
	case ClockSyncPeerToPeer:
		return "PTP"
	case ClockSyncNetworkTime:
		return "NTP"
	default:
		return "unknown"
	}
}

// TimingInfo carries the negotiated clock-sync mode. RemotePort is
// meaningful only under ClockSyncNetworkTime.
type TimingInfo struct {
	Mode       ClockSyncMode
	RemotePort uint16
}

// SetupRequest is the closed union of the two SETUP phases. The wire
// carries no phase tag; DecodeSetup disambiguates structurally and yields
// exactly one of *SenderInfo or *StreamsSetup.
type SetupRequest interface {
	isSetupRequest()
}

// SenderInfo is the session-establishing SETUP phase: sender identity
// (advisory), the audio data-channel key material, and the clock-sync mode.
type SenderInfo struct {
	Name     string
	Model    string
	DeviceID string
	MACAddr  string

	// Optional OS descriptors; empty when the sender omits them.
	OSName         string
	OSVersion      string
	OSBuildVersion string

	EKey []byte
	EIV  []byte

	Timing TimingInfo
}

func (*SenderInfo) isSetupRequest() {}

// StreamsSetup is the stream-negotiation SETUP phase: a non-empty ordered
// list of per-stream requests.
type StreamsSetup struct {
	Requests []StreamRequest
}

func (*StreamsSetup) isSetupRequest() {}

// StreamRequest is the closed union of per-stream request variants,
// discriminated by the wire type code.
type StreamRequest interface {
	StreamType() uint32
}

// AudioRealtimeRequest negotiates a low-latency audio channel (type 96).
// Latencies are expressed in samples.
type AudioRealtimeRequest struct {
	ContentType       uint8
	AudioFormat       uint32
	SamplesPerFrame   uint32
	SampleRate        uint32
	LatencyMin        uint32
	LatencyMax        uint32
	RemoteControlPort uint16
}

func (*AudioRealtimeRequest) StreamType() uint32 { return StreamTypeAudioRealtime }

// AudioBufferedRequest negotiates a buffered audio channel (type 103).
type AudioBufferedRequest struct {
	ContentType     uint8
	AudioFormat     uint32
	AudioFormatIdx  *uint8
	SamplesPerFrame uint32
	SharedKey       []byte
	ClientID        string
}

func (*AudioBufferedRequest) StreamType() uint32 { return StreamTypeAudioBuffered }

// VideoRequest negotiates the mirroring video channel (type 110).
type VideoRequest struct {
	ConnectionID int64
	LatencyMs    uint32
}

func (*VideoRequest) StreamType() uint32 { return StreamTypeVideo }

// TeardownRequest names the streams to dismantle. All is set when the wire
// body carries no stream list, which means the entire session goes away; a
// present but empty list tears down nothing and is not an error.
type TeardownRequest struct {
	All     bool
	Streams []TeardownStream
}

// TeardownStream identifies one stream to tear down. The id alone
// disambiguates when several streams share a type; HasID records whether
// the sender supplied one.
type TeardownStream struct {
	ID    uint64
	HasID bool
	Type  uint32
}

// StreamResponse is the closed union of per-stream response variants. The
// type code of a response always equals the code of the request it answers,
// and responses are ordered 1:1 positionally with the request list.
type StreamResponse interface {
	StreamType() uint32
	entry() map[string]any
}

// AudioRealtimeResponse answers an AudioRealtimeRequest with the server's
// local data and control ports.
type AudioRealtimeResponse struct {
	ID          uint64
	DataPort    uint16
	ControlPort uint16
}

func (*AudioRealtimeResponse) StreamType() uint32 { return StreamTypeAudioRealtime }

// AudioBufferedResponse answers an AudioBufferedRequest with the local data
// port and the server-chosen buffer size.
type AudioBufferedResponse struct {
	ID              uint64
	DataPort        uint16
	AudioBufferSize uint32
}

func (*AudioBufferedResponse) StreamType() uint32 { return StreamTypeAudioBuffered }

// VideoResponse answers a VideoRequest with the local data port.
type VideoResponse struct {
	ID       uint64
	DataPort uint16
}

func (*VideoResponse) StreamType() uint32 { return StreamTypeVideo }

// SenderResponse is the phase-1 SETUP response body.
type SenderResponse struct {
	EventPort uint16

	// TimingPort is always emitted, zero under peer-to-peer clock sync.
	// Real senders tolerate the zero value; omitting the field for PTP is
	// untested against the installed base, so the observed shape stays.
	TimingPort uint16
}

// StreamsResponse is the phase-2 SETUP response body.
type StreamsResponse struct {
	Responses []StreamResponse
}

// InfoResponse is the receiver-description body returned for GET /info
// during discovery. All fields are advisory.
type InfoResponse struct {
	DeviceID        string
	MACAddr         string
	Features        uint64
	Manufacturer    string
	Model           string
	Name            string
	ProtocolVersion string
	SourceVersion   string
	Displays        []Display
}

// Display describes one attached display advertised to senders.
type Display struct {
	WidthPixels  uint32
	HeightPixels uint32
	UUID         string
	MaxFPS       uint32
	Features     uint32
}
