package rtsp

import (
	"testing"
)

func TestStreamResponseTypeMatchesRequest(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		req  StreamRequest
		resp StreamResponse
	}{
		{&AudioRealtimeRequest{}, &AudioRealtimeResponse{ID: 1, DataPort: 7001, ControlPort: 7002}},
		{&AudioBufferedRequest{}, &AudioBufferedResponse{ID: 2, DataPort: 7003, AudioBufferSize: 1 << 23}},
		{&VideoRequest{}, &VideoResponse{ID: 3, DataPort: 7004}},
	}

	for _, p := range pairs {
		if p.req.StreamType() != p.resp.StreamType() {
			t.Errorf("response type %d does not match request type %d",
				p.resp.StreamType(), p.req.StreamType())
		}
		entry := p.resp.entry()
		if entry["type"] != p.req.StreamType() {
			t.Errorf("encoded type = %v, want %d", entry["type"], p.req.StreamType())
		}
	}
}

func TestStreamsResponseBody(t *testing.T) {
	t.Parallel()

	resp := StreamsResponse{Responses: []StreamResponse{
		&VideoResponse{ID: 7, DataPort: 7010},
		&AudioRealtimeResponse{ID: 8, DataPort: 7011, ControlPort: 7012},
	}}

	body := resp.Body()
	entries, ok := body["streams"].([]any)
	if !ok {
		t.Fatalf("streams field is %T", body["streams"])
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Positional 1:1 correspondence with the response list.
	first := entries[0].(map[string]any)
	if first["type"] != StreamTypeVideo || first["streamID"] != uint64(7) || first["dataPort"] != uint16(7010) {
		t.Errorf("entry 0 = %v", first)
	}
	if _, ok := first["controlPort"]; ok {
		t.Error("video entry must not carry a controlPort")
	}

	second := entries[1].(map[string]any)
	if second["controlPort"] != uint16(7012) {
		t.Errorf("entry 1 = %v", second)
	}
	if _, ok := second["audioBufferSize"]; ok {
		t.Error("realtime entry must not carry an audioBufferSize")
	}
}

func TestAudioBufferedResponseEntry(t *testing.T) {
	t.Parallel()

	entry := (&AudioBufferedResponse{ID: 4, DataPort: 7020, AudioBufferSize: 8388608}).entry()
	if entry["audioBufferSize"] != uint32(8388608) {
		t.Errorf("audioBufferSize = %v", entry["audioBufferSize"])
	}
	if _, ok := entry["controlPort"]; ok {
		t.Error("buffered entry must not carry a controlPort")
	}
}

func TestSenderResponseBody(t *testing.T) {
	t.Parallel()

	body := (&SenderResponse{EventPort: 7100}).Body()
	if body["eventPort"] != uint16(7100) {
		t.Errorf("eventPort = %v", body["eventPort"])
	}
	// timingPort is always present, zero under peer-to-peer clock sync.
	if v, ok := body["timingPort"]; !ok || v != uint16(0) {
		t.Errorf("timingPort = %v (present=%v), want 0 present", v, ok)
	}
}

func TestInfoResponseBody(t *testing.T) {
	t.Parallel()

	info := InfoResponse{
		DeviceID:        "AA:BB:CC:DD:EE:FF",
		MACAddr:         "AA:BB:CC:DD:EE:FF",
		Features:        0x5A7FFFF7,
		Manufacturer:    "airglass",
		Model:           "airglass1,1",
		Name:            "Den",
		ProtocolVersion: "1.0",
		SourceVersion:   "377.25.06",
		Displays: []Display{
			{WidthPixels: 1920, HeightPixels: 1080, UUID: "e0ff03c4", MaxFPS: 60, Features: 2},
		},
	}

	body := info.Body()
	if body["deviceid"] != "AA:BB:CC:DD:EE:FF" || body["name"] != "Den" {
		t.Errorf("body = %v", body)
	}
	displays := body["displays"].([]any)
	if len(displays) != 1 {
		t.Fatalf("got %d displays, want 1", len(displays))
	}
	d := displays[0].(map[string]any)
	if d["widthPixels"] != uint32(1920) || d["maxFPS"] != uint32(60) {
		t.Errorf("display = %v", d)
	}
}
