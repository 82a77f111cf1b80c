package rtsp

import (
	"errors"
	"fmt"
)

// DecodeSetup decodes a SETUP body into one of the two request phases. The
// discriminant is structural: a body carrying a "streams" list is the
// stream-negotiation phase, anything else must match the sender-info shape.
// The check is centralized here so both phases share a single first-match
// rule.
func DecodeSetup(body map[string]any) (SetupRequest, error) {
	d := dict(body)

	if raw, ok := body["streams"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return nil, malformed(&FieldError{Field: "streams", Err: errWrongType})
		}
		if len(list) == 0 {
			return nil, malformed(&FieldError{Field: "streams", Err: errors.New("empty stream list")})
		}

		reqs := make([]StreamRequest, len(list))
		for i, el := range list {
			m, ok := el.(map[string]any)
			if !ok {
				return nil, malformed(&FieldError{Field: "streams", Err: errWrongType})
			}
			req, err := decodeStreamRequest(dict(m))
			if err != nil {
				// Fail fast: one bad element rejects the whole request,
				// no partial stream set is admitted.
				var unknown *UnknownStreamTypeError
				if errors.As(err, &unknown) {
					return nil, err
				}
				return nil, malformed(fmt.Errorf("stream %d: %w", i, err))
			}
			reqs[i] = req
		}
		return &StreamsSetup{Requests: reqs}, nil
	}

	info, err := decodeSenderInfo(d)
	if err != nil {
		return nil, malformed(err)
	}
	return info, nil
}

// DecodeTeardown decodes a TEARDOWN body. An absent stream list means the
// whole session; a present list, even empty, applies to exactly the listed
// streams.
func DecodeTeardown(body map[string]any) (TeardownRequest, error) {
	raw, ok := body["streams"]
	if !ok {
		return TeardownRequest{All: true}, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return TeardownRequest{}, &FieldError{Field: "streams", Err: errWrongType}
	}

	streams := make([]TeardownStream, 0, len(list))
	for i, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			return TeardownRequest{}, &FieldError{Field: "streams", Err: errWrongType}
		}
		d := dict(m)

		ty, err := d.u32("type")
		if err != nil {
			return TeardownRequest{}, fmt.Errorf("stream %d: %w", i, err)
		}
		ts := TeardownStream{Type: ty}
		if id, ok, err := d.optU64("streamID"); err != nil {
			return TeardownRequest{}, fmt.Errorf("stream %d: %w", i, err)
		} else if ok {
			ts.ID = id
			ts.HasID = true
		}
		streams = append(streams, ts)
	}
	return TeardownRequest{Streams: streams}, nil
}

func decodeSenderInfo(d dict) (*SenderInfo, error) {
	var info SenderInfo
	var err error

	if info.Name, err = d.str("name"); err != nil {
		return nil, err
	}
	if info.Model, err = d.str("model"); err != nil {
		return nil, err
	}
	if info.DeviceID, err = d.str("deviceID"); err != nil {
		return nil, err
	}
	if info.MACAddr, err = d.str("macAddress"); err != nil {
		return nil, err
	}
	info.OSName, _ = d.optStr("osName")
	info.OSVersion, _ = d.optStr("osVersion")
	info.OSBuildVersion, _ = d.optStr("osBuildVersion")

	if info.EKey, err = d.blob("ekey"); err != nil {
		return nil, err
	}
	if info.EIV, err = d.blob("eiv"); err != nil {
		return nil, err
	}

	proto, err := d.str("timingProtocol")
	if err != nil {
		return nil, err
	}
	switch proto {
	case "PTP":
		info.Timing = TimingInfo{Mode: ClockSyncPeerToPeer}
	case "NTP":
		port, err := d.u16("timingPort")
		if err != nil {
			return nil, err
		}
		info.Timing = TimingInfo{Mode: ClockSyncNetworkTime, RemotePort: port}
	default:
		return nil, &FieldError{Field: "timingProtocol", Err: fmt.Errorf("unrecognized protocol %q", proto)}
	}

	return &info, nil
}

// decodeStreamRequest reads the generic {type, ...} envelope, then re-reads
// the remaining fields against the schema selected by the type code.
func decodeStreamRequest(d dict) (StreamRequest, error) {
	code, err := d.u32("type")
	if err != nil {
		return nil, err
	}

	switch code {
	case StreamTypeAudioRealtime:
		return decodeAudioRealtime(d)
	case StreamTypeAudioBuffered:
		return decodeAudioBuffered(d)
	case StreamTypeVideo:
		return decodeVideo(d)
	default:
		return nil, &UnknownStreamTypeError{Code: code}
	}
}

func decodeAudioRealtime(d dict) (*AudioRealtimeRequest, error) {
	var req AudioRealtimeRequest
	var err error

	if req.ContentType, err = d.u8("ct"); err != nil {
		return nil, err
	}
	if req.AudioFormat, err = d.u32("audioFormat"); err != nil {
		return nil, err
	}
	if req.SamplesPerFrame, err = d.u32("spf"); err != nil {
		return nil, err
	}
	if req.SampleRate, err = d.u32("sr"); err != nil {
		return nil, err
	}
	if req.LatencyMin, err = d.u32("latencyMin"); err != nil {
		return nil, err
	}
	if req.LatencyMax, err = d.u32("latencyMax"); err != nil {
		return nil, err
	}
	if req.RemoteControlPort, err = d.u16("controlPort"); err != nil {
		return nil, err
	}
	return &req, nil
}

func decodeAudioBuffered(d dict) (*AudioBufferedRequest, error) {
	var req AudioBufferedRequest
	var err error

	if req.ContentType, err = d.u8("ct"); err != nil {
		return nil, err
	}
	if req.AudioFormat, err = d.u32("audioFormat"); err != nil {
		return nil, err
	}
	if idx, ok, err := d.optU64("audioFormatIndex"); err != nil {
		return nil, err
	} else if ok {
		v := uint8(idx)
		req.AudioFormatIdx = &v
	}
	if req.SamplesPerFrame, err = d.u32("spf"); err != nil {
		return nil, err
	}
	if req.SharedKey, err = d.blob("shk"); err != nil {
		return nil, err
	}
	req.ClientID, _ = d.optStr("clientID")
	return &req, nil
}

func decodeVideo(d dict) (*VideoRequest, error) {
	var req VideoRequest
	var err error

	if req.ConnectionID, err = d.i64("streamConnectionID"); err != nil {
		return nil, err
	}
	if req.LatencyMs, err = d.u32("latencyMs"); err != nil {
		return nil, err
	}
	return &req, nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedSetup, err)
}
