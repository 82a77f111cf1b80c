package rtsp

// Body encodes the phase-1 SETUP response dictionary.
func (r *SenderResponse) Body() map[string]any {
	return map[string]any{
		"eventPort":  r.EventPort,
		"timingPort": r.TimingPort,
	}
}

// Body encodes the phase-2 SETUP response dictionary. Entries keep the
// positional order of Responses, which mirrors the request list.
func (r *StreamsResponse) Body() map[string]any {
	entries := make([]any, len(r.Responses))
	for i, resp := range r.Responses {
		entries[i] = resp.entry()
	}
	return map[string]any{"streams": entries}
}

func (r *AudioRealtimeResponse) entry() map[string]any {
	return map[string]any{
		"type":        StreamTypeAudioRealtime,
		"streamID":    r.ID,
		"dataPort":    r.DataPort,
		"controlPort": r.ControlPort,
	}
}

func (r *AudioBufferedResponse) entry() map[string]any {
	return map[string]any{
		"type":            StreamTypeAudioBuffered,
		"streamID":        r.ID,
		"dataPort":        r.DataPort,
		"audioBufferSize": r.AudioBufferSize,
	}
}

func (r *VideoResponse) entry() map[string]any {
	return map[string]any{
		"type":     StreamTypeVideo,
		"streamID": r.ID,
		"dataPort": r.DataPort,
	}
}

// Body encodes the GET /info response dictionary.
func (r *InfoResponse) Body() map[string]any {
	displays := make([]any, len(r.Displays))
	for i, disp := range r.Displays {
		displays[i] = map[string]any{
			"widthPixels":  disp.WidthPixels,
			"heightPixels": disp.HeightPixels,
			"uuid":         disp.UUID,
			"maxFPS":       disp.MaxFPS,
			"features":     disp.Features,
		}
	}
	return map[string]any{
		"deviceid":        r.DeviceID,
		"macAddress":      r.MACAddr,
		"features":        r.Features,
		"manufacturer":    r.Manufacturer,
		"model":           r.Model,
		"name":            r.Name,
		"protocolVersion": r.ProtocolVersion,
		"sourceVersion":   r.SourceVersion,
		"displays":        displays,
	}
}
