// Package playback coordinates the per-stream data path between the
// transport's ordered packet channels and the decode pipelines. Each
// negotiated stream gets exactly one worker goroutine for its lifetime:
// video workers extract the codec configuration record from the first
// config packet and construct a decoder before forwarding any payload;
// audio workers unwrap RTP framing and hand payloads to an audio sink.
//
// Workers release their pipeline resources on every exit path, and a
// failure in one stream's worker never propagates to other streams or to
// the control session.
package playback
