// Package rtsp implements the session-negotiation message model for the
// mirroring receiver's control channel: typed SETUP and TEARDOWN request
// decoding, response body encoding, and the closed stream-type variant set
// (realtime audio, buffered audio, video).
//
// The package is a pure codec over already-deserialized property-list
// dictionaries; the RTSP framing and plist byte codec belong to the
// transport layer. Nothing here performs I/O or holds state, so every
// function is safe to call concurrently for independent sessions.
package rtsp
