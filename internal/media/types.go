package media

import "fmt"

// LoadMode describes when media begins fetching.
type LoadMode string

const (
	LoadEager   LoadMode = "eager"   // immediately
	LoadIdle    LoadMode = "idle"    // once the UI is idle
	LoadVisible LoadMode = "visible" // once the player is on screen
	LoadCustom  LoadMode = "custom"  // when the host calls StartLoading
	LoadPlay    LoadMode = "play"    // on first play request
)

// ParseLoadMode converts a config string to a LoadMode.
func ParseLoadMode(s string) (LoadMode, error) {
	switch m := LoadMode(s); m {
	case LoadEager, LoadIdle, LoadVisible, LoadCustom, LoadPlay:
		return m, nil
	default:
		return "", fmt.Errorf("unknown load mode %q", s)
	}
}

// StreamType classifies the media source. It is unknown until loading starts.
type StreamType string

const (
	StreamUnknown   StreamType = "unknown"
	StreamOnDemand  StreamType = "on-demand"
	StreamLive      StreamType = "live"
	StreamLiveDVR   StreamType = "live:dvr"
	StreamLLLive    StreamType = "ll-live"
	StreamLLLiveDVR StreamType = "ll-live:dvr"
)

// StreamTypes lists every stream type in cycling order.
var StreamTypes = []StreamType{
	StreamUnknown,
	StreamOnDemand,
	StreamLive,
	StreamLiveDVR,
	StreamLLLive,
	StreamLLLiveDVR,
}

// ParseStreamType converts a string to a StreamType.
func ParseStreamType(s string) (StreamType, error) {
	for _, t := range StreamTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown stream type %q", s)
}

// IsLive reports whether the stream is any kind of live stream.
func (t StreamType) IsLive() bool {
	switch t {
	case StreamLive, StreamLiveDVR, StreamLLLive, StreamLLLiveDVR:
		return true
	default:
		return false
	}
}

// Next returns the stream type after t in StreamTypes, wrapping around.
func (t StreamType) Next() StreamType {
	for i, cur := range StreamTypes {
		if cur == t {
			return StreamTypes[(i+1)%len(StreamTypes)]
		}
	}
	return StreamUnknown
}

// ViewType is the kind of view the player presents.
type ViewType string

const (
	ViewUnknown ViewType = "unknown"
	ViewAudio   ViewType = "audio"
	ViewVideo   ViewType = "video"
)

// ParseViewType converts a string to a ViewType.
func ParseViewType(s string) (ViewType, error) {
	switch v := ViewType(s); v {
	case ViewUnknown, ViewAudio, ViewVideo:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view type %q", s)
	}
}
