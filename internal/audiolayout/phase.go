package audiolayout

// Phase is the lifecycle state of a Component.
//
//	┌───────────────┐  Setup  ┌───────┐  Connect  ┌───────────┐
//	│ Uninitialized │ ──────▶ │ SetUp │ ────────▶ │ Connected │
//	└───────────────┘         └───────┘           └───────────┘
//	                                                │      ▲
//	                                     Disconnect │      │ Connect
//	                                                ▼      │
//	                                           ┌──────────────┐
//	                                           │ Disconnected │
//	                                           └──────────────┘
//
// Dispose moves any set-up component to Disposed, which is terminal.
type Phase int

const (
	Uninitialized Phase = iota
	SetUp
	Connected
	Disconnected
	Disposed
)

// String returns the phase name for debugging.
func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "Uninitialized"
	case SetUp:
		return "SetUp"
	case Connected:
		return "Connected"
	case Disconnected:
		return "Disconnected"
	case Disposed:
		return "Disposed"
	default:
		return "Unknown"
	}
}
