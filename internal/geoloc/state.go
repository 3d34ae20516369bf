package geoloc

// State is the request state machine position. Only StateIdle,
// StateCompleted and StateError accept a new request.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateSendingRequest
	StateReceiving
	StateAllParsed
	StateSettingTime
	StateCompleted
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateConnecting:
		return "Connecting"
	case StateSendingRequest:
		return "SendingRequest"
	case StateReceiving:
		return "Receiving"
	case StateAllParsed:
		return "AllParsed"
	case StateSettingTime:
		return "SettingTime"
	case StateCompleted:
		return "Completed"
	case StateError:
		return "Error"
	default:
		return "Invalid"
	}
}

// RequestError classifies why a request failed. Every error is terminal for
// the current request; retry policy belongs to the caller.
type RequestError int

const (
	ErrNone RequestError = iota
	// ErrNoConnection: the network link was down when the request started.
	ErrNoConnection
	// ErrTimeout: the connect-phase bound or the overall inactivity bound
	// was exceeded.
	ErrTimeout
	// ErrRateLimited: the local request budget for the service was
	// exhausted.
	ErrRateLimited
	// ErrParse: a body line failed positional decoding, or a blank line
	// arrived where a field was expected.
	ErrParse
	// ErrHTTP: the connect attempt failed, or the peer closed before all
	// expected fields arrived.
	ErrHTTP
	ErrUnknown
)

func (e RequestError) String() string {
	switch e {
	case ErrNone:
		return "None"
	case ErrNoConnection:
		return "No network connection"
	case ErrTimeout:
		return "Request timeout"
	case ErrRateLimited:
		return "Rate limited"
	case ErrParse:
		return "Parse error"
	case ErrHTTP:
		return "HTTP error"
	case ErrUnknown:
		return "Unknown error"
	default:
		return "Invalid error code"
	}
}
