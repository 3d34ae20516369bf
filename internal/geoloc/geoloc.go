package geoloc

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/SergeyF11/espGeoLocation/internal/clock"
	"github.com/SergeyF11/espGeoLocation/internal/logging"
	"github.com/SergeyF11/espGeoLocation/internal/protocol"
	"github.com/SergeyF11/espGeoLocation/internal/transport"
)

const (
	// DefaultTimeout is the overall inactivity bound, re-armed by every
	// state or progress change.
	DefaultTimeout = 15 * time.Second

	// connectTimeout bounds the connect phase, measured from request
	// start. Independent of (and tighter than) the overall timeout.
	connectTimeout = 5 * time.Second

	// httpCorrection compensates the transfer latency of the Date header.
	httpCorrection = 900 * time.Millisecond

	// likeValidTime is the plausibility cutoff for Date headers: instants
	// before 2021-01-01 cannot be a current server clock and are treated
	// as parser garbage.
	likeValidTime = 1609459200

	// localTimeWait bounds the best-effort local time resolve after a
	// zone change.
	localTimeWait = 5 * time.Second

	// RequestsPerMinute is the documented free-tier budget of the
	// service. Begin refuses with ErrRateLimited once the local budget
	// is spent.
	RequestsPerMinute = 45
)

// Progress checkpoints. Body lines fill the span between progressHeaders and
// progressComplete evenly.
const (
	progressNone        = 0
	progressConnecting  = 10
	progressRequestSent = 20
	progressReceiving   = 30
	progressHeaders     = 40
	progressComplete    = 100
	bodySpan            = progressComplete - progressHeaders
)

// ProgressFunc observes state transitions and progress changes.
type ProgressFunc func(state State, progress int)

// CompleteFunc receives the final result of a successful request. It is
// never invoked on failure; callers poll Err for that.
type CompleteFunc func(result Result, err RequestError)

// Client resolves the device's approximate location and local time zone over
// a single TCP connection, advanced cooperatively from the host's loop. At
// most one request is in flight per Client; it is not safe for concurrent
// use.
type Client struct {
	tr      transport.Transport
	link    transport.Link
	clk     clock.Service
	limiter *rate.Limiter

	state         State
	err           RequestError
	progress      int
	timeout       time.Duration
	startTime     time.Time
	lastActivity  time.Time
	executionTime time.Duration

	useHTTPTime bool
	autoSetTime bool
	language    string
	fields      protocol.FieldSet

	// currentOffset persists across requests so an unchanged offset does
	// not trigger a redundant zone reconfiguration.
	currentOffset int

	result Result

	reader        protocol.LineReader
	linesReceived int
	headersParsed bool
	httpDateSet   bool
	requestID     string

	progressCb ProgressFunc
	completeCb CompleteFunc
}

// New builds a client over explicit capabilities. Pass fakes in tests.
func New(tr transport.Transport, link transport.Link, clk clock.Service) *Client {
	return &Client{
		tr:            tr,
		link:          link,
		clk:           clk,
		limiter:       rate.NewLimiter(rate.Every(time.Minute/RequestsPerMinute), RequestsPerMinute),
		state:         StateIdle,
		err:           ErrNone,
		timeout:       DefaultTimeout,
		useHTTPTime:   true,
		currentOffset: InvalidOffset,
		fields:        protocol.DefaultFields(),
	}
}

// NewDefault builds a client wired to the real TCP transport, the host
// interface link check and the system clock.
func NewDefault() *Client {
	return New(transport.NewTCP(), transport.InterfaceLink{}, clock.NewSystem())
}

// Begin starts an asynchronous request. It returns false, leaving any
// in-flight request untouched, when one is already running; otherwise a
// false return means the request failed immediately and Err holds why.
func (c *Client) Begin(opts Options) bool {
	if c.IsRunning() {
		return false
	}

	c.result = Result{UTCOffset: InvalidOffset}
	c.err = ErrNone
	c.progress = progressNone
	c.startTime = time.Now()
	c.lastActivity = c.startTime
	c.executionTime = 0
	c.autoSetTime = opts.AutoSetTime
	if opts.AutoSetTime {
		c.useHTTPTime = true
	}
	c.language = opts.Language
	c.fields = protocol.DefaultFields()
	if opts.WithStatus {
		c.fields = c.fields.WithStatus()
	}
	c.reader.Reset()
	c.linesReceived = 0
	c.headersParsed = false
	c.httpDateSet = false
	c.requestID = uuid.NewString()

	// Failures before the dial never touch the transport.
	if c.link == nil || !c.link.Up() {
		c.err = ErrNoConnection
		c.setState(StateError)
		return false
	}
	if c.limiter != nil && !c.limiter.Allow() {
		c.err = ErrRateLimited
		c.setState(StateError)
		return false
	}

	logging.LogConnection(c.requestID, protocol.ServiceHost, "dialing")
	if !c.tr.Connect(protocol.ServiceHost, protocol.ServicePort) {
		c.fail(ErrHTTP)
		return false
	}

	c.setState(StateConnecting)
	c.setProgress(progressConnecting)
	return true
}

// Process advances the request by one cooperative step, consuming only bytes
// and time already available. It is a no-op outside a running request; the
// host calls it from its loop at any cadence.
func (c *Client) Process() {
	if !c.IsRunning() {
		return
	}

	now := time.Now()
	if now.Sub(c.lastActivity) > c.timeout {
		logging.Warn("Request timed out",
			zap.String("request_id", c.requestID),
			zap.String("state", c.state.String()))
		c.fail(ErrTimeout)
		return
	}

	switch c.state {
	case StateConnecting:
		if c.tr.Connected() {
			c.sendRequest()
		} else if now.Sub(c.startTime) > connectTimeout {
			c.fail(ErrTimeout)
		}

	case StateReceiving:
		c.processResponse()

	case StateAllParsed, StateSettingTime:
		c.complete()
	}
}

// Stop cancels any in-flight request, closing the transport and discarding
// partial results. Always safe to call.
func (c *Client) Stop() {
	c.tr.Close()
	c.reader.Reset()
	c.setState(StateIdle)
}

// IsRunning reports whether a request is in flight.
func (c *Client) IsRunning() bool {
	return c.state != StateIdle && c.state != StateCompleted && c.state != StateError
}

// State returns the current state machine position.
func (c *Client) State() State { return c.state }

// Progress returns the advisory completion percentage (0-100).
func (c *Client) Progress() int { return c.progress }

// Result returns the outcome of the last request. Meaningful only once
// State is StateCompleted; check Result().Valid().
func (c *Client) Result() Result { return c.result }

// Err returns the error of the last request, ErrNone on success.
func (c *Client) Err() RequestError { return c.err }

// SetTimeout sets the overall inactivity timeout for subsequent requests.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// OnProgress registers the progress observer. It fires on every state
// transition and every progress change.
func (c *Client) OnProgress(cb ProgressFunc) { c.progressCb = cb }

// OnComplete registers the completion observer. It fires exactly once per
// successful request, after the final progress notification.
func (c *Client) OnComplete(cb CompleteFunc) { c.completeCb = cb }

// EnableHTTPTime controls the coarse clock correction from the response's
// Date header. On by default; AutoSetTime forces it on per request.
func (c *Client) EnableHTTPTime(enable bool) { c.useHTTPTime = enable }

// SetRateLimiter replaces the client-side request budget. Pass nil to
// disable local rate limiting.
func (c *Client) SetRateLimiter(l *rate.Limiter) { c.limiter = l }

// UseClock replaces the time source. NewDefault wires the host system
// clock; hosts with RTC hardware inject their own service here.
func (c *Client) UseClock(clk clock.Service) {
	if clk != nil {
		c.clk = clk
	}
}

// LastExecutionTime returns the duration of the last completed request.
func (c *Client) LastExecutionTime() time.Duration { return c.executionTime }

// sendRequest performs the Connecting -> Receiving transition: one buffered
// write of the full request, never chunked across polls.
func (c *Client) sendRequest() {
	c.setState(StateSendingRequest)
	req := protocol.BuildRequest(c.fields, c.language)
	if _, err := c.tr.Write(req); err != nil {
		logging.Error("Request write failed",
			zap.String("request_id", c.requestID),
			zap.Error(err))
		c.fail(ErrHTTP)
		return
	}
	logging.LogConnection(c.requestID, protocol.ServiceHost, "request sent")
	c.setProgress(progressRequestSent)
	c.setState(StateReceiving)
	c.setProgress(progressReceiving)
}

// processResponse drains the bytes the transport has buffered, routing
// completed lines to the header scanner or the positional field parser.
func (c *Client) processResponse() {
	for c.tr.Available() > 0 {
		b, ok := c.tr.ReadByte()
		if !ok {
			break
		}
		line, done := c.reader.Feed(b)
		if !done {
			continue
		}

		if !c.headersParsed {
			if line == "" {
				c.headersParsed = true
				c.setProgress(progressHeaders)
			} else {
				c.scanHeader(line)
			}
			continue
		}

		if !c.consumeBodyLine(line) {
			return
		}
		if c.linesReceived >= c.fields.Count() {
			c.finishParse()
			return
		}
	}

	// Peer gone mid-response: an error only once at least one field had
	// arrived. With zero fields the request stays open and the overall
	// timeout decides.
	if !c.tr.Connected() && c.tr.Available() == 0 &&
		c.linesReceived > 0 && c.linesReceived < c.fields.Count() {
		logging.Warn("Connection closed mid-response",
			zap.String("request_id", c.requestID),
			zap.Int("lines_received", c.linesReceived),
			zap.Int("lines_expected", c.fields.Count()))
		c.fail(ErrHTTP)
	}
}

// scanHeader applies the coarse clock correction from the first plausible
// Date header, at most once per request.
func (c *Client) scanHeader(line string) {
	if !c.useHTTPTime || c.httpDateSet {
		return
	}
	value, ok := protocol.DateHeaderValue(line)
	if !ok {
		return
	}
	t, err := protocol.ParseHTTPDate(value)
	if err != nil {
		logging.Debug("Unparseable Date header",
			zap.String("request_id", c.requestID),
			zap.String("value", value))
		return
	}
	if t.Unix() <= likeValidTime {
		logging.Warn("Implausible Date header ignored",
			zap.String("request_id", c.requestID),
			zap.Time("parsed", t))
		return
	}

	correction := httpCorrection + time.Since(c.startTime)
	c.setClock(t, correction.Microseconds())
	c.httpDateSet = true
	logging.LogClockCorrection(c.requestID, "coarse",
		zap.Time("instant", t),
		zap.Duration("correction", correction))
}

// consumeBodyLine decodes one positional field. Any failure, including a
// blank line where a field was expected, aborts the whole parse.
func (c *Client) consumeBodyLine(line string) bool {
	if line == "" {
		c.fail(ErrParse)
		return false
	}
	field, ok := c.fields.At(c.linesReceived)
	if !ok {
		c.fail(ErrParse)
		return false
	}
	if err := c.applyField(field, line); err != nil {
		logging.Error("Body line decode failed",
			zap.String("request_id", c.requestID),
			zap.Int("index", c.linesReceived),
			zap.String("field", field.String()),
			zap.Error(err))
		c.fail(ErrParse)
		return false
	}
	logging.LogResponseLine(c.requestID, c.linesReceived, field.String(), line)
	c.linesReceived++
	c.setProgress(progressHeaders + c.linesReceived*bodySpan/c.fields.Count())
	return true
}

// applyField stores one decoded value into the in-progress result.
func (c *Client) applyField(field protocol.Field, line string) error {
	switch field {
	case protocol.FieldStatus:
		if line != protocol.StatusSuccess {
			return errServiceStatus(line)
		}
	case protocol.FieldCountry:
		c.result.Country = line
	case protocol.FieldCity:
		c.result.City = line
	case protocol.FieldLatitude:
		c.result.Latitude = protocol.ParseCoordinate(line)
	case protocol.FieldLongitude:
		c.result.Longitude = protocol.ParseCoordinate(line)
	case protocol.FieldTimezone:
		c.result.Timezone = line
	case protocol.FieldOffset:
		v, err := protocol.ParseOffset(line)
		if err != nil {
			return err
		}
		c.result.UTCOffset = v
	case protocol.FieldQuery:
		c.result.IP = line
	}
	return nil
}

// finishParse runs once the final expected field decoded: the result becomes
// valid and, when requested, the fine clock correction fires. Completion
// itself happens on the next poll.
func (c *Client) finishParse() {
	c.result.valid = true
	c.setState(StateAllParsed)
	if c.autoSetTime && c.result.OffsetValid() {
		c.setState(StateSettingTime)
		c.configureZone()
	}
}

// complete is the single-step finalize: close the transport, stamp the
// execution duration, notify.
func (c *Client) complete() {
	c.tr.Close()
	c.executionTime = time.Since(c.startTime)
	c.setProgress(progressComplete)
	c.setState(StateCompleted)
	logging.Info("Request completed",
		zap.String("request_id", c.requestID),
		zap.Duration("duration", c.executionTime))
	if c.completeCb != nil {
		c.completeCb(c.result, ErrNone)
	}
}

func (c *Client) fail(err RequestError) {
	c.err = err
	c.setState(StateError)
	c.tr.Close()
}

// setState performs a transition, refreshing the activity deadline and
// notifying the progress observer. No-op when the state is unchanged.
func (c *Client) setState(s State) {
	if c.state == s {
		return
	}
	c.state = s
	c.lastActivity = time.Now()
	logging.LogStateChange(c.requestID, s.String(), c.progress)
	if c.progressCb != nil {
		c.progressCb(c.state, c.progress)
	}
}

// setProgress records a progress change, refreshing the activity deadline
// and notifying the observer. No-op when unchanged.
func (c *Client) setProgress(p int) {
	if c.progress == p {
		return
	}
	c.progress = p
	c.lastActivity = time.Now()
	if c.progressCb != nil {
		c.progressCb(c.state, c.progress)
	}
}

type errServiceStatus string

func (e errServiceStatus) Error() string {
	return "service reported status " + string(e)
}
