// Package geoloc implements an asynchronous client for the ip-api.com line
// geolocation service, with optional system clock and time-zone
// synchronization driven by the response.
//
// # Cooperative Model
//
// The client is built for hosts that drive a polling loop rather than block
// on I/O. A request is started with Begin and advanced one step at a time
// with Process; each step consumes only the bytes the transport already has
// and returns immediately. Locate wraps the same machinery into a blocking
// convenience call.
//
//	c := geoloc.NewDefault()
//	c.OnComplete(func(r geoloc.Result, err geoloc.RequestError) {
//	    fmt.Println(r)
//	})
//	if c.Begin(geoloc.Options{AutoSetTime: true}) {
//	    for c.IsRunning() {
//	        c.Process()
//	        // host does other work here
//	    }
//	}
//
// # State Machine
//
// A request moves through Idle, Connecting, SendingRequest, Receiving,
// AllParsed, SettingTime, Completed and Error. Only Idle, Completed and
// Error accept a new request; Begin while a request is in flight is rejected
// without side effects. Progress is an advisory 0-100 percentage that grows
// monotonically within a request.
//
// # Timeouts
//
// Two bounds apply: a fixed 5 second deadline on the connect phase measured
// from request start, and an overall inactivity timeout (default 15 s)
// re-armed by every state or progress change, so a slow but live transfer is
// not cut off.
//
// # Clock Synchronization
//
// Two independent corrections can fire per request: a coarse one from the
// response's Date header (at most once per request, latency-compensated),
// and a fine time-zone reconfiguration from the parsed UTC offset, which is
// idempotent while the offset stays unchanged across requests.
//
// All external effects go through injected capabilities: transport.Transport
// for the byte stream, transport.Link for the network association check, and
// clock.Service for the wall clock, so the whole state machine is testable
// with fakes.
package geoloc
