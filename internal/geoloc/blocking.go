package geoloc

import "time"

// DefaultLocateTimeout is the conventional deadline callers pass to Locate.
// Passing 0 keeps the client's configured timeout instead.
const DefaultLocateTimeout = 10 * time.Second

// Locate is the blocking convenience wrapper around Begin and Process. It
// silences registered callbacks for the duration so they cannot fire
// mid-loop, runs the request to completion or to the wall-clock deadline,
// restores callbacks and the configured timeout, and fires the completion
// callback exactly once on success.
//
// A timeout of 0 keeps the previously configured timeout rather than
// disabling it.
func (c *Client) Locate(opts Options, timeout time.Duration) bool {
	if c.IsRunning() {
		return false
	}

	originalTimeout := c.timeout
	if timeout > 0 {
		c.timeout = timeout
	}

	savedProgress := c.progressCb
	savedComplete := c.completeCb
	c.progressCb = nil
	c.completeCb = nil

	success := false
	if c.Begin(opts) {
		start := time.Now()
		for c.IsRunning() {
			c.Process()

			if timeout > 0 && time.Since(start) > timeout {
				c.err = ErrTimeout
				c.Stop()
				break
			}

			// Minimal cooperative yield.
			time.Sleep(time.Millisecond)
		}
		success = c.state == StateCompleted
	}

	c.progressCb = savedProgress
	c.completeCb = savedComplete
	c.timeout = originalTimeout

	if success && savedComplete != nil {
		savedComplete(c.result, ErrNone)
	}
	return success
}
