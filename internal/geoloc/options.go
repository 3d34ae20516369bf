package geoloc

// Options configures one request. The zero value asks for the minimal field
// set with no clock changes beyond the (default-on) HTTP date correction.
type Options struct {
	// AutoSetTime applies the parsed UTC offset to the process time zone
	// after a successful request. It also forces the HTTP date correction
	// on for this request.
	AutoSetTime bool

	// Language is a two-letter response language code (e.g. "ru", "de").
	// Anything that is not exactly two characters is ignored.
	Language string

	// WithStatus requests a leading status field from the service, making
	// the response one line longer. A non-success status fails the request.
	WithStatus bool
}
