// Package config manages the persistent CLI defaults for the geolocation
// client: response language, lookup timeout, and time synchronization
// behavior.
//
// Configuration lives in a YAML file in the platform's conventional config
// directory (XDG on Linux, ~/.config on macOS, %LOCALAPPDATA% on Windows).
// A missing file yields defaults; flags always override file values.
package config
