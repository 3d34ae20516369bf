package transport

import "net"

// InterfaceLink reports the link as up when at least one non-loopback
// interface is up and carries an address. It is the default Link on hosts
// where no richer signal (such as a WiFi association state) exists.
type InterfaceLink struct{}

func (InterfaceLink) Up() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err == nil && len(addrs) > 0 {
			return true
		}
	}
	return false
}
