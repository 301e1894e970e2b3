// Package wire decodes the fixed-layout headers that sit underneath the
// centrifuge's variable-layout records: Ethernet, ARP, IPv4, IPv6, TCP,
// UDP, ICMPv4, Linux cooked capture, and the cjdns beacon header.
//
// Every Parse function is bounds-checked against the remaining input and
// never panics or retains the input slice beyond what it copies out.
package wire

import "errors"

// ErrTruncated is returned whenever a header doesn't fit in the remaining
// bytes. It is the wire-level analogue of centrifuge.InvalidPacket.
var ErrTruncated = errors.New("wire: truncated packet")
