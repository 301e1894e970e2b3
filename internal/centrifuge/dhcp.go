package centrifuge

import "net"

const (
	dhcpFixedHeaderLen = 236
	dhcpMinMessageLen  = 240 // fixed header + 4-byte magic cookie
)

var dhcpMagicCookie = [4]byte{99, 130, 83, 99}

// DHCP option tags this system retains.
const (
	optPad             = 0
	optRouter          = 3
	optDomainNameServer = 6
	optHostname        = 12
	optRequestedIP     = 50
	optMessageType     = 53
	optEnd             = 255
)

// parseDHCP decodes a BOOTP/DHCP message: the fixed 236-byte header, the
// magic cookie, then the option TLVs. Only the options this system cares
// about (hostname, requested IP, router list, DNS list, message type) are
// retained; everything else is skipped over.
func parseDHCP(data []byte) (DHCP, error) {
	if len(data) < dhcpMinMessageLen {
		return nil, errInvalidPacket()
	}
	if [4]byte(data[236:240]) != dhcpMagicCookie {
		return nil, errWrongProtocol()
	}

	packet := DHCPPacket{
		CIAddr: net.IPv4(data[12], data[13], data[14], data[15]),
		YIAddr: net.IPv4(data[16], data[17], data[18], data[19]),
		SIAddr: net.IPv4(data[20], data[21], data[22], data[23]),
		CHAddr: append([]byte(nil), data[28:44]...),
	}

	msgType, ok := parseDHCPOptions(data[dhcpMinMessageLen:], &packet)
	if !ok {
		return DHCPUnknown{Packet: packet}, nil
	}

	switch msgType {
	case 1:
		return DHCPDiscover{Packet: packet}, nil
	case 2:
		return DHCPOffer{Packet: packet}, nil
	case 3:
		return DHCPRequest{Packet: packet}, nil
	case 4:
		return DHCPDecline{Packet: packet}, nil
	case 5:
		return DHCPAck{Packet: packet}, nil
	case 6:
		return DHCPNak{Packet: packet}, nil
	case 7:
		return DHCPRelease{Packet: packet}, nil
	case 8:
		return DHCPInform{Packet: packet}, nil
	default:
		return DHCPUnknown{Packet: packet}, nil
	}
}

// parseDHCPOptions walks the option TLVs, filling in the retained fields of
// packet and returning the message-type option's value, if present.
func parseDHCPOptions(data []byte, packet *DHCPPacket) (byte, bool) {
	var msgType byte
	haveMsgType := false

	i := 0
	for i < len(data) {
		tag := data[i]
		if tag == optEnd {
			break
		}
		if tag == optPad {
			i++
			continue
		}
		if i+1 >= len(data) {
			break
		}
		length := int(data[i+1])
		valStart := i + 2
		if valStart+length > len(data) {
			break
		}
		value := data[valStart : valStart+length]

		switch tag {
		case optMessageType:
			if length >= 1 {
				msgType = value[0]
				haveMsgType = true
			}
		case optHostname:
			s := string(value)
			packet.Hostname = &s
		case optRequestedIP:
			if length == 4 {
				ip := net.IPv4(value[0], value[1], value[2], value[3])
				packet.RequestedIPAddress = &ip
			}
		case optRouter:
			packet.Router = parseIPv4List(value)
		case optDomainNameServer:
			packet.DomainNameServer = parseIPv4List(value)
		}

		i = valStart + length
	}

	return msgType, haveMsgType
}

func parseIPv4List(value []byte) []net.IP {
	var ips []net.IP
	for i := 0; i+4 <= len(value); i += 4 {
		ips = append(ips, net.IPv4(value[i], value[i+1], value[i+2], value[i+3]))
	}
	return ips
}
