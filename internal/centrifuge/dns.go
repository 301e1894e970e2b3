package centrifuge

import "github.com/miekg/dns"

// parseDNS decodes a DNS message with the teacher's own miekg/dns
// dependency (already in gravwell-gravwell's go.mod and imported by its
// ingest/processors/test_data/plugins/dnslookup.go) rather than a
// hand-rolled decoder: dns.Msg.Unpack handles header parsing, RR framing,
// and compressed-name decompression safely, then either its question
// section (request, QR bit clear) or its answer section (response, QR bit
// set) is translated into this system's DNS/DNSRecord sum type — never
// both, matching structs/dns.rs's split.
func parseDNS(data []byte) (DNS, error) {
	var msg dns.Msg
	if err := msg.Unpack(data); err != nil {
		return nil, errInvalidPacket()
	}

	if !msg.Response {
		questions := make([]DNSQuestion, 0, len(msg.Question))
		for _, q := range msg.Question {
			questions = append(questions, DNSQuestion{
				Name: trimTrailingDot(q.Name),
				Type: DNSQueryType(q.Qtype),
			})
		}
		return DNSRequest{Questions: questions}, nil
	}

	answers := make([]DNSAnswer, 0, len(msg.Answer))
	for _, rr := range msg.Answer {
		answers = append(answers, DNSAnswer{
			Name:   trimTrailingDot(rr.Header().Name),
			Record: decodeDNSRecord(rr),
		})
	}
	return DNSResponse{Answers: answers}, nil
}

// trimTrailingDot strips the root-label trailing dot miekg/dns always
// appends to fully-qualified names, matching the bare "example.com" shape
// structs/dns.rs's `From<RData>` conversions expect.
func trimTrailingDot(name string) string {
	if len(name) > 0 && name[len(name)-1] == '.' {
		return name[:len(name)-1]
	}
	return name
}

func decodeDNSRecord(rr dns.RR) DNSRecord {
	switch v := rr.(type) {
	case *dns.A:
		return DNSRecordA{Addr: v.A}
	case *dns.AAAA:
		return DNSRecordAAAA{Addr: v.AAAA}
	case *dns.CNAME:
		return DNSRecordCNAME{Name: trimTrailingDot(v.Target)}
	case *dns.NS:
		return DNSRecordNS{Name: trimTrailingDot(v.Ns)}
	case *dns.PTR:
		return DNSRecordPTR{Name: trimTrailingDot(v.Ptr)}
	case *dns.TXT:
		return DNSRecordTXT{Text: decodeTXT(v.Txt)}
	default:
		return DNSRecordUnknown{Type: DNSQueryType(rr.Header().Rrtype), Data: rdataBytes(rr)}
	}
}

// decodeTXT concatenates a TXT record's character strings; miekg/dns has
// already split the record into its constituent strings during Unpack. No
// UTF-8 decoding happens here: the strings are used as miekg/dns returns
// them, including any escape sequences it wrote for non-printable bytes.
func decodeTXT(strs []string) string {
	total := 0
	for _, s := range strs {
		total += len(s)
	}
	b := make([]byte, 0, total)
	for _, s := range strs {
		b = append(b, s...)
	}
	return string(b)
}

// rdataBytes re-packs an RR this system doesn't have a dedicated variant
// for, so DNSRecordUnknown still carries the raw RDATA bytes instead of
// silently dropping them.
func rdataBytes(rr dns.RR) []byte {
	buf := make([]byte, dns.Len(rr))
	n, err := dns.PackRR(rr, buf, 0, nil, false)
	if err != nil {
		return nil
	}
	return buf[:n]
}
