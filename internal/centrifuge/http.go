package centrifuge

import (
	"bytes"
	"strconv"
	"strings"
)

var httpMethods = map[string]bool{
	"GET": true, "HEAD": true, "POST": true, "PUT": true, "DELETE": true,
	"CONNECT": true, "OPTIONS": true, "TRACE": true, "PATCH": true,
}

// parseHTTP recognizes a single HTTP/1.x request or response: a request or
// status line, a block of header lines, a blank line, then whatever bytes
// remain become the body verbatim (no Content-Length/chunked reassembly,
// matching the "no deep inspection past the first record" Non-goal).
func parseHTTP(data []byte) (HTTP, error) {
	line, rest, ok := takeLine(data)
	if !ok {
		return nil, errWrongProtocol()
	}

	if strings.HasPrefix(line, "HTTP/1.") {
		return parseHTTPResponse(line, rest)
	}

	fields := strings.SplitN(line, " ", 3)
	if len(fields) != 3 || !httpMethods[fields[0]] || !strings.HasPrefix(fields[2], "HTTP/1.") {
		return nil, errWrongProtocol()
	}
	return parseHTTPRequest(fields[0], fields[1], fields[2], rest)
}

func parseHTTPRequest(method, uri, version string, rest []byte) (HTTP, error) {
	minor := httpVersionMinor(version)
	headers, body, ok := parseHTTPHeaders(rest)
	if !ok {
		return nil, errParsingError()
	}

	req := HTTPRequest{Method: method, URI: uri, VersionMinor: minor, Headers: headers, Body: body}
	for _, h := range headers {
		switch strings.ToLower(h.Name) {
		case "host":
			v := h.Value
			req.Host = &v
		case "user-agent":
			v := h.Value
			req.Agent = &v
		case "referer":
			v := h.Value
			req.Referer = &v
		case "authorization":
			v := h.Value
			req.Auth = &v
		case "cookie":
			req.Cookies = append(req.Cookies, h.Value)
		}
	}
	return req, nil
}

func parseHTTPResponse(statusLine string, rest []byte) (HTTP, error) {
	fields := strings.SplitN(statusLine, " ", 3)
	if len(fields) < 2 {
		return nil, errWrongProtocol()
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, errWrongProtocol()
	}
	reason := ""
	if len(fields) == 3 {
		reason = fields[2]
	}

	headers, body, ok := parseHTTPHeaders(rest)
	if !ok {
		return nil, errParsingError()
	}

	return HTTPResponse{
		VersionMinor: httpVersionMinor(fields[0]),
		Code:         code,
		Reason:       reason,
		Headers:      headers,
		Body:         body,
	}, nil
}

func httpVersionMinor(version string) int {
	switch version {
	case "HTTP/1.0":
		return 0
	case "HTTP/1.1":
		return 1
	default:
		return 1
	}
}

// parseHTTPHeaders reads "Name: Value" lines up to the blank line that ends
// the header block, returning the remaining bytes as the body.
func parseHTTPHeaders(data []byte) ([]HeaderField, []byte, bool) {
	var headers []HeaderField

	for {
		line, rest, ok := takeLine(data)
		if !ok {
			return nil, nil, false
		}
		if line == "" {
			return headers, rest, true
		}

		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			return nil, nil, false
		}
		name := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		headers = append(headers, HeaderField{Name: name, Value: value})

		data = rest
	}
}

// takeLine splits off one CRLF- or LF-terminated line.
func takeLine(data []byte) (line string, rest []byte, ok bool) {
	idx := bytes.IndexByte(data, '\n')
	if idx < 0 {
		return "", nil, false
	}
	raw := data[:idx]
	raw = bytes.TrimSuffix(raw, []byte("\r"))
	return string(raw), data[idx+1:], true
}
