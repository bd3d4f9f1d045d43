package main

import "strings"

type requestKind int

const (
	requestInvalid requestKind = iota
	requestGet
	requestShutdown
	requestQuit
)

// request is one classified input line. For a GET, arg carries the raw
// argument text; it is parsed by the GET handler so that a malformed
// line number can still be answered with ERR. For an invalid line, raw
// keeps the original text for diagnostics.
type request struct {
	kind requestKind
	arg  string
	raw  string
}

// parseRequest classifies one input line into a protocol request.
// Keyword matching is exact; only GET takes an argument.
func parseRequest(raw string) request {
	line := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(line, "GET"):
		return request{kind: requestGet, arg: strings.TrimSpace(strings.TrimPrefix(line, "GET"))}
	case line == "SHUTDOWN":
		return request{kind: requestShutdown}
	case line == "QUIT":
		return request{kind: requestQuit}
	default:
		return request{kind: requestInvalid, raw: raw}
	}
}
