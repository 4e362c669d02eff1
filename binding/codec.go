package binding

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Request is a JSON encoded call into a module.
type Request struct {
	Function string `json:"function"`
	Args     []any  `json:"args"`
}

// Response is the JSON encoded outcome of a call. Exactly one of Result or Error is set.
type Response struct {
	Result any        `json:"result,omitempty"`
	Error  *HostError `json:"error,omitempty"`
}

// DecodeRequest parses a JSON request. Numbers are kept as json.Number so integral arguments are
// not widened to float64 before conversion.
func DecodeRequest(payload []byte) (*Request, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var req Request
	if err := dec.Decode(&req); err != nil {
		return nil, newHostError(SyntaxError, fmt.Errorf("malformed request, %w", err))
	}
	if req.Function == "" {
		return nil, typeErrorf("request is missing a function name")
	}
	return &req, nil
}

// CallJSON decodes a JSON request, invokes it against the caller and encodes the response. Host
// errors are encoded into the response, and the returned error is only set if the response
// itself cannot be encoded.
func CallJSON(c Caller, payload []byte) ([]byte, error) {
	return json.Marshal(Dispatch(c, payload))
}

// Dispatch decodes a JSON request and invokes it against the caller.
func Dispatch(c Caller, payload []byte) *Response {
	req, err := DecodeRequest(payload)
	if err != nil {
		return &Response{Error: translateError(err)}
	}

	res, err := c.Call(req.Function, req.Args...)
	if err != nil {
		return &Response{Error: translateError(err)}
	}
	return &Response{Result: res}
}
