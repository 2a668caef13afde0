package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody is the error envelope used by the backend. FastAPI validation
// errors carry a list in detail, which is left undecoded.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &BackendError{
		StatusCode: resp.StatusCode(),
		Detail:     parseDetail(resp.Body()),
	}
}

func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(eb.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}

func mapTransportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}

func decodeBody(op string, resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrParse, err)
	}
	return nil
}
