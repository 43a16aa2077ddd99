package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/game-club/library/pkg/errors"
)

// DecodeResponse decodes a JSON response into the target structure. The
// response body is always closed. A status outside the 2xx range yields an
// APIError carrying the body as its message.
func DecodeResponse(resp *http.Response, source string, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &errors.APIError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}
