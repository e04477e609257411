package filestore

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPayload is returned when a payload decodes to zero bytes
var ErrEmptyPayload = errors.New("file payload is empty")

// DecodeBase64 accepts a bare base64 string or a data URL such as
// "data:application/pdf;base64,JVBERi0x..."
func DecodeBase64(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 || !strings.HasSuffix(payload[:idx], ";base64") {
			return nil, errors.New("data URL is not base64 encoded")
		}
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}
	return data, nil
}
