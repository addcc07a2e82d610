package queue

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultEndpoint is the hosted cover service.
const DefaultEndpoint = "https://pdf-cover-service.onrender.com"

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("endpoint is required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse endpoint: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q, must be http or https", u.Scheme)
	}

	if u.Host == "" {
		return "", errors.New("endpoint host is required")
	}

	return strings.TrimRight(raw, "/"), nil
}

// ValidateEndpoint reports whether raw can be used as the service base URL.
func ValidateEndpoint(raw string) error {
	_, err := normalizeEndpoint(raw)
	return err
}
