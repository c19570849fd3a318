package http

import (
	"fmt"
	"net/url"
)

// BuildURL joins a base URL with a path and merges query parameters into
// whatever query string the base already carries.
func BuildURL(baseURL, path string, queryParams map[string]string) (string, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}

	if path != "" {
		parsedURL.Path = path
	}

	q := parsedURL.Query()
	for key, value := range queryParams {
		q.Set(key, value)
	}
	parsedURL.RawQuery = q.Encode()

	return parsedURL.String(), nil
}
