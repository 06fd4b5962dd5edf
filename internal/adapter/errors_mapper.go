// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen caps how much of a provider error body ends up in the
// wrapped error (and therefore in logs).
const maxErrorBodyLen = 256

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if statusIsSuccess(status) {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}
	if body == "" {
		body = http.StatusText(status)
	}

	return fmt.Errorf("%w: http %d: %s", ErrProviderRejected, status, body)
}

func statusIsSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
