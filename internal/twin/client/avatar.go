package client

import (
	"context"
	"net/http"
)

// AvatarPath is the static asset probed for the assistant avatar.
const AvatarPath = "/avatar.png"

// ProbeAvatar reports whether the avatar image at url is available.
// Any error counts as unavailable.
func (c *Client) ProbeAvatar(ctx context.Context, url string) bool {
	if url == "" {
		url = c.baseURL + AvatarPath
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
