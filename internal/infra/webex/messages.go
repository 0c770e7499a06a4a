package webex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aalvaropc/wxsend/internal/domain"
	"github.com/aalvaropc/wxsend/internal/infra/httpclient"
	"github.com/aalvaropc/wxsend/internal/ports"
)

const unreadableBody = "Failed to read response text"

var _ ports.MessageSender = (*Client)(nil)

// SendMessage posts msg as a multipart form with the file attached. The
// response body is only read for error reporting.
func (c *Client) SendMessage(ctx context.Context, msg domain.Message) (domain.SendResult, error) {
	const op = "webex.send_message"

	spec := domain.RequestSpec{
		Name:    "send_message",
		Method:  domain.MethodPost,
		URL:     c.baseURL + "/messages",
		Headers: domain.Headers{"Authorization": c.authHeader()},
		Body: domain.BodySpec{
			Type: domain.BodyMultipart,
			Fields: []domain.FormField{
				{Name: "toPersonId", Value: msg.ToPersonID},
				{Name: "text", Value: msg.Text},
			},
			Files: []domain.FormFile{{Name: "files", Path: msg.FilePath}},
		},
	}

	req, err := httpclient.BuildRequest(ctx, spec)
	if err != nil {
		return domain.SendResult{}, err
	}

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		return domain.SendResult{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindTransport,
			Err:  fmt.Errorf("failed to send POST request: %w", err),
		}
	}

	c.logger.Debug("webex.send_message.response",
		"status", resp.Status,
		"duration", resp.Duration)

	if !resp.Success() {
		body := string(resp.BodyBytes)
		if resp.BodyErr != nil {
			body = unreadableBody
		}
		return domain.SendResult{}, &domain.OpError{
			Op:     op,
			Kind:   domain.KindProtocol,
			Status: resp.Status,
			Body:   body,
			Err:    fmt.Errorf("POST request failed with status %d %s: %s", resp.Status, http.StatusText(resp.Status), body),
		}
	}

	return domain.SendResult{
		StatusCode: resp.Status,
		Duration:   resp.Duration,
	}, nil
}
