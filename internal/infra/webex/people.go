package webex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/wxsend/internal/domain"
	"github.com/aalvaropc/wxsend/internal/infra/httpclient"
	"github.com/aalvaropc/wxsend/internal/ports"
)

var _ ports.PersonDirectory = (*Client)(nil)

// LookupPerson resolves email to the first matching person. It is a single
// attempt; no error class is retried.
func (c *Client) LookupPerson(ctx context.Context, email string) (domain.Person, error) {
	const op = "webex.lookup_person"

	spec := domain.RequestSpec{
		Name:   "lookup_person",
		Method: domain.MethodGet,
		URL:    c.baseURL + "/people?" + url.Values{"email": {email}}.Encode(),
		Headers: domain.Headers{
			"Authorization": c.authHeader(),
			"Content-Type":  "application/json",
		},
		Body: domain.BodySpec{Type: domain.BodyNone},
	}

	req, err := httpclient.BuildRequest(ctx, spec)
	if err != nil {
		return domain.Person{}, err
	}

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		return domain.Person{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindTransport,
			Err:  fmt.Errorf("failed to send GET request: %w", err),
		}
	}
	if resp.BodyErr != nil {
		return domain.Person{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindTransport,
			Err:  fmt.Errorf("failed to read response text: %w", resp.BodyErr),
		}
	}

	c.logger.Debug("webex.lookup_person.response",
		"status", resp.Status,
		"duration", resp.Duration,
		"bytes", len(resp.BodyBytes))

	if !resp.Success() {
		body := string(resp.BodyBytes)
		return domain.Person{}, &domain.OpError{
			Op:     op,
			Kind:   domain.KindProtocol,
			Status: resp.Status,
			Body:   body,
			Err:    fmt.Errorf("GET request failed with status %d %s: %s", resp.Status, http.StatusText(resp.Status), body),
		}
	}

	person, err := parsePerson(resp.BodyBytes, email)
	if err != nil {
		return domain.Person{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindData,
			Err:  err,
		}
	}
	return person, nil
}

// parsePerson extracts the first entry of $.items. Only the id is mandatory.
func parsePerson(body []byte, email string) (domain.Person, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.Person{}, fmt.Errorf("failed to parse JSON: %w", err)
	}

	raw, err := jsonpath.Get("$.items", doc)
	if err != nil {
		return domain.Person{}, domain.ErrNoItems
	}
	items, ok := raw.([]any)
	if !ok {
		return domain.Person{}, domain.ErrNoItems
	}
	if len(items) == 0 {
		return domain.Person{}, fmt.Errorf("%w with email: %s", domain.ErrNoPerson, email)
	}

	first := items[0]
	id, ok := lookupString(first, "$.id")
	if !ok {
		return domain.Person{}, domain.ErrNoPersonID
	}

	person := domain.Person{ID: id, Email: email}
	if name, ok := lookupString(first, "$.displayName"); ok {
		person.DisplayName = name
	}
	if primary, ok := lookupString(first, "$.emails[0]"); ok {
		person.Email = primary
	}
	return person, nil
}

func lookupString(doc any, path string) (string, bool) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
