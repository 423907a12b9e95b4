// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syntax

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/coref-engine/internal/httputil"
	"github.com/pdiddy/coref-engine/internal/tree"
)

// coreNLPProperties asks the server to treat the whole request as a single
// sentence and return its constituency parse.
const coreNLPProperties = `{"annotators":"tokenize,ssplit,pos,parse","outputFormat":"json","ssplit.isOneSentence":"true"}`

// CoreNLP is a Parser backed by a Stanford CoreNLP server.
type CoreNLP struct {
	baseURL    string
	client     *http.Client
	maxRetries int

	username, password string
}

// NewCoreNLP returns a parser for the server at baseURL. A nil client uses
// http.DefaultClient.
func NewCoreNLP(baseURL string, client *http.Client, maxRetries int) *CoreNLP {
	if client == nil {
		client = http.DefaultClient
	}
	return &CoreNLP{
		baseURL:    strings.TrimRight(baseURL, "/"),
		client:     client,
		maxRetries: maxRetries,
	}
}

// WithBasicAuth sets credentials for servers started with -username and
// -password. An empty username disables auth.
func (c *CoreNLP) WithBasicAuth(username, password string) *CoreNLP {
	c.username = username
	c.password = password
	return c
}

type coreNLPResponse struct {
	Sentences []struct {
		Parse string `json:"parse"`
	} `json:"sentences"`
}

// Parse posts the sentence and reads the first sentence's parse.
func (c *CoreNLP) Parse(ctx context.Context, sentence string) (*tree.Tree, error) {
	endpoint := c.baseURL + "/?properties=" + url.QueryEscape(coreNLPProperties)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(sentence))
	if err != nil {
		return nil, fmt.Errorf("building CoreNLP request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := httputil.DoWithRetry(ctx, c.client, req, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("calling CoreNLP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("CoreNLP returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out coreNLPResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding CoreNLP response: %w", err)
	}
	if len(out.Sentences) == 0 || strings.TrimSpace(out.Sentences[0].Parse) == "" {
		return nil, ErrNoParse
	}
	return tree.Parse(out.Sentences[0].Parse)
}
