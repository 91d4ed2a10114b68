package api

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apierrors "github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/errors"
	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

// ContentTypeJSON is the default Content-Type sent with every request.
const ContentTypeJSON = "application/json"

// Do performs exactly one HTTP call and always returns an envelope; it never
// panics and never surfaces a Go error. A nil opts is a plain GET.
func Do(ctx context.Context, b Backend, path string, opts *types.RequestOptions) *types.RawResponse {
	if opts == nil {
		opts = &types.RequestOptions{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	reqID := uuid.NewString()
	target := b.BaseURL + path

	method, err := types.NormalizeMethod(opts.Method)
	if err != nil {
		log.Warn().Str("request_id", reqID).Str("method", opts.Method).Str("url", target).Msg("request rejected")
		return types.Failure[json.RawMessage](0, err.Error())
	}
	if b.Rest == nil {
		return types.Failure[json.RawMessage](0, "Network error: no transport configured")
	}

	r := b.Rest.R().
		SetContext(ctx).
		SetHeaders(MergeHeaders(opts.Headers))

	switch method {
	case http.MethodPost, http.MethodPut:
		body, err := encodeBody(opts.Data)
		if err != nil {
			log.Warn().Err(err).Str("request_id", reqID).Str("method", method).Str("url", target).Msg("request body not encodable")
			return types.Failure[json.RawMessage](0, err.Error())
		}
		r.SetBody(body)
	case http.MethodGet:
		if q := queryOf(opts.Data); len(q) > 0 {
			r.SetQueryParamsFromValues(q)
		}
	}

	start := time.Now()
	resp, err := r.Execute(method, target)
	elapsed := time.Since(start)

	if err != nil {
		cerr := apierrors.NewNetworkError(err)
		observe(b, method, cerr.Category.String(), elapsed)
		log.Error().Err(err).
			Str("request_id", reqID).
			Str("method", method).
			Str("url", target).
			Dur("elapsed", elapsed).
			Msg("request failed")
		return types.Failure[json.RawMessage](0, cerr.Error())
	}

	status := resp.StatusCode()
	body := resp.Body()
	if status >= 200 && status < 300 {
		observe(b, method, "success", elapsed)
		log.Debug().
			Str("request_id", reqID).
			Str("method", method).
			Str("url", target).
			Int("status_code", status).
			Dur("elapsed", elapsed).
			Msg("request completed")
		data := rawData(body)
		return &types.RawResponse{
			Success: true,
			Data:    &data,
			Message: messageOf(body),
			Status:  status,
		}
	}

	herr := apierrors.NewHTTPError(status, body, method+" "+path)
	observe(b, method, herr.Category.String(), elapsed)
	levelFor(herr.Category).
		Str("request_id", reqID).
		Str("method", method).
		Str("url", target).
		Int("status_code", status).
		Dur("elapsed", elapsed).
		Msg("request returned error status")
	return types.Failure[json.RawMessage](status, herr.Error())
}

// MergeHeaders lays caller headers over the default JSON content type. Keys
// are compared canonically, so "content-type" replaces the default too. When
// several caller keys name the same header, they are applied in sorted key
// order and the last one wins ("content-type" over "Content-Type").
func MergeHeaders(headers map[string]string) map[string]string {
	merged := map[string]string{"Content-Type": ContentTypeJSON}
	for _, k := range slices.Sorted(maps.Keys(headers)) {
		merged[http.CanonicalHeaderKey(k)] = headers[k]
	}
	return merged
}

// encodeBody turns the payload into bytes. A missing payload is sent as an
// empty JSON object.
func encodeBody(data any) ([]byte, error) {
	switch v := data.(type) {
	case nil:
		return []byte("{}"), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	case string:
		return []byte(v), nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return b, nil
}

// queryOf maps GET payloads that are naturally key/value onto query parameters.
func queryOf(data any) url.Values {
	switch v := data.(type) {
	case url.Values:
		return v
	case map[string]string:
		q := url.Values{}
		for k, s := range v {
			q.Set(k, s)
		}
		return q
	}
	return nil
}

// rawData keeps the body as-is when it is JSON. Empty bodies become null and
// non-JSON bodies are wrapped as a JSON string so the envelope stays encodable.
func rawData(body []byte) json.RawMessage {
	if len(body) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(body) {
		return json.RawMessage(append([]byte(nil), body...))
	}
	quoted, _ := json.Marshal(string(body))
	return json.RawMessage(quoted)
}

func messageOf(body []byte) string {
	var m struct {
		Message json.RawMessage `json:"message"`
	}
	if json.Unmarshal(body, &m) != nil || len(m.Message) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(m.Message, &s) != nil {
		return ""
	}
	return s
}

func levelFor(c apierrors.ErrorCategory) *zerolog.Event {
	if c == apierrors.ClientError {
		return log.Warn()
	}
	return log.Error()
}

func observe(b Backend, method, outcome string, elapsed time.Duration) {
	if b.Observe != nil {
		b.Observe(method, outcome, elapsed)
	}
}
