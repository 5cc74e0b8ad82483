package net

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptrace"
	"net/url"
	"time"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
	"github.com/gummi-coder/Novora-sub009/util"
)

type UserAgent string

const DefaultUserAgent UserAgent = "Novora-Webhooks/0.1"

var ErrEmptyEndpoint = errors.New("endpoint url is required")

type Dispatcher struct {
	client          *http.Client
	userAgent       string
	maxResponseSize int64
	logger          log.StdLogger
}

// NewDispatcher builds a dispatcher. A zero maxResponseSize falls back to
// MAX_RESPONSE_SIZE and an empty userAgent to DefaultUserAgent.
func NewDispatcher(userAgent string, maxResponseSize int64, logger log.StdLogger) *Dispatcher {
	if util.IsStringEmpty(userAgent) {
		userAgent = string(DefaultUserAgent)
	}

	if maxResponseSize <= 0 {
		maxResponseSize = novora.MAX_RESPONSE_SIZE
	}

	return &Dispatcher{
		client:          &http.Client{},
		userAgent:       userAgent,
		maxResponseSize: maxResponseSize,
		logger:          logger,
	}
}

// SendRequest sends payload to endpoint with headers set on top of the
// content type and user agent. Non-2xx responses are not errors; only
// transport failures are.
func (d *Dispatcher) SendRequest(ctx context.Context, endpoint string, method novora.HttpMethod, payload []byte, headers http.Header, timeout time.Duration) (*Response, error) {
	r := &Response{}

	if util.IsStringEmpty(endpoint) {
		r.Error = ErrEmptyEndpoint.Error()
		return r, ErrEmptyEndpoint
	}

	if timeout <= 0 {
		timeout = novora.HTTP_TIMEOUT_IN_DURATION
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, string(method), endpoint, bytes.NewReader(payload))
	if err != nil {
		d.logger.WithError(err).Error("error occurred while creating request")
		r.Error = err.Error()
		return r, err
	}

	for k, v := range headers {
		for _, vv := range v {
			req.Header.Add(k, vv)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", d.userAgent)

	r.RequestHeader = req.Header
	r.URL = req.URL
	r.Method = req.Method

	trace := &httptrace.ClientTrace{
		GotConn: func(connInfo httptrace.GotConnInfo) {
			if connInfo.Conn != nil {
				r.IP = connInfo.Conn.RemoteAddr().String()
			}
		},
	}

	req = req.WithContext(httptrace.WithClientTrace(req.Context(), trace))

	response, err := d.client.Do(req)
	if err != nil {
		d.logger.WithError(err).Error("error sending request to webhook endpoint")
		r.Error = err.Error()
		return r, err
	}
	defer response.Body.Close()

	updateDispatchHeaders(r, response)

	body, err := io.ReadAll(io.LimitReader(response.Body, d.maxResponseSize))
	r.Body = body
	if err != nil {
		d.logger.WithError(err).Error("couldn't read response body")
		r.Error = err.Error()
		return r, err
	}

	return r, nil
}

type Response struct {
	Status         string
	StatusCode     int
	Method         string
	URL            *url.URL
	RequestHeader  http.Header
	ResponseHeader http.Header
	Body           []byte
	IP             string
	Error          string
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

func updateDispatchHeaders(r *Response, res *http.Response) {
	r.Status = res.Status
	r.StatusCode = res.StatusCode
	r.ResponseHeader = res.Header
}
