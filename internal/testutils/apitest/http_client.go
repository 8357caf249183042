package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// HTTPClient drives the router in-process.
type HTTPClient struct {
	router *gin.Engine
	token  string
}

func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{router: router, token: token}
}

type Request struct {
	Method      string
	Path        string
	Body        interface{}
	Headers     map[string]string
	QueryParams map[string]string
}

type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Do performs req against the router.
func (c *HTTPClient) Do(req Request) (*Response, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		if buf, ok := req.Body.(*bytes.Buffer); ok {
			bodyReader = buf
		} else {
			bodyBytes, err := json.Marshal(req.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal request body: %v", err)
			}
			bodyReader = bytes.NewReader(bodyBytes)
		}
	}

	httpReq, err := http.NewRequest(req.Method, req.Path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	if req.Headers == nil || req.Headers["Content-Type"] == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if len(req.QueryParams) > 0 {
		q := httpReq.URL.Query()
		for key, value := range req.QueryParams {
			q.Add(key, value)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, httpReq)

	return &Response{
		StatusCode: w.Code,
		Body:       w.Body.Bytes(),
		Headers:    w.Header(),
	}, nil
}

func (c *HTTPClient) GET(path string, queryParams ...map[string]string) (*Response, error) {
	req := Request{Method: http.MethodGet, Path: path}
	if len(queryParams) > 0 {
		req.QueryParams = queryParams[0]
	}
	return c.Do(req)
}

func (c *HTTPClient) POST(path string, body interface{}) (*Response, error) {
	return c.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

func (c *HTTPClient) PUT(path string, body interface{}) (*Response, error) {
	return c.Do(Request{Method: http.MethodPut, Path: path, Body: body})
}

// POSTFile uploads one file under the given form field.
func (c *HTTPClient) POSTFile(path, field, filename, contentType string, data []byte) (*Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename)}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create form part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write form part: %v", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %v", err)
	}

	return c.Do(Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: map[string]string{"Content-Type": writer.FormDataContentType()},
		Body:    body,
	})
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), string(r.Body))
}
