package ctct

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/constantcontact/go-sdk/pkg/config"
	httpclient "github.com/constantcontact/go-sdk/pkg/http"
	"go.uber.org/zap"
)

// restClient is the request/decode/error pipeline every service shares.
// It builds the URL from the endpoint registry, attaches the caller's
// bearer token, sends via the transport, and translates any non-2xx
// response into an *APIError at this single point.
type restClient struct {
	cfg        *config.Config
	httpClient *httpclient.Client
	logger     *zap.Logger
}

func newRestClient(cfg *config.Config, hc *httpclient.Client, logger *zap.Logger) *restClient {
	return &restClient{
		cfg:        cfg,
		httpClient: hc,
		logger:     logger,
	}
}

// resourceURL resolves a path template (plus optional id substitution)
// against the API base and merges query parameters.
func (r *restClient) resourceURL(pathTemplate string, id string, queryParams map[string]string) (string, error) {
	path := pathTemplate
	if id != "" {
		path = fmt.Sprintf(pathTemplate, id)
	}
	endpoint, err := httpclient.BuildURL(r.cfg.APIBaseURL, path, queryParams)
	if err != nil {
		return "", fmt.Errorf("failed to build URL: %w", err)
	}
	return endpoint, nil
}

func bearerHeaders(accessToken string) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", accessToken),
	}
}

// do sends a request with a bearer token and an optional JSON body, and
// decodes a 2xx response into result (when result is non-nil). Non-2xx
// responses come back as *APIError; transport failures are wrapped as-is
// since there is no response to parse.
func (r *restClient) do(ctx context.Context, accessToken, method, endpoint string, body interface{}, result interface{}) error {
	resp, err := r.httpClient.Do(httpclient.RequestOptions{
		Method:  method,
		URL:     endpoint,
		Headers: bearerHeaders(accessToken),
		Body:    body,
		Context: ctx,
	})
	if err != nil {
		r.logger.Error("Request failed", zap.Error(err), zap.String("method", method), zap.String("endpoint", endpoint))
		return fmt.Errorf("request failed: %w", err)
	}

	if err := r.checkStatus(method, endpoint, resp); err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, result); err != nil {
		r.logger.Error("Failed to parse response", zap.Error(err), zap.String("endpoint", endpoint))
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// doDelete issues a DELETE and reports whether the server answered 204.
// Other 2xx statuses return false with no error; non-2xx is an *APIError.
func (r *restClient) doDelete(ctx context.Context, accessToken, endpoint string) (bool, error) {
	resp, err := r.httpClient.Delete(ctx, endpoint, bearerHeaders(accessToken))
	if err != nil {
		r.logger.Error("Delete request failed", zap.Error(err), zap.String("endpoint", endpoint))
		return false, fmt.Errorf("request failed: %w", err)
	}
	if err := r.checkStatus(http.MethodDelete, endpoint, resp); err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusNoContent, nil
}

// postMultipart uploads a file as multipart/form-data with the fields the
// bulk-import endpoint expects: file_name, lists (comma-separated), and the
// streamed data part.
func (r *restClient) postMultipart(ctx context.Context, accessToken, endpoint, fileName string, file io.Reader, lists []string, result interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("file_name", fileName); err != nil {
		return fmt.Errorf("failed to write file_name field: %w", err)
	}
	if err := writer.WriteField("lists", strings.Join(lists, ",")); err != nil {
		return fmt.Errorf("failed to write lists field: %w", err)
	}
	part, err := writer.CreateFormFile("data", fileName)
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to stream file payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	headers := bearerHeaders(accessToken)
	headers["Content-Type"] = writer.FormDataContentType()

	resp, err := r.httpClient.Do(httpclient.RequestOptions{
		Method:  http.MethodPost,
		URL:     endpoint,
		Headers: headers,
		Body:    buf.Bytes(),
		Context: ctx,
	})
	if err != nil {
		r.logger.Error("Multipart upload failed", zap.Error(err), zap.String("endpoint", endpoint))
		return fmt.Errorf("request failed: %w", err)
	}

	if err := r.checkStatus(http.MethodPost, endpoint, resp); err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (r *restClient) checkStatus(method, endpoint string, resp *httpclient.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	r.logger.Error("Request returned error status",
		zap.Int("status_code", resp.StatusCode),
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.String("response", string(resp.Body)))
	return newAPIError(
		fmt.Sprintf("%s %s failed", method, endpoint),
		resp.StatusCode,
		endpoint,
		resp.Body,
	)
}
