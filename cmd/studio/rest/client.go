package rest

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/evaluations"
	"github.com/opst/synthstudio/api-types/exports"
	"github.com/opst/synthstudio/api-types/files"
	"github.com/opst/synthstudio/api-types/models"
	"github.com/opst/synthstudio/api-types/providers"
	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/api-types/usecases"
	sprof "github.com/opst/synthstudio/cmd/studio/config/profiles"
	"github.com/opst/synthstudio/pkg/buildtime"
	"github.com/opst/synthstudio/pkg/utils"
	"github.com/opst/synthstudio/pkg/utils/retry"
)

// RequestIdHeader carries an id for each request, to match client and server logs.
const RequestIdHeader = "X-Request-Id"

type StudioClient interface {
	// ListUseCases returns use cases known by the backend.
	//
	// This is retried with the client's retry policy.
	ListUseCases(ctx context.Context) ([]usecases.UseCase, error)

	// GetTopics returns default topics of the use case.
	GetTopics(ctx context.Context, useCase string) ([]string, error)

	// GetExamples returns default examples of the use case.
	GetExamples(ctx context.Context, useCase string) ([]synthesis.Record, error)

	// GetPrompt returns the default prompt of the use case.
	GetPrompt(ctx context.Context, useCase string) (string, error)

	// CreateCustomPrompt asks the model to write a prompt from instructions.
	CreateCustomPrompt(ctx context.Context, req synthesis.CustomPromptRequest) (string, error)

	// GetSchema returns the default SQL schema.
	GetSchema(ctx context.Context) (string, error)

	// GetModels returns model ids per provider.
	GetModels(ctx context.Context) (models.Catalog, error)

	// GetModelParameters returns default model parameters.
	GetModelParameters(ctx context.Context) (synthesis.ModelParameters, error)

	// Submit posts a generation job.
	//
	// # Args
	//
	// - ctx
	//
	// - endpoint: path of the generation API, "synthesis/generate" or "synthesis/freeform".
	//
	// - req: the job
	//
	// # Returns
	//
	// - synthesis.Result: preview rows (demo mode) or job reference.
	//
	// - error
	Submit(ctx context.Context, endpoint string, req synthesis.Request) (synthesis.Result, error)

	// DatasetSize counts rows of input files for the custom workflow.
	DatasetSize(ctx context.Context, req synthesis.DatasetSizeRequest) (int, error)

	// GetContent reads records in a JSON file of the project.
	GetContent(ctx context.Context, path string) ([]synthesis.Record, error)

	// ListProjectFiles lists files in the directory of the project.
	ListProjectFiles(ctx context.Context, path string) ([]files.File, error)

	// ListDatasets returns generation history.
	ListDatasets(ctx context.Context) ([]datasets.Detail, error)

	// GetDataset returns the dataset record.
	GetDataset(ctx context.Context, fileName string) (datasets.Detail, error)

	// GetDatasetContent returns generated rows of the dataset.
	GetDatasetContent(ctx context.Context, fileName string) (datasets.Content, error)

	// DeleteDataset deletes the dataset.
	DeleteDataset(ctx context.Context, fileName string) error

	// ListEvaluations returns evaluation history.
	ListEvaluations(ctx context.Context) ([]evaluations.Detail, error)

	// Evaluate posts an evaluation job of a dataset.
	Evaluate(ctx context.Context, req synthesis.EvaluationRequest) (synthesis.Result, error)

	// DeleteEvaluation deletes the evaluation.
	DeleteEvaluation(ctx context.Context, fileName string) error

	// ListExports returns export history.
	ListExports(ctx context.Context) ([]exports.Detail, error)

	// Export posts an export job of a dataset.
	Export(ctx context.Context, req exports.Request) (map[string]any, error)

	// ListCredentials returns which credential keys are set.
	ListCredentials(ctx context.Context) ([]providers.CredentialStatus, error)

	// SetCredentials sets credential values.
	SetCredentials(ctx context.Context, credentials map[string]string) (providers.SetCredentialsResult, error)

	// ListEndpoints returns custom model endpoints.
	ListEndpoints(ctx context.Context) ([]providers.Endpoint, error)

	// GetEndpoint returns the custom model endpoint.
	GetEndpoint(ctx context.Context, endpointId string) (providers.Endpoint, error)

	// AddEndpoint registers a new custom model endpoint.
	AddEndpoint(ctx context.Context, endpoint providers.Endpoint) (providers.Endpoint, error)

	// UpdateEndpoint replaces the custom model endpoint.
	UpdateEndpoint(ctx context.Context, endpointId string, endpoint providers.Endpoint) (providers.Endpoint, error)

	// DeleteEndpoint deletes the custom model endpoint.
	DeleteEndpoint(ctx context.Context, endpointId string) error

	// CheckUpgrade asks whether a new version of the studio is available.
	CheckUpgrade(ctx context.Context) (map[string]any, error)
}

// DefaultUseCasePolicy retries listing use cases 3 times,
// waiting min(1s * 2^n, 30s) between attempts.
var DefaultUseCasePolicy = retry.Policy{
	MaxAttempts: 3,
	Interval:    retry.CappedExponential(1*time.Second, 30*time.Second),
	Retryable:   IsRetryable,
}

type client struct {
	httpclient *http.Client
	api        string
	useCases   retry.Policy
	requestId  func() string
}

type ClientOption func(*client) *client

// WithUseCasePolicy sets the retry policy of ListUseCases.
func WithUseCasePolicy(p retry.Policy) ClientOption {
	return func(c *client) *client {
		c.useCases = p
		return c
	}
}

// WithRequestId replaces the generator of request ids.
func WithRequestId(gen func() string) ClientOption {
	return func(c *client) *client {
		c.requestId = gen
		return c
	}
}

// NewClient creates a client for the profile.
//
// # Returns
//
// - StudioClient
//
// - error: If given profile is invalid, ErrProfileInvalid is returned.
func NewClient(prof *sprof.StudioProfile, options ...ClientOption) (StudioClient, error) {
	if err := prof.Verify(); err != nil {
		return nil, err
	}
	httpclient := new(http.Client)

	if prof.Cert.CA != "" {
		hc, err := trustCa(httpclient, []string{prof.Cert.CA})
		if err != nil {
			return nil, err
		}
		httpclient = hc
	}

	c := &client{
		httpclient: httpclient,
		api:        strings.TrimSuffix(prof.ApiRoot, "/"),
		useCases:   DefaultUseCasePolicy,
		requestId:  uuid.NewString,
	}
	for _, o := range options {
		c = o(c)
	}

	return c, nil
}

// build URL with path. Each element is escaped.
func (c *client) apipath(path ...string) string {
	path = utils.Map(path, func(p string) string {
		return url.PathEscape(strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/"))
	})

	return strings.Join(append([]string{c.api}, path...), "/")
}

// endpoint builds URL from a path which may contain "/".
func (c *client) endpoint(path string) string {
	return c.apipath(strings.Split(strings.Trim(path, "/"), "/")...)
}

// request sends a request. body is sent as JSON unless it is nil.
func (c *client) request(ctx context.Context, method string, target string, body any) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", buildtime.Get().UserAgent())
	req.Header.Set(RequestIdHeader, c.requestId())

	return c.httpclient.Do(req)
}

// requestJson sends a request and unmarshals the JSON response into out.
func requestJson[T any](
	ctx context.Context, c *client,
	method string, target string, body any,
	out *T, messageFor MessageFor,
) error {
	resp, err := c.request(ctx, method, target, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return unmarshalJsonResponse(resp, out, messageFor)
}

func serverError(resp int) string {
	return fmt.Sprintf("server error (status code = %d)", resp)
}

func trustCa(hc *http.Client, cacerts []string) (*http.Client, error) {
	if len(cacerts) <= 0 {
		return hc, nil
	}

	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}

	tran, ok := hc.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("failed to add ca cert")
	}
	tran = tran.Clone()

	tcc := tran.TLSClientConfig.Clone()
	if tcc == nil {
		tcc = &tls.Config{}
	}

	rootcas := tcc.RootCAs
	if rootcas == nil {
		rootcas = x509.NewCertPool()
		tcc.RootCAs = rootcas
	}
	for _, ca := range cacerts {
		bin, err := base64.StdEncoding.DecodeString(ca)
		if err != nil {
			return nil, err
		}

		if !rootcas.AppendCertsFromPEM(bin) {
			return nil, fmt.Errorf("failed to add cert")
		}
	}

	tran.TLSClientConfig = tcc
	hc.Transport = tran
	return hc, nil
}
