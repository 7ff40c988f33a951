package mock

import (
	"context"
	"testing"

	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/evaluations"
	"github.com/opst/synthstudio/api-types/exports"
	"github.com/opst/synthstudio/api-types/files"
	"github.com/opst/synthstudio/api-types/models"
	"github.com/opst/synthstudio/api-types/providers"
	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/api-types/usecases"
	"github.com/opst/synthstudio/cmd/studio/rest"
)

type SubmitArgs struct {
	Endpoint string
	Request  synthesis.Request
}

type UpdateEndpointArgs struct {
	EndpointId string
	Endpoint   providers.Endpoint
}

// New creates a mock of rest.StudioClient.
//
// Set functions to Impl for methods to be called.
// Calling a method without Impl fails the test.
func New(t *testing.T) *mockStudioClient {
	return &mockStudioClient{t: t}
}

type mockStudioClient struct {
	t    *testing.T
	Impl struct {
		ListUseCases       func(ctx context.Context) ([]usecases.UseCase, error)
		GetTopics          func(ctx context.Context, useCase string) ([]string, error)
		GetExamples        func(ctx context.Context, useCase string) ([]synthesis.Record, error)
		GetPrompt          func(ctx context.Context, useCase string) (string, error)
		CreateCustomPrompt func(ctx context.Context, req synthesis.CustomPromptRequest) (string, error)
		GetSchema          func(ctx context.Context) (string, error)
		GetModels          func(ctx context.Context) (models.Catalog, error)
		GetModelParameters func(ctx context.Context) (synthesis.ModelParameters, error)
		Submit             func(ctx context.Context, endpoint string, req synthesis.Request) (synthesis.Result, error)
		DatasetSize        func(ctx context.Context, req synthesis.DatasetSizeRequest) (int, error)
		GetContent         func(ctx context.Context, path string) ([]synthesis.Record, error)
		ListProjectFiles   func(ctx context.Context, path string) ([]files.File, error)
		ListDatasets       func(ctx context.Context) ([]datasets.Detail, error)
		GetDataset         func(ctx context.Context, fileName string) (datasets.Detail, error)
		GetDatasetContent  func(ctx context.Context, fileName string) (datasets.Content, error)
		DeleteDataset      func(ctx context.Context, fileName string) error
		ListEvaluations    func(ctx context.Context) ([]evaluations.Detail, error)
		Evaluate           func(ctx context.Context, req synthesis.EvaluationRequest) (synthesis.Result, error)
		DeleteEvaluation   func(ctx context.Context, fileName string) error
		ListExports        func(ctx context.Context) ([]exports.Detail, error)
		Export             func(ctx context.Context, req exports.Request) (map[string]any, error)
		ListCredentials    func(ctx context.Context) ([]providers.CredentialStatus, error)
		SetCredentials     func(ctx context.Context, credentials map[string]string) (providers.SetCredentialsResult, error)
		ListEndpoints      func(ctx context.Context) ([]providers.Endpoint, error)
		GetEndpoint        func(ctx context.Context, endpointId string) (providers.Endpoint, error)
		AddEndpoint        func(ctx context.Context, endpoint providers.Endpoint) (providers.Endpoint, error)
		UpdateEndpoint     func(ctx context.Context, endpointId string, endpoint providers.Endpoint) (providers.Endpoint, error)
		DeleteEndpoint     func(ctx context.Context, endpointId string) error
		CheckUpgrade       func(ctx context.Context) (map[string]any, error)
	}
	Calls struct {
		ListUseCases       int
		GetTopics          []string
		GetExamples        []string
		GetPrompt          []string
		CreateCustomPrompt []synthesis.CustomPromptRequest
		GetSchema          int
		GetModels          int
		GetModelParameters int
		Submit             []SubmitArgs
		DatasetSize        []synthesis.DatasetSizeRequest
		GetContent         []string
		ListProjectFiles   []string
		ListDatasets       int
		GetDataset         []string
		GetDatasetContent  []string
		DeleteDataset      []string
		ListEvaluations    int
		Evaluate           []synthesis.EvaluationRequest
		DeleteEvaluation   []string
		ListExports        int
		Export             []exports.Request
		ListCredentials    int
		SetCredentials     []map[string]string
		ListEndpoints      int
		GetEndpoint        []string
		AddEndpoint        []providers.Endpoint
		UpdateEndpoint     []UpdateEndpointArgs
		DeleteEndpoint     []string
		CheckUpgrade       int
	}
}

var _ rest.StudioClient = &mockStudioClient{}

func (m *mockStudioClient) ListUseCases(ctx context.Context) ([]usecases.UseCase, error) {
	m.t.Helper()

	m.Calls.ListUseCases += 1
	if m.Impl.ListUseCases == nil {
		m.t.Fatal("ListUseCases is not ready to be called")
	}
	return m.Impl.ListUseCases(ctx)
}

func (m *mockStudioClient) GetTopics(ctx context.Context, useCase string) ([]string, error) {
	m.t.Helper()

	m.Calls.GetTopics = append(m.Calls.GetTopics, useCase)
	if m.Impl.GetTopics == nil {
		m.t.Fatal("GetTopics is not ready to be called")
	}
	return m.Impl.GetTopics(ctx, useCase)
}

func (m *mockStudioClient) GetExamples(ctx context.Context, useCase string) ([]synthesis.Record, error) {
	m.t.Helper()

	m.Calls.GetExamples = append(m.Calls.GetExamples, useCase)
	if m.Impl.GetExamples == nil {
		m.t.Fatal("GetExamples is not ready to be called")
	}
	return m.Impl.GetExamples(ctx, useCase)
}

func (m *mockStudioClient) GetPrompt(ctx context.Context, useCase string) (string, error) {
	m.t.Helper()

	m.Calls.GetPrompt = append(m.Calls.GetPrompt, useCase)
	if m.Impl.GetPrompt == nil {
		m.t.Fatal("GetPrompt is not ready to be called")
	}
	return m.Impl.GetPrompt(ctx, useCase)
}

func (m *mockStudioClient) CreateCustomPrompt(ctx context.Context, req synthesis.CustomPromptRequest) (string, error) {
	m.t.Helper()

	m.Calls.CreateCustomPrompt = append(m.Calls.CreateCustomPrompt, req)
	if m.Impl.CreateCustomPrompt == nil {
		m.t.Fatal("CreateCustomPrompt is not ready to be called")
	}
	return m.Impl.CreateCustomPrompt(ctx, req)
}

func (m *mockStudioClient) GetSchema(ctx context.Context) (string, error) {
	m.t.Helper()

	m.Calls.GetSchema += 1
	if m.Impl.GetSchema == nil {
		m.t.Fatal("GetSchema is not ready to be called")
	}
	return m.Impl.GetSchema(ctx)
}

func (m *mockStudioClient) GetModels(ctx context.Context) (models.Catalog, error) {
	m.t.Helper()

	m.Calls.GetModels += 1
	if m.Impl.GetModels == nil {
		m.t.Fatal("GetModels is not ready to be called")
	}
	return m.Impl.GetModels(ctx)
}

func (m *mockStudioClient) GetModelParameters(ctx context.Context) (synthesis.ModelParameters, error) {
	m.t.Helper()

	m.Calls.GetModelParameters += 1
	if m.Impl.GetModelParameters == nil {
		m.t.Fatal("GetModelParameters is not ready to be called")
	}
	return m.Impl.GetModelParameters(ctx)
}

func (m *mockStudioClient) Submit(ctx context.Context, endpoint string, req synthesis.Request) (synthesis.Result, error) {
	m.t.Helper()

	m.Calls.Submit = append(m.Calls.Submit, SubmitArgs{Endpoint: endpoint, Request: req})
	if m.Impl.Submit == nil {
		m.t.Fatal("Submit is not ready to be called")
	}
	return m.Impl.Submit(ctx, endpoint, req)
}

func (m *mockStudioClient) DatasetSize(ctx context.Context, req synthesis.DatasetSizeRequest) (int, error) {
	m.t.Helper()

	m.Calls.DatasetSize = append(m.Calls.DatasetSize, req)
	if m.Impl.DatasetSize == nil {
		m.t.Fatal("DatasetSize is not ready to be called")
	}
	return m.Impl.DatasetSize(ctx, req)
}

func (m *mockStudioClient) GetContent(ctx context.Context, path string) ([]synthesis.Record, error) {
	m.t.Helper()

	m.Calls.GetContent = append(m.Calls.GetContent, path)
	if m.Impl.GetContent == nil {
		m.t.Fatal("GetContent is not ready to be called")
	}
	return m.Impl.GetContent(ctx, path)
}

func (m *mockStudioClient) ListProjectFiles(ctx context.Context, path string) ([]files.File, error) {
	m.t.Helper()

	m.Calls.ListProjectFiles = append(m.Calls.ListProjectFiles, path)
	if m.Impl.ListProjectFiles == nil {
		m.t.Fatal("ListProjectFiles is not ready to be called")
	}
	return m.Impl.ListProjectFiles(ctx, path)
}

func (m *mockStudioClient) ListDatasets(ctx context.Context) ([]datasets.Detail, error) {
	m.t.Helper()

	m.Calls.ListDatasets += 1
	if m.Impl.ListDatasets == nil {
		m.t.Fatal("ListDatasets is not ready to be called")
	}
	return m.Impl.ListDatasets(ctx)
}

func (m *mockStudioClient) GetDataset(ctx context.Context, fileName string) (datasets.Detail, error) {
	m.t.Helper()

	m.Calls.GetDataset = append(m.Calls.GetDataset, fileName)
	if m.Impl.GetDataset == nil {
		m.t.Fatal("GetDataset is not ready to be called")
	}
	return m.Impl.GetDataset(ctx, fileName)
}

func (m *mockStudioClient) GetDatasetContent(ctx context.Context, fileName string) (datasets.Content, error) {
	m.t.Helper()

	m.Calls.GetDatasetContent = append(m.Calls.GetDatasetContent, fileName)
	if m.Impl.GetDatasetContent == nil {
		m.t.Fatal("GetDatasetContent is not ready to be called")
	}
	return m.Impl.GetDatasetContent(ctx, fileName)
}

func (m *mockStudioClient) DeleteDataset(ctx context.Context, fileName string) error {
	m.t.Helper()

	m.Calls.DeleteDataset = append(m.Calls.DeleteDataset, fileName)
	if m.Impl.DeleteDataset == nil {
		m.t.Fatal("DeleteDataset is not ready to be called")
	}
	return m.Impl.DeleteDataset(ctx, fileName)
}

func (m *mockStudioClient) ListEvaluations(ctx context.Context) ([]evaluations.Detail, error) {
	m.t.Helper()

	m.Calls.ListEvaluations += 1
	if m.Impl.ListEvaluations == nil {
		m.t.Fatal("ListEvaluations is not ready to be called")
	}
	return m.Impl.ListEvaluations(ctx)
}

func (m *mockStudioClient) Evaluate(ctx context.Context, req synthesis.EvaluationRequest) (synthesis.Result, error) {
	m.t.Helper()

	m.Calls.Evaluate = append(m.Calls.Evaluate, req)
	if m.Impl.Evaluate == nil {
		m.t.Fatal("Evaluate is not ready to be called")
	}
	return m.Impl.Evaluate(ctx, req)
}

func (m *mockStudioClient) DeleteEvaluation(ctx context.Context, fileName string) error {
	m.t.Helper()

	m.Calls.DeleteEvaluation = append(m.Calls.DeleteEvaluation, fileName)
	if m.Impl.DeleteEvaluation == nil {
		m.t.Fatal("DeleteEvaluation is not ready to be called")
	}
	return m.Impl.DeleteEvaluation(ctx, fileName)
}

func (m *mockStudioClient) ListExports(ctx context.Context) ([]exports.Detail, error) {
	m.t.Helper()

	m.Calls.ListExports += 1
	if m.Impl.ListExports == nil {
		m.t.Fatal("ListExports is not ready to be called")
	}
	return m.Impl.ListExports(ctx)
}

func (m *mockStudioClient) Export(ctx context.Context, req exports.Request) (map[string]any, error) {
	m.t.Helper()

	m.Calls.Export = append(m.Calls.Export, req)
	if m.Impl.Export == nil {
		m.t.Fatal("Export is not ready to be called")
	}
	return m.Impl.Export(ctx, req)
}

func (m *mockStudioClient) ListCredentials(ctx context.Context) ([]providers.CredentialStatus, error) {
	m.t.Helper()

	m.Calls.ListCredentials += 1
	if m.Impl.ListCredentials == nil {
		m.t.Fatal("ListCredentials is not ready to be called")
	}
	return m.Impl.ListCredentials(ctx)
}

func (m *mockStudioClient) SetCredentials(ctx context.Context, credentials map[string]string) (providers.SetCredentialsResult, error) {
	m.t.Helper()

	m.Calls.SetCredentials = append(m.Calls.SetCredentials, credentials)
	if m.Impl.SetCredentials == nil {
		m.t.Fatal("SetCredentials is not ready to be called")
	}
	return m.Impl.SetCredentials(ctx, credentials)
}

func (m *mockStudioClient) ListEndpoints(ctx context.Context) ([]providers.Endpoint, error) {
	m.t.Helper()

	m.Calls.ListEndpoints += 1
	if m.Impl.ListEndpoints == nil {
		m.t.Fatal("ListEndpoints is not ready to be called")
	}
	return m.Impl.ListEndpoints(ctx)
}

func (m *mockStudioClient) GetEndpoint(ctx context.Context, endpointId string) (providers.Endpoint, error) {
	m.t.Helper()

	m.Calls.GetEndpoint = append(m.Calls.GetEndpoint, endpointId)
	if m.Impl.GetEndpoint == nil {
		m.t.Fatal("GetEndpoint is not ready to be called")
	}
	return m.Impl.GetEndpoint(ctx, endpointId)
}

func (m *mockStudioClient) AddEndpoint(ctx context.Context, endpoint providers.Endpoint) (providers.Endpoint, error) {
	m.t.Helper()

	m.Calls.AddEndpoint = append(m.Calls.AddEndpoint, endpoint)
	if m.Impl.AddEndpoint == nil {
		m.t.Fatal("AddEndpoint is not ready to be called")
	}
	return m.Impl.AddEndpoint(ctx, endpoint)
}

func (m *mockStudioClient) UpdateEndpoint(ctx context.Context, endpointId string, endpoint providers.Endpoint) (providers.Endpoint, error) {
	m.t.Helper()

	m.Calls.UpdateEndpoint = append(m.Calls.UpdateEndpoint, UpdateEndpointArgs{EndpointId: endpointId, Endpoint: endpoint})
	if m.Impl.UpdateEndpoint == nil {
		m.t.Fatal("UpdateEndpoint is not ready to be called")
	}
	return m.Impl.UpdateEndpoint(ctx, endpointId, endpoint)
}

func (m *mockStudioClient) DeleteEndpoint(ctx context.Context, endpointId string) error {
	m.t.Helper()

	m.Calls.DeleteEndpoint = append(m.Calls.DeleteEndpoint, endpointId)
	if m.Impl.DeleteEndpoint == nil {
		m.t.Fatal("DeleteEndpoint is not ready to be called")
	}
	return m.Impl.DeleteEndpoint(ctx, endpointId)
}

func (m *mockStudioClient) CheckUpgrade(ctx context.Context) (map[string]any, error) {
	m.t.Helper()

	m.Calls.CheckUpgrade += 1
	if m.Impl.CheckUpgrade == nil {
		m.t.Fatal("CheckUpgrade is not ready to be called")
	}
	return m.Impl.CheckUpgrade(ctx)
}
