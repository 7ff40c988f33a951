// Package fakebackend is an in-memory studio backend.
//
// It answers the API the studio CLI uses, keeping everything in memory.
// It is for tests and demonstrations of the CLI without model providers.
package fakebackend

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/evaluations"
	"github.com/opst/synthstudio/api-types/exports"
	"github.com/opst/synthstudio/api-types/files"
	"github.com/opst/synthstudio/api-types/jobs"
	"github.com/opst/synthstudio/api-types/models"
	"github.com/opst/synthstudio/api-types/providers"
	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/api-types/usecases"
	"github.com/opst/synthstudio/pkg/submission"
	"github.com/opst/synthstudio/pkg/utils/echoutil"
)

// Backend is the state of the fake backend.
//
// Exported fields can be modified before serving. After that, use methods.
type Backend struct {
	UseCases   []usecases.UseCase
	Topics     map[string][]string
	Examples   map[string][]synthesis.Record
	Prompts    map[string]string
	Schema     string
	Catalog    models.Catalog
	Parameters synthesis.ModelParameters

	// Files are entries of project directories, by directory path. "" is the project root.
	Files map[string][]files.File

	// Contents are records in JSON files of the project, by file path.
	Contents map[string][]synthesis.Record

	// Progression is statuses which a generation job goes through, one per read of the dataset.
	// The last one stays.
	Progression []jobs.Status

	// Now tells the time for timestamps.
	Now func() time.Time

	mu          sync.Mutex
	datasets    []datasets.Detail
	generated   map[string][]synthesis.Record
	reads       map[string]int
	evaluations []evaluations.Detail
	exports     []exports.Detail
	credentials map[string]string
	endpoints   []providers.Endpoint
	submitted   []synthesis.Request
}

// New returns a backend with a few use cases, models and project files.
func New() *Backend {
	return &Backend{
		UseCases: []usecases.UseCase{
			{Id: "code_generation", Name: "Code Generation"},
			{Id: "text2sql", Name: "Text to SQL"},
			{Id: usecases.Custom, Name: "Custom"},
		},
		Topics: map[string][]string{
			"code_generation": {"Algorithms", "Async Programming", "Data Structures"},
			"text2sql":        {"Aggregations", "Joins"},
		},
		Examples: map[string][]synthesis.Record{
			"code_generation": {
				{"question": "How do you reverse a list in Python?", "solution": "Use reversed() or slicing with [::-1]."},
			},
			"text2sql": {
				{"question": "How many customers are there?", "solution": "SELECT COUNT(*) FROM customers;"},
			},
		},
		Prompts: map[string]string{
			"code_generation": "Create programming questions and answers with runnable code.",
			"text2sql":        "Create natural language questions and SQL queries answering them.",
			usecases.Custom:   "Create questions and answers.",
		},
		Schema: "CREATE TABLE customers (id INTEGER PRIMARY KEY, name TEXT);",
		Catalog: models.Catalog{Models: map[string][]string{
			"aws_bedrock": {"us.anthropic.claude-3-5-haiku-20241022-v1:0"},
			"openai":      {"gpt-4o", "gpt-4o-mini"},
		}},
		Parameters: synthesis.DefaultModelParameters(),
		Files: map[string][]files.File{
			"": {
				{Path: "data", IsDir: true},
				{Path: "README.md", Size: 120},
			},
			"data": {
				{Path: "data/seeds.json", Size: 256},
			},
		},
		Contents: map[string][]synthesis.Record{
			"data/seeds.json": {
				{"input": "What is a closure?"},
				{"input": "What is a goroutine?"},
			},
		},
		Progression: []jobs.Status{jobs.Scheduling, jobs.Running, jobs.Succeeded},
		Now:         time.Now,
	}
}

// Submitted returns generation requests received so far.
func (b *Backend) Submitted() []synthesis.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.submitted)
}

// Datasets returns dataset records known by the backend.
func (b *Backend) Datasets() []datasets.Detail {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.datasets)
}

// Echo builds a server serving the backend API under root (for example, "/api").
func (b *Backend) Echo(root string, loglevel string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	echoutil.SetLevel(e, loglevel)
	e.Use(echoutil.LogHandlerFunc)

	api := e.Group(strings.TrimSuffix(root, "/"))

	api.GET("/use-cases", b.listUseCases)
	api.GET("/use-cases/:usecase/topics", b.getTopics)
	api.GET("/:usecase/gen_examples", b.getExamples)
	api.GET("/:usecase/gen_prompt", b.getPrompt)
	api.POST("/create_custom_prompt", b.createCustomPrompt)
	api.GET("/sql_schema", b.getSchema)
	api.GET("/model/model_ID", b.getModels)
	api.GET("/model/parameters", b.getParameters)

	api.POST("/synthesis/generate", b.submit(submission.EndpointGenerate))
	api.POST("/synthesis/freeform", b.submit(submission.EndpointFreeform))
	api.POST("/synthesis/evaluate", b.evaluate)
	api.POST("/json/dataset_size", b.datasetSize)
	api.POST("/json/get_content", b.getContent)
	api.POST("/get_project_files", b.listProjectFiles)

	api.GET("/generations/history", b.listDatasets)
	api.GET("/generations/:file", b.getDataset)
	api.DELETE("/generations/:file", b.deleteDataset)
	api.GET("/dataset_details/:file", b.getDatasetContent)
	api.GET("/evaluations/history", b.listEvaluations)
	api.DELETE("/evaluations/:file", b.deleteEvaluation)
	api.GET("/exports/history", b.listExports)
	api.POST("/export_results", b.export)

	api.GET("/credentials", b.listCredentials)
	api.POST("/credentials", b.setCredentials)
	api.GET("/custom_model_endpoints", b.listEndpoints)
	api.GET("/custom_model_endpoints/:id", b.getEndpoint)
	api.PUT("/custom_model_endpoints/:id", b.updateEndpoint)
	api.DELETE("/custom_model_endpoints/:id", b.deleteEndpoint)
	api.POST("/add_model_endpoint", b.addEndpoint)

	api.GET("/synthesis-studio/check-upgrade", b.checkUpgrade)

	return e
}

func param(c echo.Context, name string) string {
	v := c.Param(name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func notFound(format string, args ...any) error {
	return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf(format, args...))
}

func badRequest(format string, args ...any) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func (b *Backend) timestamp() string {
	return b.Now().UTC().Format(time.RFC3339)
}

func (b *Backend) listUseCases(c echo.Context) error {
	return c.JSON(http.StatusOK, usecases.List{UseCases: b.UseCases})
}

func (b *Backend) knownUseCase(useCase string) bool {
	return slices.ContainsFunc(b.UseCases, func(u usecases.UseCase) bool { return u.Id == useCase })
}

func (b *Backend) getTopics(c echo.Context) error {
	uc := param(c, "usecase")
	if !b.knownUseCase(uc) {
		return notFound("use case %s is not found", uc)
	}
	topics := b.Topics[uc]
	if topics == nil {
		topics = []string{}
	}
	return c.JSON(http.StatusOK, usecases.Topics{Topics: topics})
}

func (b *Backend) getExamples(c echo.Context) error {
	uc := param(c, "usecase")
	if !b.knownUseCase(uc) {
		return notFound("use case %s is not found", uc)
	}
	ex := b.Examples[uc]
	if ex == nil {
		ex = []synthesis.Record{}
	}
	return c.JSON(http.StatusOK, usecases.Examples{Examples: ex})
}

func (b *Backend) getPrompt(c echo.Context) error {
	uc := param(c, "usecase")
	if !b.knownUseCase(uc) {
		return notFound("use case %s is not found", uc)
	}
	return c.JSON(http.StatusOK, b.Prompts[uc])
}

func (b *Backend) createCustomPrompt(c echo.Context) error {
	req := synthesis.CustomPromptRequest{}
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.ModelId == "" || req.CustomPrompt == "" {
		return badRequest("model_id and custom_prompt are required")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"generated_prompt": "Create questions and answers. " + req.CustomPrompt,
	})
}

func (b *Backend) getSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, usecases.Schema{Schema: b.Schema})
}

func (b *Backend) getModels(c echo.Context) error {
	return c.JSON(http.StatusOK, b.Catalog)
}

func (b *Backend) getParameters(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Parameters{Parameters: b.Parameters})
}

// rowsFor makes n rows for the topic, shaped like the first example when given.
func rowsFor(topic string, n int, examples []synthesis.Example) []synthesis.Record {
	rows := make([]synthesis.Record, 0, n)
	for i := range n {
		q := fmt.Sprintf("question #%d", i+1)
		if topic != "" {
			q = fmt.Sprintf("%s: question #%d", topic, i+1)
		}
		if len(examples) != 0 {
			q += " like " + examples[0].Question
		}
		rows = append(rows, synthesis.Record{"question": q, "solution": fmt.Sprintf("solution #%d", i+1)})
	}
	return rows
}

func (b *Backend) countRows(paths []string) int {
	n := 0
	for _, p := range paths {
		n += len(b.Contents[p])
	}
	return n
}

// totalRows is how many rows the request generates.
func (b *Backend) totalRows(req synthesis.Request) int {
	if len(req.InputPath) != 0 {
		return b.countRows(req.InputPath)
	}
	if len(req.Topics) != 0 {
		return len(req.Topics) * req.NumQuestions
	}
	return req.NumQuestions
}

func (b *Backend) submit(endpoint string) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := synthesis.Request{}
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.ModelId == "" {
			return badRequest("model_id is required")
		}
		if req.UseCase != "" && !b.knownUseCase(req.UseCase) {
			return badRequest("use case %s is not supported", req.UseCase)
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		b.submitted = append(b.submitted, req)

		if req.IsDemo {
			result := synthesis.Result{Status: "success"}
			if len(req.Topics) != 0 {
				result.Results.ByTopic = map[string][]synthesis.Record{}
				for _, t := range req.Topics {
					result.Results.ByTopic[t] = rowsFor(t, req.NumQuestions, req.Examples)
				}
			} else {
				result.Results.Rows = rowsFor("", b.totalRows(req), req.Examples)
			}
			return c.JSON(http.StatusOK, result)
		}

		prefix := "qa_pairs"
		if endpoint == submission.EndpointFreeform {
			prefix = "freeform_data"
		}
		seq := len(b.submitted)
		file := fmt.Sprintf("%s_%s_%04d.json", prefix, strings.ReplaceAll(req.ModelId, "/", "-"), seq)
		ref := jobs.Reference{JobName: fmt.Sprintf("synthesis_job_%04d", seq), JobId: uuid.NewString()}

		total := b.totalRows(req)
		rows := []synthesis.Record{}
		if len(req.Topics) != 0 {
			for _, t := range req.Topics {
				rows = append(rows, rowsFor(t, req.NumQuestions, req.Examples)...)
			}
		} else {
			rows = rowsFor("", total, req.Examples)
		}
		if b.generated == nil {
			b.generated = map[string][]synthesis.Record{}
		}
		b.generated[file] = rows

		b.datasets = append(b.datasets, datasets.Detail{
			GenerateFileName: file,
			DisplayName:      req.DisplayName,
			ModelId:          req.ModelId,
			InferenceType:    req.InferenceType,
			CaiiEndpoint:     req.CaiiEndpoint,
			UseCase:          req.UseCase,
			Technique:        req.Technique,
			NumQuestions:     req.NumQuestions,
			TotalCount:       total,
			Topics:           datasets.Embedded[[]string]{Value: req.Topics},
			Examples:         datasets.Embedded[[]synthesis.Record]{Value: recordsOf(req)},
			CustomPrompt:     req.CustomPrompt,
			DocPaths:         req.DocPaths,
			InputPaths:       req.InputPath,
			InputKey:         req.InputKey,
			OutputKey:        req.OutputKey,
			OutputValue:      req.OutputValue,
			Schema:           req.Schema,
			ModelParameters:  datasets.Embedded[*synthesis.ModelParameters]{Value: req.ModelParams},
			JobId:            ref.JobId,
			JobName:          ref.JobName,
			JobStatus:        b.statusAt(0),
			Timestamp:        b.timestamp(),
		})

		return c.JSON(http.StatusOK, synthesis.Result{Reference: ref, Status: "success"})
	}
}

func recordsOf(req synthesis.Request) []synthesis.Record {
	recs := make([]synthesis.Record, 0, len(req.Examples)+len(req.ExampleCustom))
	for _, e := range req.Examples {
		recs = append(recs, synthesis.FromExample(e))
	}
	for _, e := range req.ExampleCustom {
		if m, ok := e.(map[string]any); ok {
			recs = append(recs, synthesis.Record(m))
		}
	}
	return recs
}

func (b *Backend) statusAt(read int) jobs.Status {
	if len(b.Progression) == 0 {
		return jobs.Succeeded
	}
	if read >= len(b.Progression) {
		return b.Progression[len(b.Progression)-1]
	}
	return b.Progression[read]
}

func (b *Backend) evaluate(c echo.Context) error {
	req := synthesis.EvaluationRequest{}
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.ModelId == "" || req.ImportPath == "" {
		return badRequest("model_id and import_path are required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rows, ok := b.generated[req.ImportPath]
	if !ok {
		return notFound("%s is not found", req.ImportPath)
	}

	if req.IsDemo {
		scored := make([]synthesis.Record, 0, len(rows))
		for _, r := range rows {
			s := r.Clone()
			s["score"] = 4
			scored = append(scored, s)
		}
		return c.JSON(http.StatusOK, synthesis.Result{
			Status:  "success",
			Results: synthesis.Results{Rows: scored},
		})
	}

	seq := len(b.evaluations) + 1
	ref := jobs.Reference{JobName: fmt.Sprintf("evaluation_job_%04d", seq), JobId: uuid.NewString()}
	b.evaluations = append(b.evaluations, evaluations.Detail{
		EvaluateFileName: fmt.Sprintf("evaluated_%s", req.ImportPath),
		DisplayName:      req.DisplayName,
		ModelId:          req.ModelId,
		InferenceType:    req.InferenceType,
		UseCase:          req.UseCase,
		ImportPath:       req.ImportPath,
		JobId:            ref.JobId,
		JobName:          ref.JobName,
		JobStatus:        jobs.Running,
		Timestamp:        b.timestamp(),
	})
	return c.JSON(http.StatusOK, synthesis.Result{Reference: ref, Status: "success"})
}

func (b *Backend) datasetSize(c echo.Context) error {
	req := synthesis.DatasetSizeRequest{}
	if err := c.Bind(&req); err != nil {
		return err
	}
	for _, p := range req.InputPath {
		if _, ok := b.Contents[p]; !ok {
			return notFound("%s is not found", p)
		}
	}
	return c.JSON(http.StatusOK, map[string]int{"dataset_size": b.countRows(req.InputPath)})
}

func (b *Backend) getContent(c echo.Context) error {
	req := synthesis.ContentRequest{}
	if err := c.Bind(&req); err != nil {
		return err
	}
	rows, ok := b.Contents[req.Path]
	if !ok {
		return notFound("%s is not found", req.Path)
	}
	return c.JSON(http.StatusOK, rows)
}

func (b *Backend) listProjectFiles(c echo.Context) error {
	req := files.ListRequest{}
	if err := c.Bind(&req); err != nil {
		return err
	}
	dir := strings.Trim(req.Path, "/")
	if dir == "." {
		dir = ""
	}
	fs, ok := b.Files[dir]
	if !ok {
		return notFound("directory %s is not found", req.Path)
	}
	return c.JSON(http.StatusOK, files.List{Files: fs})
}

func (b *Backend) listDatasets(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	ds := make([]datasets.Detail, 0, len(b.datasets))
	for _, d := range b.datasets {
		ds = append(ds, b.progressed(d))
	}
	return c.JSON(http.StatusOK, ds)
}

// progressed reports the dataset as of the count of reads so far.
func (b *Backend) progressed(d datasets.Detail) datasets.Detail {
	status := b.statusAt(b.reads[d.GenerateFileName])
	d.JobStatus = status
	completed := 0
	switch status {
	case jobs.Running:
		completed = d.TotalCount / 2
	case jobs.Succeeded:
		completed = d.TotalCount
	}
	d.CompletedRows = &completed
	return d
}

func (b *Backend) findDataset(file string) (int, bool) {
	i := slices.IndexFunc(b.datasets, func(d datasets.Detail) bool { return d.GenerateFileName == file })
	return i, 0 <= i
}

func (b *Backend) getDataset(c echo.Context) error {
	file := param(c, "file")
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.findDataset(file)
	if !ok {
		return notFound("dataset %s is not found", file)
	}
	d := b.progressed(b.datasets[i])
	if b.reads == nil {
		b.reads = map[string]int{}
	}
	b.reads[file] += 1
	return c.JSON(http.StatusOK, d)
}

func (b *Backend) deleteDataset(c echo.Context) error {
	file := param(c, "file")
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.findDataset(file)
	if !ok {
		return notFound("dataset %s is not found", file)
	}
	b.datasets = slices.Delete(b.datasets, i, i+1)
	delete(b.generated, file)
	delete(b.reads, file)
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func (b *Backend) getDatasetContent(c echo.Context) error {
	file := param(c, "file")
	b.mu.Lock()
	defer b.mu.Unlock()
	rows, ok := b.generated[file]
	if !ok {
		return notFound("dataset %s is not found", file)
	}
	return c.JSON(http.StatusOK, datasets.Content{GenerateFileName: file, Rows: rows})
}

func (b *Backend) listEvaluations(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, append([]evaluations.Detail{}, b.evaluations...))
}

func (b *Backend) deleteEvaluation(c echo.Context) error {
	file := param(c, "file")
	b.mu.Lock()
	defer b.mu.Unlock()
	i := slices.IndexFunc(b.evaluations, func(e evaluations.Detail) bool { return e.EvaluateFileName == file })
	if i < 0 {
		return notFound("evaluation %s is not found", file)
	}
	b.evaluations = slices.Delete(b.evaluations, i, i+1)
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func (b *Backend) listExports(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, append([]exports.Detail{}, b.exports...))
}

func (b *Backend) export(c echo.Context) error {
	req := exports.Request{}
	if err := c.Bind(&req); err != nil {
		return err
	}
	if len(req.ExportType) == 0 || req.FilePath == "" {
		return badRequest("export_type and file_path are required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.generated[req.FilePath]; !ok {
		return notFound("%s is not found", req.FilePath)
	}

	resp := map[string]any{}
	for _, t := range req.ExportType {
		switch t {
		case exports.HuggingFace:
			if req.HFConfig == nil {
				return badRequest("hf_config is required")
			}
			seq := len(b.exports) + 1
			name := fmt.Sprintf("export_job_%04d", seq)
			hfPath := fmt.Sprintf("%s/%s", req.HFConfig.Username, req.HFConfig.RepoName)
			b.exports = append(b.exports, exports.Detail{
				DisplayName:       req.DisplayName,
				DisplayExportName: req.HFConfig.RepoName,
				HFExportPath:      hfPath,
				JobName:           name,
				JobStatus:         jobs.Running,
				Timestamp:         b.timestamp(),
			})
			resp["huggingface"] = map[string]string{"job_name": name}
		case exports.S3:
			if req.S3Config == nil {
				return badRequest("s3_config is required")
			}
			resp["s3"] = map[string]string{
				"bucket": req.S3Config.Bucket,
				"key":    req.S3Config.Key,
			}
		default:
			return badRequest("export type %s is not supported", t)
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (b *Backend) listCredentials(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	statuses := make([]providers.CredentialStatus, 0, len(providers.CredentialKeys))
	for _, k := range providers.CredentialKeys {
		_, set := b.credentials[k]
		statuses = append(statuses, providers.CredentialStatus{Key: k, IsSet: set})
	}
	return c.JSON(http.StatusOK, statuses)
}

func (b *Backend) setCredentials(c echo.Context) error {
	req := providers.SetCredentials{}
	if err := c.Bind(&req); err != nil {
		return err
	}
	for k := range req.Credentials {
		if !providers.IsCredentialKey(k) {
			return badRequest("unknown credential key: %s", k)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.credentials == nil {
		b.credentials = map[string]string{}
	}
	result := providers.SetCredentialsResult{}
	for k, v := range req.Credentials {
		if _, ok := b.credentials[k]; ok {
			result.Updated += 1
		} else {
			result.New += 1
		}
		b.credentials[k] = v
	}
	return c.JSON(http.StatusOK, result)
}

func (b *Backend) findEndpoint(id string) (int, bool) {
	i := slices.IndexFunc(b.endpoints, func(e providers.Endpoint) bool { return e.EndpointId == id })
	return i, 0 <= i
}

func (b *Backend) listEndpoints(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	eps := make([]providers.Endpoint, 0, len(b.endpoints))
	for _, e := range b.endpoints {
		eps = append(eps, e.Redacted())
	}
	return c.JSON(http.StatusOK, providers.EndpointList{Endpoints: eps, Total: len(eps)})
}

func (b *Backend) getEndpoint(c echo.Context) error {
	id := param(c, "id")
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.findEndpoint(id)
	if !ok {
		return notFound("model endpoint %s is not found", id)
	}
	return c.JSON(http.StatusOK, b.endpoints[i].Redacted())
}

func (b *Backend) addEndpoint(c echo.Context) error {
	req := providers.AddEndpoint{}
	if err := c.Bind(&req); err != nil {
		return err
	}
	ep := req.EndpointConfig
	if ep.ModelId == "" || ep.ProviderType == "" {
		return badRequest("model_id and provider_type are required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if ep.EndpointId == "" {
		ep.EndpointId = uuid.NewString()
	}
	if _, ok := b.findEndpoint(ep.EndpointId); ok {
		return echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("model endpoint %s already exists", ep.EndpointId))
	}
	ep.CreatedAt = b.timestamp()
	ep.UpdatedAt = ep.CreatedAt
	b.endpoints = append(b.endpoints, ep)
	return c.JSON(http.StatusOK, ep.Redacted())
}

func (b *Backend) updateEndpoint(c echo.Context) error {
	id := param(c, "id")
	req := providers.AddEndpoint{}
	if err := c.Bind(&req); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.findEndpoint(id)
	if !ok {
		return notFound("model endpoint %s is not found", id)
	}
	ep := req.EndpointConfig
	ep.EndpointId = id
	ep.CreatedAt = b.endpoints[i].CreatedAt
	ep.UpdatedAt = b.timestamp()
	b.endpoints[i] = ep
	return c.JSON(http.StatusOK, ep.Redacted())
}

func (b *Backend) deleteEndpoint(c echo.Context) error {
	id := param(c, "id")
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.findEndpoint(id)
	if !ok {
		return notFound("model endpoint %s is not found", id)
	}
	b.endpoints = slices.Delete(b.endpoints, i, i+1)
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func (b *Backend) checkUpgrade(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"updates_available": false})
}
