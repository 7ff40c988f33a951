package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/opst/synthstudio/api-types/providers"
)

func (c *client) ListCredentials(ctx context.Context) ([]providers.CredentialStatus, error) {
	statuses := []providers.CredentialStatus{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("credentials"), nil, &statuses,
		MessageFor{
			Status5xx: "server error while listing credentials",
		},
	); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (c *client) SetCredentials(ctx context.Context, credentials map[string]string) (providers.SetCredentialsResult, error) {
	result := providers.SetCredentialsResult{}
	if err := requestJson(
		ctx, c, http.MethodPost, c.apipath("credentials"),
		providers.SetCredentials{Credentials: credentials}, &result,
		MessageFor{
			Status4xx: "credentials are rejected",
			Status5xx: "server error while setting credentials",
		},
	); err != nil {
		return providers.SetCredentialsResult{}, err
	}
	return result, nil
}

func (c *client) ListEndpoints(ctx context.Context) ([]providers.Endpoint, error) {
	list := providers.EndpointList{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("custom_model_endpoints"), nil, &list,
		MessageFor{
			Status5xx: "server error while listing model endpoints",
		},
	); err != nil {
		return nil, err
	}
	if list.Endpoints == nil {
		return []providers.Endpoint{}, nil
	}
	return list.Endpoints, nil
}

func (c *client) GetEndpoint(ctx context.Context, endpointId string) (providers.Endpoint, error) {
	ep := providers.Endpoint{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("custom_model_endpoints", endpointId), nil, &ep,
		MessageFor{
			Status4xx: fmt.Sprintf("model endpoint %s is not found", endpointId),
			Status5xx: "server error while fetching the model endpoint",
		},
	); err != nil {
		return providers.Endpoint{}, err
	}
	return ep, nil
}

func (c *client) AddEndpoint(ctx context.Context, endpoint providers.Endpoint) (providers.Endpoint, error) {
	ep := providers.Endpoint{}
	if err := requestJson(
		ctx, c, http.MethodPost, c.apipath("add_model_endpoint"),
		providers.AddEndpoint{EndpointConfig: endpoint}, &ep,
		MessageFor{
			Status4xx: "the model endpoint is rejected",
			Status5xx: "server error while adding the model endpoint",
		},
	); err != nil {
		return providers.Endpoint{}, err
	}
	return ep, nil
}

func (c *client) UpdateEndpoint(ctx context.Context, endpointId string, endpoint providers.Endpoint) (providers.Endpoint, error) {
	ep := providers.Endpoint{}
	if err := requestJson(
		ctx, c, http.MethodPut, c.apipath("custom_model_endpoints", endpointId),
		providers.AddEndpoint{EndpointConfig: endpoint}, &ep,
		MessageFor{
			Status4xx: fmt.Sprintf("model endpoint %s is not updated", endpointId),
			Status5xx: "server error while updating the model endpoint",
		},
	); err != nil {
		return providers.Endpoint{}, err
	}
	return ep, nil
}

func (c *client) DeleteEndpoint(ctx context.Context, endpointId string) error {
	return c.delete(
		ctx, c.apipath("custom_model_endpoints", endpointId),
		MessageFor{
			Status4xx: fmt.Sprintf("model endpoint %s is not found", endpointId),
			Status5xx: "server error while deleting the model endpoint",
		},
	)
}
