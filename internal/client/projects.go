package client

import (
	"context"

	"github.com/fivetwenty-io/paykit/internal/http"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

const projectsResource = "projects"

// ProjectsClient implements paykit.ProjectsClient.
type ProjectsClient struct {
	requester http.Requester
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(requester http.Requester) *ProjectsClient {
	return &ProjectsClient{
		requester: requester,
	}
}

// Create implements paykit.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, request *paykit.ProjectCreateRequest) paykit.Result[paykit.Project] {
	return paykit.Decode[paykit.Project](c.requester.Post(ctx, collectionPath(projectsResource), request))
}

// Get implements paykit.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, id string) paykit.Result[paykit.Project] {
	if id == "" {
		return missingID[paykit.Project]("project")
	}

	return paykit.Decode[paykit.Project](c.requester.Get(ctx, resourcePath(projectsResource, id), nil))
}

// List implements paykit.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, params *paykit.QueryParams) paykit.Result[paykit.ListResponse[paykit.Project]] {
	return paykit.Decode[paykit.ListResponse[paykit.Project]](
		c.requester.Get(ctx, collectionPath(projectsResource), queryValues(params)),
	)
}

// Update implements paykit.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, id string, request *paykit.ProjectUpdateRequest) paykit.Result[paykit.Project] {
	if id == "" {
		return missingID[paykit.Project]("project")
	}

	return paykit.Decode[paykit.Project](c.requester.Put(ctx, resourcePath(projectsResource, id), request))
}

// Delete implements paykit.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, id string) paykit.Result[paykit.DeleteResponse] {
	if id == "" {
		return missingID[paykit.DeleteResponse]("project")
	}

	return paykit.Decode[paykit.DeleteResponse](c.requester.Delete(ctx, resourcePath(projectsResource, id)))
}
