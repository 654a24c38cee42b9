package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

func TestProjectsClient(t *testing.T) {
	t.Parallel()

	renamed := "Storefront EU"

	RunOperationTests(t, NewTestOrganizationClient, []TestOperation[*OrganizationClient, paykit.Project]{
		{
			Name:           "create",
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/v1/projects",
			ExpectedBody:   `{"name":"Storefront","mode":"test"}`,
			StatusCode:     http.StatusCreated,
			Response:       `{"id":"proj_1","name":"Storefront","mode":"test"}`,
			Call: func(ctx context.Context, client *OrganizationClient) paykit.Result[paykit.Project] {
				return client.Projects().Create(ctx, &paykit.ProjectCreateRequest{Name: "Storefront", Mode: "test"})
			},
			Check: func(t *testing.T, project paykit.Project) {
				t.Helper()
				assert.Equal(t, "proj_1", project.ID)
			},
		},
		{
			Name:           "get",
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/projects/proj_1",
			Response:       `{"id":"proj_1","name":"Storefront","updatedAt":"2024-05-06T07:08:09Z"}`,
			Call: func(ctx context.Context, client *OrganizationClient) paykit.Result[paykit.Project] {
				return client.Projects().Get(ctx, "proj_1")
			},
			Check: func(t *testing.T, project paykit.Project) {
				t.Helper()
				assert.Equal(t, 5, int(project.UpdatedAt.Month()))
			},
		},
		{
			Name:           "update",
			ExpectedMethod: http.MethodPut,
			ExpectedPath:   "/v1/projects/proj_1",
			ExpectedBody:   `{"name":"Storefront EU"}`,
			Response:       `{"id":"proj_1","name":"Storefront EU"}`,
			Call: func(ctx context.Context, client *OrganizationClient) paykit.Result[paykit.Project] {
				return client.Projects().Update(ctx, "proj_1", &paykit.ProjectUpdateRequest{Name: &renamed})
			},
		},
		{
			Name:           "forbidden",
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/projects/proj_2",
			StatusCode:     http.StatusForbidden,
			WantCode:       paykit.CodeForbidden,
			Call: func(ctx context.Context, client *OrganizationClient) paykit.Result[paykit.Project] {
				return client.Projects().Get(ctx, "proj_2")
			},
		},
		{
			Name:     "update without id",
			WantCode: paykit.CodeInvalidRequest,
			Call: func(ctx context.Context, client *OrganizationClient) paykit.Result[paykit.Project] {
				return client.Projects().Update(ctx, "", &paykit.ProjectUpdateRequest{})
			},
		},
	})
}

func TestProjectsClient_ListAndDelete(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, NewTestOrganizationClient, []TestOperation[*OrganizationClient, paykit.ListResponse[paykit.Project]]{
		{
			Name:           "list",
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/projects",
			ExpectedQuery:  "limit=10",
			Response:       `{"data":[{"id":"proj_1"}],"hasMore":false}`,
			Call: func(ctx context.Context, client *OrganizationClient) paykit.Result[paykit.ListResponse[paykit.Project]] {
				return client.Projects().List(ctx, paykit.NewQueryParams().WithLimit(10))
			},
			Check: func(t *testing.T, list paykit.ListResponse[paykit.Project]) {
				t.Helper()
				require.Len(t, list.Data, 1)
				assert.Equal(t, "proj_1", list.Data[0].ID)
			},
		},
	})

	RunOperationTests(t, NewTestOrganizationClient, []TestOperation[*OrganizationClient, paykit.DeleteResponse]{
		{
			Name:           "delete",
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/v1/projects/proj_1",
			Response:       `{"id":"proj_1","deleted":true}`,
			Call: func(ctx context.Context, client *OrganizationClient) paykit.Result[paykit.DeleteResponse] {
				return client.Projects().Delete(ctx, "proj_1")
			},
			Check: func(t *testing.T, deleted paykit.DeleteResponse) {
				t.Helper()
				assert.True(t, deleted.Deleted)
			},
		},
	})
}
