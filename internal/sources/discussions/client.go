// Package discussions fetches game submissions from the GitHub Discussions
// GraphQL API. A submission is a discussion in the configured repository
// whose category marks it as a game post; its body embeds the structured
// payload.
package discussions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/game-club/library/internal/transport"
	"github.com/game-club/library/pkg/constants"
	"github.com/game-club/library/pkg/errors"
)

// GraphQLURL is the GitHub GraphQL API endpoint.
const GraphQLURL = "https://api.github.com/graphql"

// discussionsQuery fetches the most recent discussion nodes with the fields
// the record builder needs.
const discussionsQuery = `
query ($owner: String!, $repo: String!) {
  repository(owner: $owner, name: $repo) {
    discussions(first: %d, categoryId: null) {
      nodes {
        title
        body
        updatedAt
        createdAt
        category { name }
      }
    }
  }
}`

// Discussion is one discussion node as returned by the API.
type Discussion struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
	Category  Category `json:"category"`
}

// Category is the discussion category label.
type Category struct {
	Name string `json:"name"`
}

// Client fetches discussions for one repository.
type Client struct {
	// APIURL may be overridden in tests.
	APIURL string

	owner  string
	repo   string
	client *transport.Client
}

// New creates a discussions client authenticated with the given token.
func New(owner, repo, token string) *Client {
	return &Client{
		APIURL: GraphQLURL,
		owner:  owner,
		repo:   repo,
		client: transport.New(&transport.BearerAuth{Token: token}),
	}
}

// graphQLRequest is the GraphQL POST envelope.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphQLResponse is the GraphQL response envelope.
type graphQLResponse struct {
	Data   json.RawMessage   `json:"data"`
	Errors []json.RawMessage `json:"errors"`
}

// discussionsData is the shape of the data field for the discussions query.
type discussionsData struct {
	Repository struct {
		Discussions struct {
			Nodes []Discussion `json:"nodes"`
		} `json:"discussions"`
	} `json:"repository"`
}

// Submissions fetches the most recent discussions and returns only those in
// the game submission category.
func (c *Client) Submissions(ctx context.Context) ([]Discussion, error) {
	query := fmt.Sprintf(discussionsQuery, constants.DiscussionPageSize)
	payload, err := json.Marshal(graphQLRequest{
		Query: query,
		Variables: map[string]any{
			"owner": c.owner,
			"repo":  c.repo,
		},
	})
	if err != nil {
		return nil, errors.WrapParse("json", "graphql request", err)
	}

	resp, err := c.client.Post(ctx, c.APIURL, payload)
	if err != nil {
		return nil, errors.WrapAPI("github", 0, err)
	}

	var envelope graphQLResponse
	if err := transport.DecodeResponse(resp, "github", &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Errors) > 0 {
		detail, _ := json.Marshal(envelope.Errors)
		return nil, errors.NewAPIError("github", 0, string(detail))
	}

	var data discussionsData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, errors.WrapParse("json", "graphql data", err)
	}

	var submissions []Discussion
	for _, node := range data.Repository.Discussions.Nodes {
		if node.Category.Name == constants.SubmissionCategory {
			submissions = append(submissions, node)
		}
	}
	return submissions, nil
}
