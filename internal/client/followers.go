package client

import (
	"context"

	"github.com/tictail/tictail-go/internal/resource"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Follower implements tictail.Follower.
type Follower struct {
	*resource.Resource
}

func newFollower(r *resource.Resource) tictail.Follower {
	return &Follower{Resource: r}
}

// Delete implements tictail.Follower.Delete.
func (f *Follower) Delete(ctx context.Context) (bool, error) {
	return resource.Delete(ctx, f.Resource)
}

// FollowersClient implements tictail.FollowersClient.
type FollowersClient struct {
	collection *resource.Collection[tictail.Follower]
}

// NewFollowersClient creates a new followers client under a store URI.
func NewFollowersClient(parent string, transport resource.Transport) *FollowersClient {
	return newFollowersClient(resource.Prefix(parent), transport)
}

func newFollowersClient(parent resource.Parent, transport resource.Transport) *FollowersClient {
	return &FollowersClient{
		collection: resource.NewCollectionUnder(followerKind, parent, transport, newFollower),
	}
}

// URI implements tictail.FollowersClient.URI.
func (c *FollowersClient) URI() string {
	return c.collection.URI()
}

// List implements tictail.FollowersClient.List.
func (c *FollowersClient) List(ctx context.Context, params *tictail.ListParams) ([]tictail.Follower, error) {
	return resource.List(ctx, c.collection, params.ToParams())
}

// Create implements tictail.FollowersClient.Create.
func (c *FollowersClient) Create(ctx context.Context, body map[string]interface{}) (tictail.Follower, error) {
	return resource.Create(ctx, c.collection, body)
}

// Delete implements tictail.FollowersClient.Delete.
func (c *FollowersClient) Delete(ctx context.Context, id string) (bool, error) {
	return resource.DeleteByID(ctx, c.collection, id)
}
