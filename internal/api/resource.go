package api

import "context"

// Resource binds the generic client to one REST collection
// (e.g. /api/categories) with a typed list element.
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](c *Client, path string) Resource[T] {
	return Resource[T]{client: c, path: path}
}

func (r Resource[T]) List(ctx context.Context, creds Credentials) ([]T, error) {
	var items []T
	if err := r.client.Get(ctx, creds, r.path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r Resource[T]) Create(ctx context.Context, creds Credentials, in any) error {
	return r.client.Post(ctx, creds, r.path, in)
}

func (r Resource[T]) Update(ctx context.Context, creds Credentials, id string, in any) error {
	return r.client.Put(ctx, creds, r.path+"/"+id, in)
}

func (r Resource[T]) Delete(ctx context.Context, creds Credentials, id string) error {
	return r.client.Delete(ctx, creds, r.path+"/"+id)
}
