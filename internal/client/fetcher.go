package client

import "context"

// Fetcher retrieves the raw bytes of a site resource such as data/members.json
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}
