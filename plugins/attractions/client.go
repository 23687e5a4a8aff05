// Package attractions exposes the availability resolver as chat tools.
package attractions

import (
	"context"
	"errors"

	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/core"
	"github.com/va6996/tripmate/tools"
)

// Client answers attraction questions with text ready to hand to a model.
type Client struct {
	resolver  *core.Resolver
	formatter *core.Formatter
}

// NewClient creates a client over resolver and registers its tools.
func NewClient(resolver *core.Resolver, gk *genkit.Genkit, registry *tools.Registry) *Client {
	c := &Client{
		resolver:  resolver,
		formatter: core.NewFormatter(resolver.Catalog().Currency()),
	}

	NewCheckAttractionTool(c, gk, registry)
	NewListAttractionsTool(c, gk, registry)
	NewAttractionInfoTool(c, gk, registry)

	return c
}

// Resolver returns the underlying resolver.
func (c *Client) Resolver() *core.Resolver {
	return c.resolver
}

// Formatter returns the formatter used for tool output.
func (c *Client) Formatter() *core.Formatter {
	return c.formatter
}

// Check renders availability of identifier on date. An unknown identifier is
// rendered with the valid ids rather than returned as an error.
func (c *Client) Check(ctx context.Context, identifier, date string) (string, error) {
	res, err := c.resolver.Resolve(ctx, identifier, date)
	if err != nil {
		var nf *core.NotFoundError
		if errors.As(err, &nf) {
			return c.formatter.NotFound(nf), nil
		}
		return "", err
	}
	return c.formatter.Availability(res), nil
}

// List renders every attraction in catalog order.
func (c *Client) List() string {
	return c.formatter.Listing(c.resolver.ListAll())
}

// Info renders one attraction, the whole catalog when identifier is empty, or
// suggestions when it is unknown.
func (c *Client) Info(identifier string) (string, error) {
	if catalog.TrimInput(identifier) == "" {
		return c.List(), nil
	}
	a, err := c.resolver.Info(identifier)
	if err != nil {
		var nf *core.NotFoundError
		if errors.As(err, &nf) {
			return c.formatter.Suggestions(nf, c.resolver.ListAll()), nil
		}
		return "", err
	}
	return c.formatter.Attraction(a), nil
}
