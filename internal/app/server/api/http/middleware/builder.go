package middleware

import "github.com/danielgtaylor/huma/v2"

// Container accumulates the middleware chain for one handler at a time.
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.mws = append(c.mws, mw)
}

// GetAllAndClear hands out the accumulated chain and resets the container
// so the next handler starts from an empty chain.
func (c *Container) GetAllAndClear() huma.Middlewares {
	mws := c.mws
	c.mws = nil
	return mws
}
