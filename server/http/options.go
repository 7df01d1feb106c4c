package http

import "context"

type Option func(*Options)

type Options struct {
	Address    string
	ToolPrefix string
	Context    context.Context
}

func WithAddress(address string) Option {
	return func(o *Options) {
		o.Address = address
	}
}

func WithToolPrefix(prefix string) Option {
	return func(o *Options) {
		o.ToolPrefix = prefix
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Address:    ":8000",
		ToolPrefix: "/tools",
		Context:    context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
