// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package foodfacts

import (
	"net/http"

	"cloudeng.io/net/ratecontrol"
)

// DefaultHost is the public Open Food Facts endpoint.
const DefaultHost = "https://world.openfoodfacts.org"

type options struct {
	base       string
	httpClient *http.Client
	rcOpts     []ratecontrol.Option
}

// Option represents an option to New.
type Option func(*options)

// WithBaseURL overrides the catalog endpoint, typically for testing.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.base = u
	}
}

// WithHTTPClient sets the http.Client used for catalog requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithRateControl configures request rate limiting and retry backoff
// for the client's ratecontrol.Controller.
func WithRateControl(opts ...ratecontrol.Option) Option {
	return func(o *options) {
		o.rcOpts = opts
	}
}
