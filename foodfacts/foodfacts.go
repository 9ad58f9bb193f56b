// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package foodfacts is a minimal client for the Open Food Facts
// product catalog, keyed by EAN/UPC or QR encoded barcode.
package foodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/net/http/httperror"
	"cloudeng.io/net/ratecontrol"
)

// ErrNotFound is returned when the catalog has no product for a
// barcode.
var ErrNotFound = errors.New("product not found")

// Product is the subset of catalog fields the tools report.
// CaloriesPer100g is nil when the catalog has no energy data for the
// product.
type Product struct {
	Name            string
	Ingredients     string
	CaloriesPer100g *float64
}

// Client accesses the product catalog. It is safe for concurrent use.
type Client struct {
	base   string
	client *http.Client
	rc     *ratecontrol.Controller
}

// New returns a client configured with the supplied options.
func New(opts ...Option) *Client {
	o := options{
		base:       DefaultHost,
		httpClient: http.DefaultClient,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return &Client{
		base:   strings.TrimSuffix(o.base, "/"),
		client: o.httpClient,
		rc:     ratecontrol.New(o.rcOpts...),
	}
}

type productResponse struct {
	Status  int `json:"status"`
	Product struct {
		Name        string `json:"product_name"`
		Ingredients string `json:"ingredients_text"`
		Nutriments  struct {
			EnergyKcal100g *float64 `json:"energy-kcal_100g"`
		} `json:"nutriments"`
	} `json:"product"`
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// Lookup fetches the product for barcode. Requests observe the client's
// rate controller and are retried with backoff on 429 and 5xx
// responses. The catalog reporting no such product is ErrNotFound.
func (c *Client) Lookup(ctx context.Context, barcode string) (Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return Product{}, fmt.Errorf("empty barcode")
	}
	u := fmt.Sprintf("%v/api/v0/product/%v.json", c.base, url.PathEscape(barcode))
	backoff := c.rc.Backoff()
	for {
		if err := c.rc.Wait(ctx); err != nil {
			return Product{}, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return Product{}, err
		}
		resp, err := c.client.Do(req)
		if err == nil && retryable(resp.StatusCode) {
			resp.Body.Close()
			done, werr := backoff.Wait(ctx, resp)
			if werr != nil {
				return Product{}, werr
			}
			if !done {
				ctxlog.Logger(ctx).Debug("retrying product lookup",
					"barcode", barcode, "status", resp.StatusCode, "retries", backoff.Retries())
				continue
			}
			return Product{}, &httperror.T{
				Status:     resp.Status,
				StatusCode: resp.StatusCode,
				Retries:    backoff.Retries(),
			}
		}
		if herr := httperror.CheckResponse(err, resp); herr != nil {
			if resp != nil {
				resp.Body.Close()
			}
			return Product{}, fmt.Errorf("lookup %v: %w", barcode, herr)
		}
		pr, err := decodeProduct(resp.Body)
		resp.Body.Close()
		if err != nil {
			return Product{}, fmt.Errorf("lookup %v: %w", barcode, err)
		}
		if pr.Status != 1 {
			return Product{}, fmt.Errorf("barcode %v: %w", barcode, ErrNotFound)
		}
		return Product{
			Name:            pr.Product.Name,
			Ingredients:     pr.Product.Ingredients,
			CaloriesPer100g: pr.Product.Nutriments.EnergyKcal100g,
		}, nil
	}
}

func decodeProduct(r io.Reader) (productResponse, error) {
	var pr productResponse
	if err := json.NewDecoder(r).Decode(&pr); err != nil {
		return productResponse{}, fmt.Errorf("invalid catalog response: %w", err)
	}
	return pr, nil
}
