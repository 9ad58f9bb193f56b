// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/net/ratecontrol"

	"github.com/DhirajBro1/AgriFarm/barcode"
	"github.com/DhirajBro1/AgriFarm/foodfacts"
)

type catalogFlags struct {
	Config            string        `subcmd:"config,,YAML file with catalog client settings"`
	URL               string        `subcmd:"url,https://world.openfoodfacts.org,base URL of the food product catalog"`
	Timeout           time.Duration `subcmd:"timeout,30s,catalog request timeout"`
	RequestsPerMinute int           `subcmd:"requests-per-minute,0,limit on catalog requests per minute (0 disables)"`
}

// catalogConfig mirrors catalogFlags for the optional YAML config file;
// file values override flag values.
type catalogConfig struct {
	URL               string `yaml:"url"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

func newCatalogClient(ctx context.Context, fv *catalogFlags) (*foodfacts.Client, error) {
	cfg := catalogConfig{URL: fv.URL, RequestsPerMinute: fv.RequestsPerMinute}
	if fv.Config != "" {
		if err := cmdyaml.ParseConfigFile(ctx, fv.Config, &cfg); err != nil {
			return nil, err
		}
	}
	rc := []ratecontrol.Option{ratecontrol.WithExponentialBackoff(time.Second, 4)}
	if cfg.RequestsPerMinute > 0 {
		rc = append(rc, ratecontrol.WithRequestsPerTick(time.Minute, cfg.RequestsPerMinute))
	}
	return foodfacts.New(
		foodfacts.WithBaseURL(cfg.URL),
		foodfacts.WithHTTPClient(&http.Client{Timeout: fv.Timeout}),
		foodfacts.WithRateControl(rc...),
	), nil
}

func printProduct(p foodfacts.Product) {
	name := p.Name
	if name == "" {
		name = "Unknown"
	}
	ingredients := p.Ingredients
	if ingredients == "" {
		ingredients = "N/A"
	}
	fmt.Printf("Product: %v\n", name)
	fmt.Printf("Ingredients: %v\n", ingredients)
	if p.CaloriesPer100g != nil {
		fmt.Printf("Calories per 100g: %v\n", *p.CaloriesPer100g)
	} else {
		fmt.Println("Calories per 100g: N/A")
	}
}

func lookup(ctx context.Context, values any, args []string) error {
	client, err := newCatalogClient(ctx, values.(*catalogFlags))
	if err != nil {
		return err
	}
	product, err := client.Lookup(ctx, args[0])
	if err != nil {
		return err
	}
	printProduct(product)
	return nil
}

func scan(ctx context.Context, values any, args []string) error {
	code, err := barcode.DecodeFile(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Code: %v\n", code)
	client, err := newCatalogClient(ctx, values.(*catalogFlags))
	if err != nil {
		return err
	}
	product, err := client.Lookup(ctx, code)
	if err != nil {
		return err
	}
	printProduct(product)
	return nil
}
