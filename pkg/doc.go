// Package pkg provides the core libraries for campaign creative generation.
//
// # Overview
//
// The tool turns a campaign brief and a set of product images into finished
// social ad creatives across multiple aspect ratios. The pkg directory is
// organized into these areas:
//
//  1. [brief] - Campaign brief parsing and validation (JSON/TOML)
//  2. [creative] - The rendering engine (colors, fonts, layout, compositing)
//  3. [genai] - Generation adapters for base images and messaging
//  4. [pipeline] - Orchestration (resolve → message → render → encode)
//  5. [cache] - Persistent cache for expensive generation results
//  6. [manifest] - JSON run manifests for downstream tooling
//
// # Architecture
//
// The typical data flow through one run:
//
//	Campaign Brief (JSON/TOML)
//	         ↓
//	    [brief] package (parse, defaults, validation)
//	         ↓
//	    [pipeline] package (asset discovery, generation, caching)
//	         ↓
//	    [creative] package (compositing per aspect ratio)
//	         ↓
//	    PNG output tree + JSON manifest
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, genai.MockGenerator{}, nil, nil)
//	b, err := brief.Load("campaign.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, pipeline.Options{Brief: b})
//
// Supporting packages [errors] and [observability] provide structured error
// codes and optional instrumentation hooks used throughout.
package pkg
