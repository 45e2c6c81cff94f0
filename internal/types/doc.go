/*
Package types defines core data structures shared across the PageRangers CLI.

# Overview

The types package provides shared type definitions for:
  - The API configuration document (Config, Endpoint)
  - Runtime credentials and per-invocation context
  - Normalized per-command results (KeywordReport, RankingEntry, ...)
  - Invocation history records

# Configuration Types

Config:
  - Deserialized from the JSON(C) API configuration document
  - Maps endpoint names to Endpoint templates
  - Loaded once, treated as read-only for the process lifetime

Endpoint:
  - HTTP call template (method, path, query, headers, body)
  - Template strings may contain {placeholder} variables
  - Response maps output field names to paths into the raw payload

# Result Types

Each command produces a fixed-shape result record that renders the same
way as text, JSON or YAML. Result records are built fresh per invocation
and never persisted (history stores request metadata only, not payloads).
*/
package types
