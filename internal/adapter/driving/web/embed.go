package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet).
//
//go:embed static/*
var StaticFS embed.FS

//go:embed about.md
var aboutMarkdown string
