// Package demo embeds the sample landing page and visitor script shared by
// the CLI and the live example.
package demo

import _ "embed"

// Landing is a landing page with every sitefx hook.
//
//go:embed landing.html
var Landing string

// Visit is a scripted visit to Landing: counters, parallax, tilt, the
// roadmap sweep and a milestone snap, then a hide/show of the tab.
//
//go:embed visit.yaml
var Visit []byte
