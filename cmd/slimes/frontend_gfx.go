//go:build !nogfx

package main

// Registers the desktop window frontend. Excluded by the nogfx build tag.
import _ "github.com/vovakirdan/dungeon-slimes/internal/platform/gfx"
