//go:build !cgo

package window

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Run reports that this build has no window support.
func Run(_ registry.Game, _ core.RuntimeConfig, _ Options) error {
	return ErrNoWindow
}
