package pathway

import (
	"roottrace/domain/knowledge"
	"roottrace/internal"
	"roottrace/internal/config"
	"roottrace/ports"
)

// Register layout: 16 binary positions partitioned into four fields.
// The surname field is reserved; nothing downstream decodes it yet.
const (
	numPositions = 16

	surnameOffset = 0
	surnameBits   = 5

	regionOffset = 5
	regionBits   = 4

	ethnicOffset = 9
	ethnicBits   = 4

	timeOffset = 13
	timeBits   = 3
)

// NewBackend selects the pathway strategy once, at construction. "auto"
// resolves to the sampling simulator, which is always compiled in; "fallback"
// forces the deterministic classical approximation. The choice is static for
// the lifetime of the resolver and is never re-evaluated per call.
func NewBackend(cfg config.QuantumConfig, weights config.WeightsConfig, kb *knowledge.Base, logger *internal.Logger) ports.PathwayBackend {
	if cfg.Mode == "fallback" {
		logger.Info("pathway backend: classical fallback selected")
		return NewFallbackBackend(weights, kb)
	}
	logger.Info("pathway backend: sampling simulator selected (shots=%d layers=%d)", cfg.Shots, cfg.Layers)
	return NewSamplingBackend(cfg, weights, kb)
}
