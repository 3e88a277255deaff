package codegen

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/weaveffi/weaveffi/ir"
	"github.com/weaveffi/weaveffi/weaveerr"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the codegen package's logger, defaulting to a no-op logger.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the codegen package's logger. Call before Run.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Generator turns a validated Api into a tree of files under outDir. A
// Generator is a capability, not a concrete type: the orchestrator holds
// generators polymorphically so out-of-tree targets can be registered
// alongside the five built-in ones (spec §9, "Dynamic dispatch over
// generators").
type Generator interface {
	// Name identifies the target and names its subdirectory under the
	// output root (e.g. "c", "swift", "android", "node", "wasm").
	Name() string
	// Generate writes this target's files into outDir, which already
	// exists when Generate is called.
	Generate(api *ir.Api, outDir string) error
}

// Orchestrator runs a registered, ordered list of Generators against one
// Api and output root.
type Orchestrator struct {
	generators []Generator
}

// NewOrchestrator creates an Orchestrator with the given generators
// registered in the order provided; that order is the order they run in.
func NewOrchestrator(generators ...Generator) *Orchestrator {
	return &Orchestrator{generators: append([]Generator(nil), generators...)}
}

// Register appends g to the end of the generator list.
func (o *Orchestrator) Register(g Generator) {
	o.generators = append(o.generators, g)
}

// Generators returns the registered generators in run order.
func (o *Orchestrator) Generators() []Generator {
	return append([]Generator(nil), o.generators...)
}

// Run creates outRoot if missing, then invokes every registered
// generator in registration order, each writing into its own
// outRoot/<Name()> subdirectory. The first generator failure aborts the
// run and is returned; earlier generators' output is left on disk
// (spec §4.5, "no rollback").
func (o *Orchestrator) Run(api *ir.Api, outRoot string) error {
	if err := os.MkdirAll(outRoot, 0o755); err != nil {
		return weaveerr.Filesystem(outRoot, err)
	}

	for _, g := range o.generators {
		dir := filepath.Join(outRoot, g.Name())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return weaveerr.Filesystem(dir, err)
		}
		Logger().Debug("running generator", zap.String("name", g.Name()), zap.String("dir", dir))
		if err := g.Generate(api, dir); err != nil {
			Logger().Error("generator failed", zap.String("name", g.Name()), zap.Error(err))
			return err
		}
	}

	Logger().Info("codegen run complete", zap.Int("generators", len(o.generators)), zap.String("out_root", outRoot))
	return nil
}

// Default returns an Orchestrator with the five built-in targets
// registered in spec's canonical order: C, Swift, Android, Node, WASM.
func Default() *Orchestrator {
	return NewOrchestrator(
		CGenerator{},
		SwiftGenerator{},
		AndroidGenerator{},
		NodeGenerator{},
		WasmGenerator{},
	)
}
