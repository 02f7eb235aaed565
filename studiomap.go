package studiomap

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/studiomap/internal/docsplice"
	"github.com/aretw0/studiomap/internal/logging"
	"github.com/aretw0/studiomap/internal/overrides"
	"github.com/aretw0/studiomap/internal/presentation/graph"
	"github.com/aretw0/studiomap/pkg/domain"
	"github.com/aretw0/studiomap/pkg/flow"
)

// Version of the studiomap module.
var Version = "0.2.0"

// Generator is the high-level entry point for the studiomap library.
// It runs the extract → overlay → render pipeline over parsed flow
// definitions.
type Generator struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Extract builds the graph reachable from trigger, without overlay.
func (g *Generator) Extract(def *flow.Definition, trigger flow.TriggerType) (*domain.Graph, error) {
	model, err := flow.Extract(def, trigger)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("extracted flow graph",
		"trigger", trigger,
		"states", model.Len(),
		"transitions", len(model.Transitions()))
	return model, nil
}

// Generate renders the reachable subgraph for trigger as a fenced Mermaid
// block, with friendly names applied. A nil or empty names map renders
// raw state ids.
func (g *Generator) Generate(def *flow.Definition, trigger flow.TriggerType, names map[string]string) (string, error) {
	model, err := g.Extract(def, trigger)
	if err != nil {
		return "", err
	}
	return graph.Mermaid(model.Overlay(names)), nil
}

// StatesTemplate returns the id-keyed override seed map for the states
// reachable from trigger.
func (g *Generator) StatesTemplate(def *flow.Definition, trigger flow.TriggerType) (map[string]string, error) {
	model, err := g.Extract(def, trigger)
	if err != nil {
		return nil, err
	}
	return overrides.Template(model), nil
}

// UpdateDocument splices a rendered diagram into doc between the
// sectionID markers, framing it with newlines so the markers stay on
// their own lines. The input document is never partially rewritten: on
// error the original text should be kept as is.
func UpdateDocument(doc, sectionID, diagram string) (string, error) {
	updated, err := docsplice.Splice(doc, sectionID, "\n"+diagram+"\n")
	if err != nil {
		return "", fmt.Errorf("update document section %q: %w", sectionID, err)
	}
	return updated, nil
}
