// Package promptcatalog holds versioned prompt templates keyed by
// (agent_name, agent_function), resolves the active version, and renders
// placeholders for the Agent Runners.
package promptcatalog

import (
	"errors"
	"time"
)

// ErrPromptMissing is returned by ResolveActive when no prompt is
// registered for (agent_name, agent_function), or the prompt has no
// active version — the AgentError taxonomy's PromptMissing.
var ErrPromptMissing = errors.New("promptcatalog: no active prompt for agent/function")

// ErrVersionConflict is returned by SetActiveVersion/AddVersion calls that
// would leave zero or more than one version active.
var ErrVersionConflict = errors.New("promptcatalog: exactly one version must be active")

// Version is one rendered-template revision of a Prompt.
type Version struct {
	Label        string
	TemplateText string
	Placeholders []string
	Description  string
	IsActive     bool
	CreatedAt    time.Time
}

// Prompt is a catalog entry. Exactly one of Versions has IsActive true.
type Prompt struct {
	ID             string
	AgentName      string
	AgentFunction  string
	Title          string
	Description    string
	Category       string
	IsEnabled      bool
	CurrentVersion string
	Versions       []Version
	UsageCount     int
}

// ActiveVersion returns the prompt's active version, if any.
func (p *Prompt) ActiveVersion() (*Version, bool) {
	for i := range p.Versions {
		if p.Versions[i].IsActive {
			return &p.Versions[i], true
		}
	}
	return nil, false
}
