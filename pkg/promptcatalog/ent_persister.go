package promptcatalog

import (
	"context"
	"fmt"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent/prompt"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent/promptversion"
	"github.com/google/uuid"
)

// EntPersister is the production Persister, backed by the Prompt and
// PromptVersion tables.
type EntPersister struct {
	Client *ent.Client
}

func fromEntPrompt(row *ent.Prompt) *Prompt {
	p := &Prompt{
		ID:             row.ID,
		AgentName:      row.AgentName,
		AgentFunction:  row.AgentFunction,
		Title:          row.Title,
		Description:    row.Description,
		Category:       row.Category,
		IsEnabled:      row.IsEnabled,
		CurrentVersion: row.CurrentVersion,
		UsageCount:     row.UsageCount,
	}
	for _, v := range row.Edges.Versions {
		p.Versions = append(p.Versions, Version{
			Label:        v.Label,
			TemplateText: v.TemplateText,
			Placeholders: v.Placeholders,
			Description:  v.Description,
			IsActive:     v.IsActive,
			CreatedAt:    v.CreatedAt,
		})
	}
	return p
}

func (e *EntPersister) Get(ctx context.Context, promptID string) (*Prompt, error) {
	row, err := e.Client.Prompt.Query().
		Where(prompt.IDEQ(promptID)).
		WithVersions().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("promptcatalog: get prompt %s: %w", promptID, err)
	}
	return fromEntPrompt(row), nil
}

func (e *EntPersister) FindByAgentFunction(ctx context.Context, agentName, agentFunction string) (*Prompt, error) {
	row, err := e.Client.Prompt.Query().
		Where(prompt.AgentNameEQ(agentName), prompt.AgentFunctionEQ(agentFunction)).
		WithVersions().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("promptcatalog: find %s/%s: %w", agentName, agentFunction, err)
	}
	return fromEntPrompt(row), nil
}

func (e *EntPersister) List(ctx context.Context) ([]*Prompt, error) {
	rows, err := e.Client.Prompt.Query().WithVersions().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("promptcatalog: list: %w", err)
	}
	out := make([]*Prompt, len(rows))
	for i, r := range rows {
		out[i] = fromEntPrompt(r)
	}
	return out, nil
}

func (e *EntPersister) Create(ctx context.Context, p *Prompt) error {
	_, err := e.Client.Prompt.Create().
		SetID(p.ID).
		SetAgentName(p.AgentName).
		SetAgentFunction(p.AgentFunction).
		SetTitle(p.Title).
		SetDescription(p.Description).
		SetCategory(p.Category).
		SetIsEnabled(p.IsEnabled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("promptcatalog: create prompt: %w", err)
	}
	return nil
}

func (e *EntPersister) UpdateMetadata(ctx context.Context, promptID string, title, description, category string, isEnabled bool) error {
	err := e.Client.Prompt.UpdateOneID(promptID).
		SetTitle(title).
		SetDescription(description).
		SetCategory(category).
		SetIsEnabled(isEnabled).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("promptcatalog: update metadata: %w", err)
	}
	return nil
}

func (e *EntPersister) AddVersion(ctx context.Context, promptID string, v Version) error {
	_, err := e.Client.PromptVersion.Create().
		SetID(uuid.New().String()).
		SetPromptID(promptID).
		SetLabel(v.Label).
		SetTemplateText(v.TemplateText).
		SetPlaceholders(v.Placeholders).
		SetDescription(v.Description).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("promptcatalog: add version: %w", err)
	}
	return nil
}

// SetActiveVersion runs inside one transaction: deactivate every other
// version of promptID, activate label, and denormalize current_version — the
// one-active-version-per-prompt invariant, enforced atomically rather than as two independent writes.
func (e *EntPersister) SetActiveVersion(ctx context.Context, promptID, label string) error {
	tx, err := e.Client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("promptcatalog: begin tx: %w", err)
	}
	defer tx.Rollback()

	target, err := tx.PromptVersion.Query().
		Where(promptversion.PromptIDEQ(promptID), promptversion.LabelEQ(label)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("%w: version %s not found for prompt %s: %v", ErrVersionConflict, label, promptID, err)
	}

	if _, err := tx.PromptVersion.Update().
		Where(promptversion.PromptIDEQ(promptID)).
		SetIsActive(false).
		Save(ctx); err != nil {
		return fmt.Errorf("promptcatalog: deactivate versions: %w", err)
	}

	if err := tx.PromptVersion.UpdateOneID(target.ID).SetIsActive(true).Exec(ctx); err != nil {
		return fmt.Errorf("promptcatalog: activate version: %w", err)
	}

	if err := tx.Prompt.UpdateOneID(promptID).SetCurrentVersion(label).Exec(ctx); err != nil {
		return fmt.Errorf("promptcatalog: denormalize current_version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("promptcatalog: commit: %w", err)
	}
	return nil
}

func (e *EntPersister) IncrementUsage(ctx context.Context, promptID string) error {
	err := e.Client.Prompt.UpdateOneID(promptID).AddUsageCount(1).Exec(ctx)
	if err != nil {
		return fmt.Errorf("promptcatalog: increment usage: %w", err)
	}
	return nil
}
