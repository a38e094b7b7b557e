package application

import (
	"context"
	"fmt"

	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/bnema/parking-lot-cli/internal/ports"
)

type ScenarioService struct {
	repo ports.ScenarioRepository
}

func NewScenarioService(repo ports.ScenarioRepository) *ScenarioService {
	return &ScenarioService{repo: repo}
}

// Load reads the scenario and applies command-line overrides on top of the
// lot configuration stored in the file.
func (s *ScenarioService) Load(ctx context.Context, overrides LotOverrides) (domain.Scenario, error) {
	scenario, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("load scenario: %w", err)
	}

	if overrides.Slots > 0 {
		scenario.Lot.Slots = overrides.Slots
	}
	if overrides.RatePerHour != nil {
		scenario.Lot.RatePerHour = *overrides.RatePerHour
	}

	if scenario.Lot.Slots < 1 {
		return domain.Scenario{}, fmt.Errorf("scenario lot: %w: got %d", domain.ErrInvalidSlotCount, scenario.Lot.Slots)
	}
	if err := scenario.Validate(); err != nil {
		return domain.Scenario{}, fmt.Errorf("validate scenario: %w", err)
	}

	return scenario, nil
}

func (s *ScenarioService) Record(ctx context.Context, lot domain.LotConfig, events []domain.Event) error {
	if err := s.repo.Save(ctx, domain.Scenario{Lot: lot, Events: events}); err != nil {
		return fmt.Errorf("save scenario: %w", err)
	}

	return nil
}
