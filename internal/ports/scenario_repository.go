package ports

import (
	"context"

	"github.com/bnema/parking-lot-cli/internal/domain"
)

type ScenarioRepository interface {
	Load(ctx context.Context) (domain.Scenario, error)
	Save(ctx context.Context, scenario domain.Scenario) error
}
