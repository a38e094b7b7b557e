package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/bnema/parking-lot-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioServiceLoadAppliesOverrides(t *testing.T) {
	repo := mocks.NewMockScenarioRepository(t)
	svc := NewScenarioService(repo)

	repo.EXPECT().Load(mockAnyContext()).Return(domain.Scenario{
		Lot:    domain.LotConfig{Slots: 1, RatePerHour: 10},
		Events: []domain.Event{{Kind: domain.EventArrive, Vehicle: "A", At: 0}},
	}, nil)

	rate := int64(0)
	scenario, err := svc.Load(context.Background(), LotOverrides{Slots: 4, RatePerHour: &rate})
	require.NoError(t, err)
	assert.Equal(t, domain.LotConfig{Slots: 4, RatePerHour: 0}, scenario.Lot)
	assert.Len(t, scenario.Events, 1)
}

func TestScenarioServiceLoadRequiresSlots(t *testing.T) {
	repo := mocks.NewMockScenarioRepository(t)
	svc := NewScenarioService(repo)

	repo.EXPECT().Load(mockAnyContext()).Return(domain.Scenario{Lot: domain.LotConfig{RatePerHour: 10}}, nil)

	_, err := svc.Load(context.Background(), LotOverrides{})
	require.ErrorIs(t, err, domain.ErrInvalidSlotCount)
}

func TestScenarioServiceLoadRejectsInvalidEvents(t *testing.T) {
	repo := mocks.NewMockScenarioRepository(t)
	svc := NewScenarioService(repo)

	repo.EXPECT().Load(mockAnyContext()).Return(domain.Scenario{
		Lot:    domain.LotConfig{Slots: 1},
		Events: []domain.Event{{Kind: "fly", Vehicle: "A"}},
	}, nil)

	_, err := svc.Load(context.Background(), LotOverrides{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "validate scenario")
}

func TestScenarioServiceLoadWrapsRepositoryError(t *testing.T) {
	repo := mocks.NewMockScenarioRepository(t)
	svc := NewScenarioService(repo)

	repo.EXPECT().Load(mockAnyContext()).Return(domain.Scenario{}, domain.ErrScenarioNotFound)

	_, err := svc.Load(context.Background(), LotOverrides{})
	require.ErrorIs(t, err, domain.ErrScenarioNotFound)
}

func TestScenarioServiceRecordSavesJournal(t *testing.T) {
	repo := mocks.NewMockScenarioRepository(t)
	svc := NewScenarioService(repo)

	lot := domain.LotConfig{Slots: 2, RatePerHour: 10}
	events := []domain.Event{{Kind: domain.EventArrive, Vehicle: "A", At: 0}}
	repo.EXPECT().Save(mockAnyContext(), domain.Scenario{Lot: lot, Events: events}).Return(nil)

	require.NoError(t, svc.Record(context.Background(), lot, events))
}

func TestScenarioServiceRecordWrapsSaveError(t *testing.T) {
	repo := mocks.NewMockScenarioRepository(t)
	svc := NewScenarioService(repo)

	saveErr := errors.New("disk full")
	repo.EXPECT().Save(mockAnyContext(), domain.Scenario{Lot: domain.LotConfig{Slots: 1}}).Return(saveErr)

	err := svc.Record(context.Background(), domain.LotConfig{Slots: 1}, nil)
	require.ErrorIs(t, err, saveErr)
	assert.ErrorContains(t, err, "save scenario")
}
