package toml

import (
	"fmt"

	"github.com/bnema/parking-lot-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Lot     lotSchema     `toml:"lot"`
	Events  []eventSchema `toml:"events"`
}

type lotSchema struct {
	Slots       int    `toml:"slots"`
	RatePerHour *int64 `toml:"rate_per_hour,omitempty"`
}

type eventSchema struct {
	Kind    string `toml:"kind"`
	Vehicle string `toml:"vehicle"`
	Hour    int64  `toml:"hour"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Lot.RatePerHour == nil {
		rate := domain.DefaultRatePerHour
		s.Lot.RatePerHour = &rate
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported scenario schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(scenario domain.Scenario) fileSchema {
	rate := scenario.Lot.RatePerHour
	file := fileSchema{
		Version: currentSchemaVersion,
		Lot:     lotSchema{Slots: scenario.Lot.Slots, RatePerHour: &rate},
		Events:  make([]eventSchema, 0, len(scenario.Events)),
	}

	for _, event := range scenario.Events {
		file.Events = append(file.Events, eventSchema{
			Kind:    string(event.Kind),
			Vehicle: string(event.Vehicle),
			Hour:    int64(event.At),
		})
	}

	return file
}

func fromSchema(file fileSchema) domain.Scenario {
	scenario := domain.Scenario{
		Lot:    domain.LotConfig{Slots: file.Lot.Slots, RatePerHour: domain.DefaultRatePerHour},
		Events: make([]domain.Event, 0, len(file.Events)),
	}
	if file.Lot.RatePerHour != nil {
		scenario.Lot.RatePerHour = *file.Lot.RatePerHour
	}

	for _, event := range file.Events {
		scenario.Events = append(scenario.Events, domain.Event{
			Kind:    domain.EventKind(event.Kind),
			Vehicle: domain.VehicleID(event.Vehicle),
			At:      domain.Hour(event.Hour),
		})
	}

	return scenario
}
