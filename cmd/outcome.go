package cmd

import (
	"fmt"
	"io"

	"github.com/bnema/parking-lot-cli/internal/domain"
)

func writeArrival(w io.Writer, outcome domain.ArrivalOutcome) {
	if outcome.Parked {
		_, _ = fmt.Fprintf(w, "Vehicle %s parked at Slot %d at Time %d.\n", outcome.Vehicle, outcome.SlotID, outcome.At)
		return
	}

	_, _ = fmt.Fprintf(w, "Parking full! Vehicle %s added to waiting queue at Time %d.\n", outcome.Vehicle, outcome.At)
}

func writeDeparture(w io.Writer, outcome domain.DepartureOutcome) {
	_, _ = fmt.Fprintf(w, "Vehicle %s removed from Slot %d at Time %d.\n", outcome.Vehicle, outcome.SlotID, outcome.At)
	_, _ = fmt.Fprintf(w, "Duration Parked: %d hour(s)\n", outcome.Duration)
	_, _ = fmt.Fprintf(w, "Bill: Rs%d\n", outcome.Bill)

	if outcome.Promoted != nil {
		_, _ = fmt.Fprintf(w, "Now parking waiting vehicle %s at freed Slot %d.\n", outcome.Promoted.Vehicle, outcome.SlotID)
	}
}

func writeNotFound(w io.Writer, vehicle domain.VehicleID) {
	_, _ = fmt.Fprintf(w, "Vehicle %s not found in the parking lot.\n", vehicle)
}
