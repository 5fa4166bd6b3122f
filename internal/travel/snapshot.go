package travel

import (
	"fmt"

	"github.com/SFerenczy/FringeTactics-sub005/internal/encounter"
)

// Snapshot is the plain-data form of a paused or in-flight journey for
// persistence across process restarts. The plan itself serializes alongside
// it; the campaign stream position rides along so replays line up.
type Snapshot struct {
	Plan            *Plan               `json:"plan"`
	SegmentIndex    int                 `json:"segment_index"`
	DaysIntoSegment int                 `json:"days_into_segment"`
	FuelSpent       int                 `json:"fuel_spent"`
	DaysElapsed     int                 `json:"days_elapsed"`
	Encounter       *encounter.Snapshot `json:"encounter,omitempty"`
	StreamPosition  uint64              `json:"stream_position"`
}

// Snapshot captures the state cursor. streamPos should come from the
// campaign stream at the same moment.
func (s *State) Snapshot(streamPos uint64) Snapshot {
	snap := Snapshot{
		Plan:            s.Plan,
		SegmentIndex:    s.SegmentIndex,
		DaysIntoSegment: s.DaysIntoSegment,
		FuelSpent:       s.FuelSpent,
		DaysElapsed:     s.DaysElapsed,
		StreamPosition:  streamPos,
	}
	if s.Encounter != nil {
		instanceSnap := s.Encounter.Snapshot()
		snap.Encounter = &instanceSnap
	}
	return snap
}

// RestoreState rebuilds a travel state from a snapshot. The registry resolves
// the paused encounter's template, if any.
func RestoreState(snap Snapshot, registry *encounter.Registry) (*State, error) {
	if snap.Plan == nil {
		return nil, fmt.Errorf("snapshot has no plan")
	}
	state := &State{
		Plan:            snap.Plan,
		SegmentIndex:    snap.SegmentIndex,
		DaysIntoSegment: snap.DaysIntoSegment,
		FuelSpent:       snap.FuelSpent,
		DaysElapsed:     snap.DaysElapsed,
	}
	if snap.Encounter != nil {
		instance, err := encounter.Restore(*snap.Encounter, registry)
		if err != nil {
			return nil, err
		}
		state.Encounter = instance
	}
	return state, nil
}
