package model

import (
	"time"

	"github.com/goccy/go-json"
)

// ProcessingState is either Unprocessed or Processed at a point in time.
// The zero value is Unprocessed. Once processed, the state never goes back.
type ProcessingState struct {
	processed bool
	at        time.Time
}

func Unprocessed() ProcessingState {
	return ProcessingState{}
}

func ProcessedAt(at time.Time) ProcessingState {
	return ProcessingState{processed: true, at: at.UTC().Truncate(time.Second)}
}

// ProcessingStateFromUnix builds the state from a nullable unix timestamp column.
func ProcessingStateFromUnix(ts *int64) ProcessingState {
	if ts == nil {
		return Unprocessed()
	}
	return ProcessedAt(time.Unix(*ts, 0))
}

func (s ProcessingState) IsProcessed() bool {
	return s.processed
}

func (s ProcessingState) At() (time.Time, bool) {
	return s.at, s.processed
}

// Unix returns the value of the nullable processed_at column.
func (s ProcessingState) Unix() *int64 {
	if !s.processed {
		return nil
	}
	ts := s.at.Unix()
	return &ts
}

// MarkProcessed returns the processed state and whether this call made the transition.
// Marking an already processed state keeps the original timestamp.
func (s ProcessingState) MarkProcessed(at time.Time) (ProcessingState, bool) {
	if s.processed {
		return s, false
	}
	return ProcessedAt(at), true
}

func (s ProcessingState) MarshalJSON() ([]byte, error) {
	if !s.processed {
		return []byte("null"), nil
	}
	return json.Marshal(s.at.Format(time.RFC3339))
}

func (s *ProcessingState) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = Unprocessed()
		return nil
	}

	dt, err := NewDateTimeFromString(*raw)
	if err != nil {
		return err
	}
	*s = ProcessedAt(dt.GetTime())
	return nil
}
