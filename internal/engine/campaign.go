package engine

import "github.com/mireldan/crystalquest/internal/models"

// CampaignState tracks one user's participation in a single campaign.
// The completed set is the only source of truth for task completion; the
// catalog rows themselves are never mutated.
type CampaignState struct {
	joinBonus int64
	joined    bool
	completed map[int64]bool
}

// NewCampaignState returns a fresh non-joined state.
func NewCampaignState(joinBonus int64) *CampaignState {
	return &CampaignState{
		joinBonus: joinBonus,
		completed: make(map[int64]bool),
	}
}

// Join moves the state from not-joined to joined. It reports whether the
// state changed; joining again is a no-op.
func (s *CampaignState) Join() bool {
	if s.joined {
		return false
	}
	s.joined = true
	return true
}

// Joined reports whether the user has joined the campaign.
func (s *CampaignState) Joined() bool { return s.joined }

// ToggleTask flips membership of id in the completed set.
// It fails with ErrNotJoined until Join has been called.
func (s *CampaignState) ToggleTask(id int64) error {
	if !s.joined {
		return ErrNotJoined
	}
	if s.completed[id] {
		delete(s.completed, id)
	} else {
		s.completed[id] = true
	}
	return nil
}

// IsCompleted reports whether id is in the completed set.
func (s *CampaignState) IsCompleted(id int64) bool { return s.completed[id] }

// CompletedCount returns the size of the completed set.
func (s *CampaignState) CompletedCount() int { return len(s.completed) }

// TotalEarned sums RewardAmount over completed tasks, plus the join bonus
// once joined.
func (s *CampaignState) TotalEarned(tasks []models.Task) int64 {
	var total int64
	for _, t := range tasks {
		if s.completed[t.ID] {
			total += t.RewardAmount
		}
	}
	if s.joined {
		total += s.joinBonus
	}
	return total
}

// ProgressRatio returns completed/total in [0,1]. An empty task list counts
// as zero progress.
func (s *CampaignState) ProgressRatio(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if s.completed[t.ID] {
			done++
		}
	}
	return float64(done) / float64(len(tasks))
}
