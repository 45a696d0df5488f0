package model

import "time"

// Milestone is a savings-goal update extracted from a chat message.
type Milestone struct {
	Duration    string  `json:"duration"`
	SavedAmount float64 `json:"savedAmount"`
	GoalAmount  float64 `json:"goalAmount"`
}

// Kind implements Payload.
func (Milestone) Kind() PayloadKind { return PayloadMilestone }

func (Milestone) isPayload() {}

// Progress returns the saved fraction of the goal, or 0 when no goal is set.
func (m Milestone) Progress() float64 {
	if m.GoalAmount <= 0 {
		return 0
	}
	return m.SavedAmount / m.GoalAmount
}

// MilestoneRecord is a persisted Milestone.
type MilestoneRecord struct {
	CreatedAt time.Time
	ID        string
	Milestone
}
