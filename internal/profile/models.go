package profile

import (
	"encoding/json"
	"strings"
)

// Snapshot is one stored profile record. Older writers used `gender` and
// `agentType` instead of `sex` and `fitnessAgent`; both alias keys are
// accepted on read and written back for compatibility.
type Snapshot struct {
	Email            string     `json:"email,omitempty"`
	Sex              string     `json:"sex,omitempty"`
	Gender           string     `json:"gender,omitempty"`
	Age              int        `json:"age,omitempty"`
	Weight           float64    `json:"weight,omitempty"`
	Height           float64    `json:"height,omitempty"`
	FitnessAgent     string     `json:"fitnessAgent,omitempty"`
	AgentType        string     `json:"agentType,omitempty"`
	HealthConditions Conditions `json:"healthConditions,omitempty"`
}

// normalize folds the alias keys into the canonical ones.
func (s *Snapshot) normalize() {
	if s.Sex == "" {
		s.Sex = s.Gender
	}
	if s.FitnessAgent == "" {
		s.FitnessAgent = s.AgentType
	}
}

// Conditions decodes from either a free-text string or a list of strings;
// lists join with ", " for display.
type Conditions string

func (c *Conditions) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Conditions(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*c = Conditions(strings.Join(list, ", "))
	return nil
}

// UserProfile is the reconciled view: exactly one value per logical field.
type UserProfile struct {
	Email            string  `json:"email"`
	Sex              string  `json:"sex,omitempty"`
	Age              int     `json:"age,omitempty"`
	Weight           float64 `json:"weight,omitempty"`
	Height           float64 `json:"height,omitempty"`
	FitnessAgent     string  `json:"fitness_agent,omitempty"`
	HealthConditions string  `json:"health_conditions,omitempty"`
}

// apply overlays the fields present in the snapshot; later sources win
// field-by-field.
func (p *UserProfile) apply(s Snapshot) {
	s.normalize()
	if s.Sex != "" {
		p.Sex = s.Sex
	}
	if s.Age != 0 {
		p.Age = s.Age
	}
	if s.Weight != 0 {
		p.Weight = s.Weight
	}
	if s.Height != 0 {
		p.Height = s.Height
	}
	if s.FitnessAgent != "" {
		p.FitnessAgent = s.FitnessAgent
	}
	if s.HealthConditions != "" {
		p.HealthConditions = string(s.HealthConditions)
	}
}
