package plan

import (
	"encoding/json"
	"errors"
)

// WeeklyPlan is the per-weekday exercise schedule. It is an input to
// exercise-type classification and is never mutated by the derivation
// pipeline.
type WeeklyPlan struct {
	Days map[string]DayPlan `json:"days"`
}

// DayPlan is either a rest day or a list of exercises. Older snapshots
// stored a bare exercise array or the string "rest"; both decode.
type DayPlan struct {
	Rest      bool       `json:"rest,omitempty"`
	Exercises []Exercise `json:"exercises,omitempty"`
}

// Exercise decodes from either a bare string or a {name: ...} object.
type Exercise struct {
	Name string `json:"name"`
}

func (e *Exercise) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Name = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.Name = obj.Name
	return nil
}

func (d *DayPlan) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "rest" {
			d.Rest = true
			return nil
		}
		d.Exercises = []Exercise{{Name: s}}
		return nil
	}

	var list []Exercise
	if err := json.Unmarshal(data, &list); err == nil {
		d.Exercises = list
		return nil
	}

	var obj struct {
		Rest      bool       `json:"rest"`
		Exercises []Exercise `json:"exercises"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.New("day plan must be a rest marker or an exercise list")
	}
	d.Rest = obj.Rest
	d.Exercises = obj.Exercises
	return nil
}
