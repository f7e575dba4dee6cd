package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// ChildPupil is one entry of the childPupils object returned by the
// pupils endpoint for parent accounts.
type ChildPupil struct {
	TargetID      FlexInt `json:"target_id"`
	TargetName    string  `json:"target_name"`
	ClassYearID   FlexInt `json:"class_year_id"`
	ClassYearName string  `json:"class_year_name"`
	SchoolID      FlexInt `json:"school_id"`
	SchoolName    string  `json:"school_name"`
}

// PupilsResponse is the payload of the pupils endpoint.
//
// For parent accounts childPupils is a JSON object keyed by pupil id.
// Student accounts get an empty childPupils, which the API encodes as
// an empty array instead of an empty object, so the field needs a
// tolerant decoder.
type PupilsResponse struct {
	ChildPupils map[string]ChildPupil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *PupilsResponse) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		ChildPupils json.RawMessage `json:"childPupils"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	raw := bytes.TrimSpace(wrapper.ChildPupils)
	if len(raw) == 0 || raw[0] != '{' {
		// missing, null or the empty-array encoding
		r.ChildPupils = nil
		return nil
	}

	return json.Unmarshal(raw, &r.ChildPupils)
}

// Pupil is a normalized student record derived from a childPupils
// entry. ID comes from the object key, falling back to target_id when
// the key is not numeric.
type Pupil struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ClassName  string `json:"class_name,omitempty"`
	SchoolName string `json:"school_name,omitempty"`
}

// NewPupil builds a Pupil from one childPupils map entry.
func NewPupil(key string, cp ChildPupil) Pupil {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		id = cp.TargetID.Int64()
	}

	name := cp.TargetName
	if name == "" {
		name = "Unknown"
	}

	return Pupil{
		ID:         id,
		Name:       name,
		ClassName:  cp.ClassYearName,
		SchoolName: cp.SchoolName,
	}
}

// Pupils converts the childPupils map into a name-sorted slice.
// Returns nil for student accounts.
func (r PupilsResponse) Pupils() []Pupil {
	if len(r.ChildPupils) == 0 {
		return nil
	}

	pupils := make([]Pupil, 0, len(r.ChildPupils))
	for key, cp := range r.ChildPupils {
		pupils = append(pupils, NewPupil(key, cp))
	}
	sort.Slice(pupils, func(i, j int) bool { return pupils[i].Name < pupils[j].Name })

	return pupils
}
