package domain

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// DecodeProject parses a JSON project body, remembering which fields were
// present. Unknown fields are ignored. Type mismatches are reported as a
// *ValidationError; presence rules are checked separately by Validate.
func DecodeProject(body []byte) (*Project, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		verr := &ValidationError{}
		verr.add("body", "must be a JSON object")
		return nil, verr
	}

	p := &Project{}
	verr := &ValidationError{}
	decodeString(raw, FieldName, &p.Name, verr)
	decodeString(raw, FieldDescription, &p.Description, verr)
	decodeString(raw, FieldStartDate, &p.StartDate, verr)
	decodeString(raw, FieldEndDate, &p.EndDate, verr)
	decodeString(raw, FieldTeamLeader, &p.TeamLeader, verr)
	decodeString(raw, FieldTeamMembers, &p.TeamMembers, verr)
	decodeString(raw, FieldFundedBy, &p.FundedBy, verr)
	decodeInt(raw, FieldTotalMembers, &p.TotalMembers, verr)
	decodeString(raw, FieldStatus, &p.Status, verr)
	decodeString(raw, FieldResearchArea, &p.ResearchArea, verr)
	decodeString(raw, FieldProjectLink, &p.ProjectLink, verr)
	decodeString(raw, FieldImage, &p.Image, verr)

	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return p, nil
}

func isNull(data json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func decodeString(raw map[string]json.RawMessage, name string, dst *Optional[string], verr *ValidationError) {
	data, ok := raw[name]
	if !ok {
		return
	}
	dst.Set = true
	if isNull(data) {
		return
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		verr.add(name, "str type expected")
		return
	}
	dst.Value = &v
}

// decodeInt accepts whole JSON numbers and strings holding an integer.
func decodeInt(raw map[string]json.RawMessage, name string, dst *Optional[int], verr *ValidationError) {
	data, ok := raw[name]
	if !ok {
		return
	}
	dst.Set = true
	if isNull(data) {
		return
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		verr.add(name, "value is not a valid integer")
		return
	}
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || x > math.MaxInt32 || x < math.MinInt32 {
			verr.add(name, "value is not a valid integer")
			return
		}
		n := int(x)
		dst.Value = &n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			verr.add(name, "value is not a valid integer")
			return
		}
		dst.Value = &n
	default:
		verr.add(name, "value is not a valid integer")
	}
}
