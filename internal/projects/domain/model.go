package domain

import (
	"github.com/sesgrg/sesg-backend/internal/store"
)

// DefaultStatus is stored when a new project arrives without a status.
const DefaultStatus = "ongoing"

// Project field names as they appear on the wire and in the store.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldTeamLeader   = "team_leader"
	FieldTeamMembers  = "team_members"
	FieldFundedBy     = "funded_by"
	FieldTotalMembers = "total_members"
	FieldStatus       = "status"
	FieldResearchArea = "research_area"
	FieldProjectLink  = "project_link"
	FieldImage        = "image"
)

// Optional records whether a field was present in the body and, if so, its
// value. A present field with a nil Value was sent as null. An empty string is
// a real value and is kept as such.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present Optional holding null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o Optional[T]) present() bool { return o.Set && o.Value != nil }

func (o Optional[T]) raw() any {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}

// Project is a research project as submitted by the admin UI. Team members are
// free text, not a list. Status is a free string, conventionally "ongoing" or
// "completed".
type Project struct {
	Name         Optional[string]
	Description  Optional[string]
	StartDate    Optional[string]
	EndDate      Optional[string]
	TeamLeader   Optional[string]
	TeamMembers  Optional[string]
	FundedBy     Optional[string]
	TotalMembers Optional[int]
	Status       Optional[string]
	ResearchArea Optional[string]
	ProjectLink  Optional[string]
	Image        Optional[string]
}

// Validate checks the fields every project body must carry: name and
// description present and not null, status not null when given.
func (p *Project) Validate() error {
	verr := &ValidationError{}
	if !p.Name.present() {
		verr.add(FieldName, "field required")
	}
	if !p.Description.present() {
		verr.add(FieldDescription, "field required")
	}
	if p.Status.Set && p.Status.Value == nil {
		verr.add(FieldStatus, "none is not an allowed value")
	}
	return verr.orNil()
}

type projectField struct {
	name string
	set  bool
	val  any
}

func (p *Project) fields() []projectField {
	return []projectField{
		{FieldName, p.Name.Set, p.Name.raw()},
		{FieldDescription, p.Description.Set, p.Description.raw()},
		{FieldStartDate, p.StartDate.Set, p.StartDate.raw()},
		{FieldEndDate, p.EndDate.Set, p.EndDate.raw()},
		{FieldTeamLeader, p.TeamLeader.Set, p.TeamLeader.raw()},
		{FieldTeamMembers, p.TeamMembers.Set, p.TeamMembers.raw()},
		{FieldFundedBy, p.FundedBy.Set, p.FundedBy.raw()},
		{FieldTotalMembers, p.TotalMembers.Set, p.TotalMembers.raw()},
		{FieldStatus, p.Status.Set, p.Status.raw()},
		{FieldResearchArea, p.ResearchArea.Set, p.ResearchArea.raw()},
		{FieldProjectLink, p.ProjectLink.Set, p.ProjectLink.raw()},
		{FieldImage, p.Image.Set, p.Image.raw()},
	}
}

// NewRecord returns the record stored for a new project: every declared field,
// null where the body left it out, and the default status when none was sent.
func (p *Project) NewRecord() store.Record {
	rec := store.Record{}
	for _, f := range p.fields() {
		rec[f.name] = f.val
	}
	if !p.Status.Set {
		rec[FieldStatus] = DefaultStatus
	}
	return rec
}

// Patch returns only the fields present in the body, for merging into a stored
// project. Empty strings and nulls are included so they clear the stored value.
func (p *Project) Patch() store.Record {
	rec := store.Record{}
	for _, f := range p.fields() {
		if f.set {
			rec[f.name] = f.val
		}
	}
	return rec
}
