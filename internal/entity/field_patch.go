package entity

// FieldPatch carries freshly extracted field values toward an
// ExtractedData row. Zero values mean "nothing extracted": on update,
// only non-zero values overwrite what is already stored, so a
// low-confidence re-extraction never blanks a populated field.
type FieldPatch struct {
	FullName        string
	Email           string
	Phone           string
	Address         string
	CurrentPosition string
	Company         string
	ExperienceYears int
	Skills          string
	Education       string
	Certifications  string
	Additional      map[string]any
}

// Apply merges the patch into an ExtractedData record in place. Only
// non-zero patch values overwrite; additional data is merged key-wise
// with patch keys winning. Both the create and the re-extraction path
// go through here so the merge rule lives in one place.
func (p FieldPatch) Apply(e *ExtractedData) {
	setStr := func(dst **string, v string) {
		if v != "" {
			*dst = &v
		}
	}
	setStr(&e.FullName, p.FullName)
	setStr(&e.Email, p.Email)
	setStr(&e.Phone, p.Phone)
	setStr(&e.Address, p.Address)
	setStr(&e.CurrentPosition, p.CurrentPosition)
	setStr(&e.Company, p.Company)
	setStr(&e.Skills, p.Skills)
	setStr(&e.Education, p.Education)
	setStr(&e.Certifications, p.Certifications)
	if p.ExperienceYears > 0 {
		years := p.ExperienceYears
		e.ExperienceYears = &years
	}
	if len(p.Additional) > 0 {
		merged := map[string]any{}
		for k, v := range e.AdditionalData {
			merged[k] = v
		}
		for k, v := range p.Additional {
			merged[k] = v
		}
		e.AdditionalData = merged
	}
}
