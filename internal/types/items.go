package types

// ItemID implementations let generic list operations address entries by id.

func (e Experience) ItemID() string          { return e.ID }
func (e Education) ItemID() string           { return e.ID }
func (s Skill) ItemID() string               { return s.ID }
func (l Language) ItemID() string            { return l.ID }
func (p Project) ItemID() string             { return p.ID }
func (c Certification) ItemID() string       { return c.ID }
func (v VolunteerExperience) ItemID() string { return v.ID }
func (h HonorAward) ItemID() string          { return h.ID }
func (c CustomSection) ItemID() string       { return c.ID }

// Reconcile re-establishes the current/endDate exclusivity after arbitrary
// field patches: a current entry never keeps an end date.

func (e *Experience) Reconcile() {
	if e.Current {
		e.EndDate = ""
	}
}

func (e *Education) Reconcile() {
	if e.Current {
		e.EndDate = ""
	}
}

func (v *VolunteerExperience) Reconcile() {
	if v.Current {
		v.EndDate = ""
	}
}
