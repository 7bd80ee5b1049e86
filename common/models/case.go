package models

import "strconv"

// CaseID identifies a public proceeding. Rulemaking cases use their own
// numbering and live under a separate URL form with an "rm" prefix, but the
// page behind both forms has the same shape.
type CaseID struct {
	Number     int
	Rulemaking bool
}

// NumericCase returns the id of a regular numbered case.
func NumericCase(n int) CaseID {
	return CaseID{Number: n}
}

// RulemakingCase returns the id of a rulemaking case.
func RulemakingCase(n int) CaseID {
	return CaseID{Number: n, Rulemaking: true}
}

// Label renders the display form of the id: "91" or "rm91". It doubles as
// the per-case directory name.
func (c CaseID) Label() string {
	if c.Rulemaking {
		return "rm" + strconv.Itoa(c.Number)
	}
	return strconv.Itoa(c.Number)
}

// PagePath renders the case detail path relative to the site base URL.
func (c CaseID) PagePath() string {
	if c.Rulemaking {
		return "/DMS/rm/" + c.Label()
	}
	return "/DMS/case/" + c.Label()
}

// Prev returns the id of the next-older case in the same class.
func (c CaseID) Prev() CaseID {
	return CaseID{Number: c.Number - 1, Rulemaking: c.Rulemaking}
}
