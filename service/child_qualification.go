package service

import (
	"fmt"

	"credit-estimator/domain"
)

// statusRank orders eligibility statuses from best to worst so that
// merging two statuses can only move toward ineligible.
var statusRank = map[domain.EligibilityStatus]int{
	domain.StatusEligible:   0,
	domain.StatusMaybe:      1,
	domain.StatusIneligible: 2,
}

// worseStatus returns the worse of the two statuses. Eligibility is
// monotonic: once a check lowers the verdict it can never be raised back.
func worseStatus(a, b domain.EligibilityStatus) domain.EligibilityStatus {
	if statusRank[b] > statusRank[a] {
		return b
	}
	return a
}

// ChildQualification is the outcome of checking one child against the
// qualifying-child rules shared by the child-based credits.
type ChildQualification struct {
	Verdict      domain.EligibilityStatus
	Issues       []string
	IsQualifying bool
}

// CheckChildQualification runs the three qualifying-child checks in a
// fixed order: residency, relationship, valid ID. Each check can only
// lower the verdict (eligible -> maybe -> ineligible); a hard "no" on
// residency or ID forces ineligible even past an earlier maybe.
func CheckChildQualification(child domain.ChildInfo) ChildQualification {
	verdict := domain.StatusEligible
	issues := []string{}

	switch child.LivesWithYou {
	case domain.AnswerNo:
		verdict = worseStatus(verdict, domain.StatusIneligible)
		issues = append(issues, "does not live with you for more than half of the year")
	case domain.AnswerNotSure:
		verdict = worseStatus(verdict, domain.StatusMaybe)
		issues = append(issues, "you are not sure whether they live with you for more than half of the year")
	}

	if child.Relationship == domain.RelationshipOther {
		verdict = worseStatus(verdict, domain.StatusMaybe)
		issues = append(issues, "the relationship may not count as a qualifying relationship")
	}

	switch child.HasValidID {
	case domain.AnswerNo:
		verdict = worseStatus(verdict, domain.StatusIneligible)
		issues = append(issues, "does not have a valid Social Security number or ITIN")
	case domain.AnswerNotSure:
		verdict = worseStatus(verdict, domain.StatusMaybe)
		issues = append(issues, "you are not sure whether they have a valid Social Security number or ITIN")
	}

	return ChildQualification{
		Verdict:      verdict,
		Issues:       issues,
		IsQualifying: verdict == domain.StatusEligible,
	}
}

// childTally aggregates qualification checks over a set of children for
// one credit: how many fully qualify, the worst verdict seen, and the
// issues of every child that did not fully qualify (prefixed with the
// child's position so the filer can tell them apart).
type childTally struct {
	QualifyingCount int
	Status          domain.EligibilityStatus
	Issues          []string
}

// tallyChildren runs CheckChildQualification over every child whose age
// passes the filter (nil means all children count).
func tallyChildren(children []domain.ChildInfo, ageFilter func(age int) bool) childTally {
	tally := childTally{Status: domain.StatusEligible}

	for i, child := range children {
		if ageFilter != nil && !ageFilter(child.Age) {
			continue
		}

		q := CheckChildQualification(child)
		if q.IsQualifying {
			tally.QualifyingCount++
			continue
		}

		tally.Status = worseStatus(tally.Status, q.Verdict)
		for _, issue := range q.Issues {
			tally.Issues = append(tally.Issues, fmt.Sprintf("Child %d: %s", i+1, issue))
		}
	}

	return tally
}

// softenIfAnyQualify keeps an aggregate child tally from reporting a
// hard ineligible when at least one child still fully qualifies: the
// filer can claim the credit for the qualifying children, so the
// disqualified ones only warrant a follow-up.
func softenIfAnyQualify(tally childTally) childTally {
	if tally.Status == domain.StatusIneligible && tally.QualifyingCount > 0 {
		tally.Status = domain.StatusMaybe
	}
	return tally
}
