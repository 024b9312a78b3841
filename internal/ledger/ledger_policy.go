package ledger

import "go-hrms/internal/domain"

type Allotment struct {
	Sick     int
	Casual   int
	Vacation int
}

var allotments = map[string]Allotment{
	domain.RoleEmployee: {Sick: 12, Casual: 10, Vacation: 20},
	domain.RoleManager:  {Sick: 15, Casual: 12, Vacation: 25},
}

// AllotmentFor returns the annual allotment for a role. Unknown roles get the
// employee allotment.
func AllotmentFor(role string) Allotment {
	if a, ok := allotments[role]; ok {
		return a
	}
	return allotments[domain.RoleEmployee]
}

func newBalance(a Allotment) Balance {
	return Balance{
		Sick:              a.Sick,
		Casual:            a.Casual,
		Vacation:          a.Vacation,
		AllocatedSick:     a.Sick,
		AllocatedCasual:   a.Casual,
		AllocatedVacation: a.Vacation,
		Version:           1,
	}
}
