package policy

import (
	"time"

	"go-hrms/internal/domain"
)

func date(v string) time.Time {
	t, _ := time.Parse(dateLayout, v)
	return t
}

// defaultPolicies and defaultFAQ seed an empty catalog.
func defaultPolicies() []Policy {
	return []Policy{
		{
			Title:         "Annual Leave Policy",
			Category:      domain.LeaveTypeVacation,
			Content:       "Employees are entitled to 20 days of annual leave per year. Leave requests must be submitted at least 2 weeks in advance for approval.",
			EffectiveDate: date("2024-01-01"),
			LastUpdated:   date("2024-01-01"),
			Tags:          []string{"annual", "vacation", "approval"},
		},
		{
			Title:         "Sick Leave Policy",
			Category:      domain.LeaveTypeSick,
			Content:       "Employees can take up to 12 days of sick leave per year. Medical certificates are required for absences longer than 3 consecutive days.",
			EffectiveDate: date("2024-01-01"),
			LastUpdated:   date("2024-01-01"),
			Tags:          []string{"sick", "medical", "certificate"},
		},
		{
			Title:         "Casual Leave Policy",
			Category:      domain.LeaveTypeCasual,
			Content:       "Employees are entitled to 12 days of casual leave per year for personal matters. Requests should be submitted at least 3 days in advance.",
			EffectiveDate: date("2024-01-01"),
			LastUpdated:   date("2024-01-01"),
			Tags:          []string{"casual", "personal", "advance"},
		},
	}
}

func defaultFAQ() []FAQItem {
	return []FAQItem{
		{
			Question:   "How do I submit a leave request?",
			Answer:     `Navigate to your dashboard and click "New Leave Request". Fill in the required details including leave type, dates, and reason. Submit for manager approval.`,
			Category:   "leave-request",
			Tags:       []string{"submit", "request", "approval"},
			Helpful:    45,
			NotHelpful: 2,
		},
		{
			Question:   "How long does leave approval take?",
			Answer:     "Leave requests are typically approved within 2-3 business days. Urgent requests may be processed faster depending on manager availability.",
			Category:   "approval",
			Tags:       []string{"approval", "timeline", "urgent"},
			Helpful:    38,
			NotHelpful: 5,
		},
		{
			Question:   "Can I cancel an approved leave request?",
			Answer:     "Yes, you can cancel an approved leave request up to 3 days before the start date. Contact your manager for cancellation approval.",
			Category:   "general",
			Tags:       []string{"cancel", "approved", "cancellation"},
			Helpful:    32,
			NotHelpful: 3,
		},
		{
			Question:   "How do I sync my leave calendar with external apps?",
			Answer:     "Go to Settings > Calendar Integration and connect your Google Calendar, Outlook, or Apple Calendar. Your approved leaves will automatically sync.",
			Category:   "calendar",
			Tags:       []string{"sync", "calendar", "integration"},
			Helpful:    28,
			NotHelpful: 4,
		},
	}
}
