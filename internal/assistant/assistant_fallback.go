package assistant

import (
	"fmt"
	"strings"

	"go-hrms/internal/leave"
	"go-hrms/internal/ledger"
)

const vacationTips = `

Here are some tips for vacation planning:
• Consider taking vacation during off-peak seasons for better availability
• Plan around company holidays to maximize your time off
• Submit your request at least 2 weeks in advance
• Check with your manager about team coverage during your absence

Would you like me to help you calculate how many days you can take for a specific period?`

const sickPolicy = `

Important sick leave policies:
• Sick leave can be taken immediately when needed
• You may need to provide a medical certificate for extended sick leave
• Sick leave is separate from your other leave types
• Contact your manager as soon as possible when taking sick leave

Is this for immediate use or planning purposes?`

const policySummary = `Here are the key leave policies:

**General Leave Policies:**
• Submit leave requests at least 2 weeks in advance (except sick leave)
• All leave must be approved by your manager
• Leave requests are processed within 3-5 business days
• You can't take more leave than your available balance

**Leave Types:**
• Sick Leave: For health-related absences
• Casual Leave: For personal matters (up to 3 days at a time)
• Vacation Leave: For planned time off and holidays

**Request Process:**
1. Submit request through the system
2. Manager reviews and approves/rejects
3. You receive notification of the decision
4. Leave is deducted from your balance upon approval

Would you like more specific information about any of these policies?`

const helpText = `I'm here to help you with leave management! I can assist with:

• Checking your leave balance
• Planning vacation time
• Understanding leave policies
• Tracking request status
• Calculating leave days

What specific information would you like to know about your leave?`

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// fallbackReply answers from a fixed keyword table. The first matching row
// wins.
func fallbackReply(message string, b ledger.BalanceResponse, requests []leave.LeaveResponse) string {
	m := strings.ToLower(message)

	switch {
	case strings.Contains(m, "balance") || (strings.Contains(m, "leave") && strings.Contains(m, "left")):
		return balanceSummary(b)
	case containsAny(m, "vacation", "plan", "holiday"):
		return fmt.Sprintf("Great! Let me help you plan your vacation. You have %d vacation days remaining.", b.Vacation.Available) + vacationTips
	case containsAny(m, "sick", "ill", "health"):
		return fmt.Sprintf("For sick leave, you have %d days remaining.", b.Sick.Available) + sickPolicy
	case containsAny(m, "policy", "rule", "guideline"):
		return policySummary
	case containsAny(m, "request", "status", "pending"):
		return requestStatus(requests)
	default:
		return helpText
	}
}

func balanceSummary(b ledger.BalanceResponse) string {
	var sb strings.Builder
	sb.WriteString("Based on your current leave balance:\n")
	fmt.Fprintf(&sb, "• Sick Leave: %d days remaining out of %d\n", b.Sick.Available, b.Sick.Allocated)
	fmt.Fprintf(&sb, "• Casual Leave: %d days remaining out of %d\n", b.Casual.Available, b.Casual.Allocated)
	fmt.Fprintf(&sb, "• Vacation Leave: %d days remaining out of %d\n\n", b.Vacation.Available, b.Vacation.Allocated)
	fmt.Fprintf(&sb, "You have a total of %d days of leave remaining.", b.Sick.Available+b.Casual.Available+b.Vacation.Available)
	return sb.String()
}

func requestStatus(requests []leave.LeaveResponse) string {
	var pending, approved []leave.LeaveResponse
	for _, r := range requests {
		switch r.Status {
		case leave.StatusPending:
			pending = append(pending, r)
		case leave.StatusApproved:
			approved = append(approved, r)
		}
	}

	var sb strings.Builder
	sb.WriteString("Here's your leave request status:\n\n")
	fmt.Fprintf(&sb, "**Pending Requests:** %d\n", len(pending))
	writeRequestLines(&sb, pending)
	fmt.Fprintf(&sb, "\n**Approved Requests:** %d\n", len(approved))
	writeRequestLines(&sb, approved)
	sb.WriteString("\n")
	if len(pending) > 0 {
		sb.WriteString("Your pending requests are being reviewed by your manager.")
	} else {
		sb.WriteString("You have no pending requests at the moment.")
	}
	return sb.String()
}

func writeRequestLines(sb *strings.Builder, requests []leave.LeaveResponse) {
	for _, r := range requests {
		fmt.Fprintf(sb, "• %s leave: %s to %s (%d days)\n", r.LeaveType, r.StartDate, r.EndDate, r.Days)
	}
}
