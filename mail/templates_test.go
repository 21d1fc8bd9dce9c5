package mail

import (
	"strings"
	"testing"
)

func TestNewlineToHTML(t *testing.T) {
	got := NewlineToHTML("line one\nline two\n")
	want := "line one<br>line two<br>"
	if got != want {
		t.Errorf("NewlineToHTML = %q, want %q", got, want)
	}
}

func TestDisclosureEmail(t *testing.T) {
	email := DisclosureEmail("tenant@example.com", "tenant_a", "owner_b", "owner@example.com", "555-0101", "12 Main St, Springfield, IL 62701")

	if email.To != "tenant@example.com" {
		t.Errorf("to = %s", email.To)
	}
	if email.Subject != "Property Owner Interested in Your Inquiry" {
		t.Errorf("subject = %s", email.Subject)
	}
	for _, fragment := range []string{
		"Dear tenant_a",
		"owner_b has read your inquiry",
		"12 Main St, Springfield, IL 62701",
		"Email: owner@example.com",
		"Phone: 555-0101",
		"Rentify Team",
	} {
		if !strings.Contains(email.Text, fragment) {
			t.Errorf("text missing %q", fragment)
		}
	}
	if !strings.Contains(email.HTML, "<br>") {
		t.Error("html body missing <br> substitution")
	}
	if strings.Contains(email.HTML, "\n") {
		t.Error("html body still contains raw newlines")
	}
}

func TestDecisionEmail(t *testing.T) {
	tests := []struct {
		name     string
		approved bool
		custom   string
		want     string
		absent   string
	}{
		{
			name:     "approved",
			approved: true,
			want:     "has been approved",
			absent:   "has been declined",
		},
		{
			name:     "declined",
			approved: false,
			want:     "has been declined",
			absent:   "has been approved",
		},
		{
			name:     "custom message wins",
			approved: true,
			custom:   "Please call our office to schedule a viewing.",
			want:     "Please call our office",
			absent:   "has been approved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := DecisionEmail("applicant@example.com", "Application Update", "12 Main St", tt.approved, tt.custom)
			if !strings.Contains(email.Text, tt.want) {
				t.Errorf("text missing %q:\n%s", tt.want, email.Text)
			}
			if strings.Contains(email.Text, tt.absent) {
				t.Errorf("text unexpectedly contains %q", tt.absent)
			}
			if !strings.Contains(email.Text, "Dear Applicant") {
				t.Error("text missing salutation")
			}
			if !strings.Contains(email.Text, "The Property Management Team") {
				t.Error("text missing signature")
			}
		})
	}
}

func TestOwnerInterestedEmail(t *testing.T) {
	email := OwnerInterestedEmail("tenant@example.com", "Tenant A", "Owner B", "555-0101", "Sunny Loft", "12 Main St", "Springfield", "IL", "62701")

	for _, fragment := range []string{
		"Dear Tenant A",
		"property owner (Owner B)",
		"Title: Sunny Loft",
		"Address: 12 Main St, Springfield, IL 62701",
		"Owner's Phone: 555-0101",
	} {
		if !strings.Contains(email.Text, fragment) {
			t.Errorf("text missing %q", fragment)
		}
	}
}
