package mail

import "fmt"

const disclosureSubject = "Property Owner Interested in Your Inquiry"

// DisclosureEmail is sent to the tenant when the property owner reads
// their inquiry and discloses contact details.
func DisclosureEmail(to, tenantName, ownerName, ownerEmail, ownerPhone, propertyAddress string) Email {
	text := fmt.Sprintf(`
Dear %s,

Good news! %s has read your inquiry about the property at %s and is interested in your message.

Contact Details:
- Name: %s
- Email: %s
- Phone: %s

They will be in touch with you shortly to discuss further details about the property. Feel free to contact them directly using the information above.

Best regards,
Rentify Team
`, tenantName, ownerName, propertyAddress, ownerName, ownerEmail, ownerPhone)

	return Email{
		To:      to,
		Subject: disclosureSubject,
		Text:    text,
		HTML:    NewlineToHTML(text),
	}
}

// OwnerInterestedEmail is sent when a notification is marked read; it is
// composed from the notification record as it was before the update.
func OwnerInterestedEmail(to, tenantName, ownerName, ownerPhone, propertyName, street, city, state, zipcode string) Email {
	text := fmt.Sprintf(`
Dear %s,

The property owner (%s) is interested in your inquiry about the property at %s, %s.

Property Details:
- Title: %s
- Address: %s, %s, %s %s

Contact Information:
- Owner's Name: %s
- Owner's Phone: %s

The owner will contact you shortly to discuss further details.

Best regards,
Rentify Team
`, tenantName, ownerName, street, city, propertyName, street, city, state, zipcode, ownerName, ownerPhone)

	return Email{
		To:      to,
		Subject: disclosureSubject,
		Text:    text,
		HTML:    NewlineToHTML(text),
	}
}

// DecisionEmail is the templated application approve/decline notice.
func DecisionEmail(to, subject, propertyAddress string, approved bool, customMessage string) Email {
	body := customMessage
	if body == "" {
		if approved {
			body = fmt.Sprintf(`We are pleased to inform you that your application for the property at %s has been approved.

We look forward to working with you on the next steps of the process.`, propertyAddress)
		} else {
			body = fmt.Sprintf(`We regret to inform you that your application for the property at %s has been declined.

We appreciate your interest and wish you the best in your property search.`, propertyAddress)
		}
	}

	text := fmt.Sprintf(`Dear Applicant,

%s

Best regards,
The Property Management Team`, body)

	return Email{
		To:      to,
		Subject: subject,
		Text:    text,
		HTML:    NewlineToHTML(text),
	}
}
