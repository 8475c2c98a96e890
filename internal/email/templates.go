package email

import "fmt"

// StatusChangedBody renders the notification sent to an applicant when an
// employer moves their application to a new status.
func StatusChangedBody(applicantName, jobTitle, status string) (subject, body string) {
	subject = fmt.Sprintf("Your application for %q was updated", jobTitle)
	body = fmt.Sprintf(
		"<p>Hi %s,</p><p>Your application for <b>%s</b> is now <b>%s</b>.</p><p>The Job Connect Team</p>",
		applicantName, jobTitle, status,
	)
	return subject, body
}
