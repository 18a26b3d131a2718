package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"digishield-backend/internal/domain"
)

// ErrUnknownTemplate is returned for an invite template name outside the
// known set.
var ErrUnknownTemplate = errors.New("unknown draft template")

// DeliveryMethod tells the dashboard how to hand a draft to the admin's
// mail client.
type DeliveryMethod string

const (
	// DeliveryMailto opens the draft through a mailto: URI.
	DeliveryMailto DeliveryMethod = "mailto"
	// DeliveryClipboard is used when the body is too long for a mailto:
	// URI; the preformatted Clipboard payload is copied instead.
	DeliveryClipboard DeliveryMethod = "clipboard"
)

// mailtoBodyLimit is the practical length ceiling browsers and mail
// handlers enforce on mailto: URIs.
const mailtoBodyLimit = 2000

// Draft is a composed notification. It is never transmitted by the
// server; the dashboard launches the MailtoURI or copies Clipboard.
type Draft struct {
	To        string         `json:"to"`
	Subject   string         `json:"subject"`
	Body      string         `json:"body"`
	Method    DeliveryMethod `json:"method"`
	MailtoURI string         `json:"mailto_uri,omitempty"`
	Clipboard string         `json:"clipboard"`
}

// NewDraft builds a draft and decides its delivery method. Bodies over the
// mailto limit never get a mailto URI; shorter bodies carry both, with the
// clipboard payload kept as the client-side fallback.
func NewDraft(to, subject, body string) *Draft {
	d := &Draft{
		To:        to,
		Subject:   subject,
		Body:      body,
		Clipboard: fmt.Sprintf("To: %s\nSubject: %s\n\n%s", to, subject, body),
	}
	if len(body) > mailtoBodyLimit {
		d.Method = DeliveryClipboard
		return d
	}
	d.Method = DeliveryMailto
	d.MailtoURI = "mailto:" + mailtoEscape(to) + "?subject=" + mailtoEscape(subject) + "&body=" + mailtoEscape(body)
	return d
}

// mailtoEscape percent-encodes a mailto component. Spaces must be %20, not
// the +-encoding query escaping produces.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// InviteTemplate names the ad hoc volunteer drafts available from the
// dashboard alongside the status actions.
type InviteTemplate string

const (
	InviteInterview InviteTemplate = "interview"
	InviteTraining  InviteTemplate = "training"
	InviteWelcome   InviteTemplate = "welcome"
)

type notificationService struct{}

func NewNotificationService() NotificationService {
	return &notificationService{}
}

const ceoMessage = `A Message from Our CEO

"Our digital lifestyle is largely visible to others. We share extensive information about ourselves, which can make us somewhat vulnerable. Cybercriminals can exploit the information that is publicly available, much of which we may not even realize we are sharing. Data brokers compile and distribute this information, making it accessible to anyone. Claim your spot in our cybersecurity awareness, as we discuss how cybercriminals can gain access to your accounts and your digital activities, and ways to protect yourself from other cybercrimes like Cyberbullying, Phishing, Identity Theft, Hacking, and Online Fraud."

- Howkins Ndemo, Chief Executive Officer & Founder`

const signatureBlock = `Digishield Communication Solutions
Promoting Cybersecurity Awareness Across Kenya

📧 info.digishield@gmail.com
📱 +254 792 281 590
💬 WhatsApp: +254 792 281 590
🌐 www.digishield.co.ke`

const letterFooter = "\n\n---\n\n" + ceoMessage + "\n\n---\n\n" + signatureBlock

const interviewLetter = `Dear %s,

Thank you for your interest in joining Digishield, a leading organization in cybersecurity awareness and education.

We are pleased to inform you that you have been shortlisted for the next stage of our recruitment process for the position of %s. After reviewing your application, we were impressed with your background and qualifications.

We would like to schedule an interview with you to further discuss your experience and potential fit with our team.

Interview Details:

Date: [Insert Date]
Time: [Insert Time] [Include time zone if needed]
Mode: [In-person / Virtual – e.g., Zoom, Google Meet]
Duration: Approximately [XX] minutes
Interviewer(s): [Name(s) and title(s), if known]

Please confirm your availability by replying to this email by [Confirmation Deadline – e.g., September 3rd, 5:00 PM].

If you require any adjustments or have questions prior to the interview, feel free to let us know.

We look forward to speaking with you soon and learning more about how you can contribute to Digishield's mission of promoting cybersecurity awareness across communities.

Warm regards,
[Your Full Name]
[Your Job Title]
Digishield
[Phone Number – optional]
[Email Signature / Company Website – optional]` + letterFooter

const trainingLetter = `Dear %s,

Congratulations once again on successfully completing the interview process!

We are pleased to inform you that you have progressed to the training phase as part of your onboarding journey with Digishield. This training is a key step in preparing you for your role and aligning you with our mission of promoting cybersecurity awareness.

🗓️ Training Details:

Start Date: [Insert Date]
Time: [Insert Time] [Include time zone if applicable]
Mode: [In-person / Virtual – include platform link if online]
Duration: [e.g., 3 days, 1 week, etc.]
Trainer(s): [Trainer Name(s), if applicable]

During this session, you will:

• Be introduced to Digishield's core values and cybersecurity awareness programs.
• Receive hands-on guidance and resources relevant to your role.
• Participate in interactive learning and assessments.

Please confirm your attendance by replying to this email by [Confirmation Deadline – e.g., September 3rd, 5:00 PM].

If you have any questions or require further assistance, feel free to reach out.

We look forward to having you onboard and supporting your growth at Digishield.

Best regards,
[Your Full Name]
[Your Job Title]
Digishield
[Phone Number – optional]
[Email Signature / Company Website – optional]` + letterFooter

const welcomeLetter = `Dear %s,

Congratulations on successfully completing your training at Digishield! We're thrilled to officially welcome you to the team.

Your dedication and enthusiasm throughout the training process were commendable, and we're confident that you'll make a meaningful contribution to our mission of advancing cybersecurity awareness and education.

What's Next:

You will soon receive:

• Your official onboarding documents and work tools (if not already provided)
• Access to our internal systems and communication platforms
• Your assigned supervisor or mentor for the first few weeks

As you settle into your role, please don't hesitate to reach out with any questions or if you need support. We believe in creating a collaborative and supportive environment where everyone can grow and thrive.

Once again, welcome aboard! We look forward to achieving great things together.

Warm regards,
[Your Full Name]
[Your Job Title]
Digishield
[Phone Number – optional]
[Email Signature / Company Website – optional]` + letterFooter

const declineLetter = `Dear %s,

Thank you for taking the time to apply for the position of %s at Digishield.

After careful consideration of all applications, we regret to inform you that you have not been shortlisted for the next stage of the recruitment process. This decision was not easy, as we received a large number of strong applications, including yours.

We truly appreciate your interest in Digishield and the time you invested in your application. We encourage you to stay connected with us and apply for future opportunities that align with your skills and experience.

We wish you the very best in your career and future endeavors.

Warm regards,
[Your Full Name]
[Your Job Title]
Digishield
[Phone Number – optional]
[Email Signature / Company Website – optional]` + letterFooter

// OrganisationDraft composes the canned letter matching a target status.
// The submitted status has no letter and yields no draft.
func (s *notificationService) OrganisationDraft(app *domain.OrganisationApplication, target domain.OrganisationStatus) (*Draft, error) {
	role := app.RoleApplied
	if role == "" {
		role = "the applied role"
	}
	switch target {
	case domain.OrganisationStatusInterview:
		return NewDraft(app.Email,
			"Congratulations! You've Been Shortlisted for an Interview at Digishield",
			fmt.Sprintf(interviewLetter, app.FullName, role)), nil
	case domain.OrganisationStatusTraining:
		return NewDraft(app.Email,
			"Training Schedule & Next Steps at Digishield",
			fmt.Sprintf(trainingLetter, app.FullName)), nil
	case domain.OrganisationStatusAccepted:
		return NewDraft(app.Email,
			"Welcome to Digishield – We're Excited to Have You Onboard!",
			fmt.Sprintf(welcomeLetter, app.FullName)), nil
	case domain.OrganisationStatusDeclined:
		return NewDraft(app.Email,
			"Update on Your Application at Digishield",
			fmt.Sprintf(declineLetter, app.FullName, role)), nil
	case domain.OrganisationStatusSubmitted:
		return nil, nil
	}
	return nil, domain.ErrUnknownStatus
}

// DefaultVolunteerMessage is the canned sentence used when the admin
// supplies no message for a volunteer status change.
func DefaultVolunteerMessage(status domain.VolunteerStatus) string {
	switch status {
	case domain.VolunteerStatusActive:
		return "Congratulations! Your volunteer application has been approved."
	case domain.VolunteerStatusInactive:
		return "Your volunteer profile has been deactivated. Contact us if this was unexpected."
	default:
		return "We appreciate your interest. Unfortunately, your application was not approved at this time."
	}
}

func volunteerSubject(status domain.VolunteerStatus) string {
	switch status {
	case domain.VolunteerStatusActive:
		return "Volunteer Application Approved"
	case domain.VolunteerStatusInactive:
		return "Volunteer Profile Deactivated"
	default:
		return "Volunteer Application Update"
	}
}

// VolunteerDraft wraps the admin's message, or the status default when the
// message is empty, in the short volunteer notification body.
func (s *notificationService) VolunteerDraft(app *domain.VolunteerApplication, target domain.VolunteerStatus, message string) *Draft {
	if message == "" {
		message = DefaultVolunteerMessage(target)
	}
	body := message + "\n\nRegards,\nDigishield Admin"
	return NewDraft(app.Email, volunteerSubject(target), body)
}

func (s *notificationService) VolunteerInvite(app *domain.VolunteerApplication, template InviteTemplate) (*Draft, error) {
	switch template {
	case InviteInterview:
		return NewDraft(app.Email,
			"Interview Invitation - Digishield Volunteers",
			fmt.Sprintf("Hello %s,\n\nThank you for applying to volunteer with Digishield. We'd like to schedule a short interview. Please reply with your availability.\n\nRegards,\nDigishield Admin", app.Name)), nil
	case InviteTraining:
		return NewDraft(app.Email,
			"Training Session - Digishield Volunteers",
			fmt.Sprintf("Hello %s,\n\nCongratulations! We'd like to invite you to our volunteer training. Please confirm your availability for the proposed date/time.\n\nRegards,\nDigishield Admin", app.Name)), nil
	case InviteWelcome:
		return NewDraft(app.Email,
			"Welcome to Digishield Volunteers",
			fmt.Sprintf("Hello %s,\n\nWelcome aboard! Your start date is: ____. We will share onboarding details shortly.\n\nRegards,\nDigishield Admin", app.Name)), nil
	}
	return nil, ErrUnknownTemplate
}
