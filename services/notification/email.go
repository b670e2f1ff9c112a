// Package notification sends transactional email through SendGrid.
package notification

import (
	"fmt"

	"trackcare/config"
	"trackcare/models"
	"trackcare/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailSender sends one email. Satisfied by the SendGrid client; swapped
// for a recorder in tests.
type EmailSender interface {
	Send(message *mail.SGMailV3) (statusCode int, err error)
}

type sendgridSender struct {
	client *sendgrid.Client
}

func (s *sendgridSender) Send(message *mail.SGMailV3) (int, error) {
	resp, err := s.client.Send(message)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

// EmailService builds and sends the app's transactional emails.
type EmailService struct {
	sender   EmailSender
	fromName string
	fromAddr string
}

// NewEmailService creates an EmailService backed by SendGrid using the
// configured key and sender address.
func NewEmailService() *EmailService {
	return &EmailService{
		sender:   &sendgridSender{client: sendgrid.NewSendClient(config.AppConfig.SendGridKey)},
		fromName: "TrackCare",
		fromAddr: config.AppConfig.SendGridFrom,
	}
}

// NewEmailServiceWithSender creates an EmailService with a custom sender.
func NewEmailServiceWithSender(sender EmailSender) *EmailService {
	return &EmailService{sender: sender, fromName: "TrackCare", fromAddr: "no-reply@trackcare.test"}
}

// SendBookingConfirmation emails the parent after a booking is created.
func (e *EmailService) SendBookingConfirmation(user, therapist *models.User, b *models.Booking) error {
	subject := "Your therapy session is booked"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour session with %s is confirmed for %s at %s.\n\nSee you then,\nTrackCare",
		user.FirstName, therapist.FullName(), b.Date, b.Time,
	)
	return e.send(user.FullName(), user.Email, subject, body)
}

// SendBookingReminder emails the parent ahead of the session.
func (e *EmailService) SendBookingReminder(p models.ReminderPayload) error {
	subject := "Reminder: therapy session tomorrow"
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder of your session with %s on %s at %s.\n\nTrackCare",
		p.Name, p.TherapistName, p.Date, p.Time,
	)
	return e.send(p.Name, p.Email, subject, body)
}

// SendApplicationDecision emails the applicant the review outcome.
func (e *EmailService) SendApplicationDecision(app *models.TherapistApplication, approved bool) error {
	var subject, body string
	if approved {
		subject = "Your therapist application was approved"
		body = fmt.Sprintf(
			"Hi %s,\n\nCongratulations! Your application has been approved and your account now has therapist access.\n\nTrackCare",
			app.FullName,
		)
	} else {
		subject = "Update on your therapist application"
		body = fmt.Sprintf(
			"Hi %s,\n\nAfter review, your application was not approved at this time.",
			app.FullName,
		)
		if app.DecisionNote != "" {
			body += "\n\nReviewer note: " + app.DecisionNote
		}
		body += "\n\nYou are welcome to apply again.\n\nTrackCare"
	}
	return e.send(app.FullName, app.Email, subject, body)
}

func (e *EmailService) send(toName, toAddr, subject, body string) error {
	from := mail.NewEmail(e.fromName, e.fromAddr)
	to := mail.NewEmail(toName, toAddr)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	status, err := e.sender.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if status >= 300 {
		return fmt.Errorf("email rejected with status %d", status)
	}
	utils.GetLogger().Debug("email sent", zap.String("to", toAddr), zap.String("subject", subject))
	return nil
}
