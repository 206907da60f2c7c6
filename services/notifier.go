package services

import (
	"fmt"
	"strings"

	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/utils"
)

// EmailNotifier письмо-подтверждение на email из бронирования.
// Отправка асинхронная, ошибки только логируются.
type EmailNotifier struct {
	SMTP utils.SMTPSettings
	send func(to, subject, body string, smtp utils.SMTPSettings) error
}

func NewEmailNotifier(smtp utils.SMTPSettings) *EmailNotifier {
	return &EmailNotifier{SMTP: smtp, send: utils.SendEmail}
}

func (n *EmailNotifier) BookingCreated(b *models.Booking) {
	if !n.SMTP.Enabled() || b.Email == nil || *b.Email == "" {
		return
	}
	to := *b.Email
	subject, body := BookingConfirmation(b)
	go func() {
		if err := n.send(to, subject, body, n.SMTP); err != nil {
			utils.LogError(err, "booking confirmation email "+b.ID)
		}
	}()
}

// BookingConfirmation тема и текст письма
func BookingConfirmation(b *models.Booking) (string, string) {
	ref := b.ID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	ref = strings.ToUpper(ref)
	subject := fmt.Sprintf("Confirmation de réservation %s → %s", b.Origin, b.Destination)

	body := fmt.Sprintf("Référence: %s\nTrajet: %s → %s\nDate de départ: %s\n",
		ref, b.Origin, b.Destination, b.DepartDate.Format("02/01/2006"))
	if b.ReturnDate != nil {
		body += fmt.Sprintf("Date de retour: %s\n", b.ReturnDate.Format("02/01/2006"))
	}
	body += fmt.Sprintf("Classe: %s\n", strings.ToUpper(b.Cabin))
	return subject, body
}
