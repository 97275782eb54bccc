package utils

import (
	"bytes"
	"cruise_manager/config"
	"cruise_manager/logger"
	"embed"
	"html/template"
	"io"
	"net/smtp"
	"strconv"

	"github.com/jordan-wright/email"
	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var bookingTemplate = template.Must(template.ParseFS(templateFS, "templates/booking_confirmation.html"))

type confirmationLabels struct {
	Cruise, Date, Passengers, Booking, Total, Reference, Receipt, BoardingPass string
}

// BookingConfirmationData feeds the confirmation email template
type BookingConfirmationData struct {
	Lang         string
	PaymentCode  string
	CustomerName string
	CruiseName   string
	SelectedDate string
	Passengers   int
	BookingType  string
	TotalAmount  string
	ReceiptUrl   string

	Title    string
	Greeting string
	Intro    string
	Labels   confirmationLabels
}

func (d *BookingConfirmationData) localize() {
	if d.Lang == "en" {
		d.Title = "Your cruise is booked"
		d.Greeting = "Hello"
		d.Intro = "Thank you for your payment. Your booking is confirmed."
		d.Labels = confirmationLabels{"Cruise", "Dates", "Passengers", "Booking", "Total paid", "Reference", "View receipt", "Show this QR code when boarding."}
		return
	}
	d.Title = "Votre croisière est réservée"
	d.Greeting = "Bonjour"
	d.Intro = "Merci pour votre paiement. Votre réservation est confirmée."
	d.Labels = confirmationLabels{"Croisière", "Dates", "Passagers", "Formule", "Total payé", "Référence", "Voir le reçu", "Présentez ce QR code à l'embarquement."}
}

func RenderBookingConfirmation(data BookingConfirmationData) (string, error) {
	data.localize()
	var body bytes.Buffer
	if err := bookingTemplate.Execute(&body, data); err != nil {
		return "", errors.Wrap(err, "render booking confirmation")
	}
	return body.String(), nil
}

// SendBookingConfirmationEmail sends the confirmation with the boarding-pass
// QR embedded. It runs in the background and only logs failures.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData, qrPNG []byte) {
	go func() {
		body, err := RenderBookingConfirmation(data)
		if err != nil {
			logger.Error("booking confirmation template", "error", err)
			return
		}

		port, _ := strconv.Atoi(config.Config("SMTP_PORT"))
		if port == 0 {
			port = 587
		}

		m := gomail.NewMessage()
		m.SetHeader("From", config.Config("SMTP_FROM"))
		m.SetHeader("To", to)
		if data.Lang == "en" {
			m.SetHeader("Subject", "Booking confirmation "+data.PaymentCode)
		} else {
			m.SetHeader("Subject", "Confirmation de réservation "+data.PaymentCode)
		}
		m.SetBody("text/html", body)
		if len(qrPNG) > 0 {
			m.Embed("boarding-pass.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrPNG)
				return err
			}))
		}

		d := gomail.NewDialer(config.Config("SMTP_HOST"), port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			logger.Error("send booking confirmation", "to", to, "payment", data.PaymentCode, "error", err)
			return
		}
		logger.Info("booking confirmation sent", "to", to, "payment", data.PaymentCode)
	}()
}

type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (m ContactMessage) Text() string {
	var b bytes.Buffer
	b.WriteString("Nom: " + m.Name + "\n")
	b.WriteString("Email: " + m.Email + "\n")
	if m.Phone != "" {
		b.WriteString("Téléphone: " + m.Phone + "\n")
	}
	b.WriteString("\n" + m.Message + "\n")
	return b.String()
}

// SendContactEmail forwards a contact form to the operator inbox.
func SendContactEmail(to string, msg ContactMessage) error {
	host := config.Config("SMTP_HOST")
	port := config.Config("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	e := email.NewEmail()
	e.From = config.Config("SMTP_FROM")
	e.To = []string{to}
	e.ReplyTo = []string{msg.Email}
	subject := msg.Subject
	if subject == "" {
		subject = "Nouveau message de " + msg.Name
	}
	e.Subject = "[Contact] " + subject
	e.Text = []byte(msg.Text())

	auth := smtp.PlainAuth("", config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"), host)
	if err := e.Send(host+":"+port, auth); err != nil {
		return errors.Wrap(err, "send contact email")
	}
	return nil
}
