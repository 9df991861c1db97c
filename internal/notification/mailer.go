package notification

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/cachinadev/turismo-app/internal/config"
	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const mailDateFormat = "02.01.2006"

// Mailer sends transactional email over SMTP. When no host is configured
// the mailer stays enabled but every send turns into a debug log, so the
// rest of the pipeline never has to care.
type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	brand    string
	operator string
	logger   logger.Logger
}

func NewMailer(cfg config.SMTPConfig, logger logger.Logger) *Mailer {
	m := &Mailer{
		from:     cfg.From,
		brand:    cfg.BrandName,
		operator: cfg.OperatorAddr,
		logger:   logger,
	}

	if cfg.Host == "" {
		logger.Warn("smtp host is empty, outbound mail disabled")
		return m
	}

	m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return m
}

// SendBookingEmails delivers the customer confirmation and the operator
// alert for a freshly created booking. Failures are logged, never returned:
// a booking must not fail because mail did.
func (m *Mailer) SendBookingEmails(ctx context.Context, booking *domain.Booking, pkg *domain.Package) {
	pdf, err := BuildConfirmationPDF(booking, pkg, m.brand)
	if err != nil {
		m.logger.Error("failed to build confirmation pdf",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		pdf = nil
	}

	customer := gomail.NewMessage()
	customer.SetHeader("From", m.from)
	customer.SetHeader("To", booking.Customer.Email)
	customer.SetHeader("Subject", fmt.Sprintf("%s – Recibimos tu reserva: %s", m.brand, pkg.Title))
	customer.SetBody("text/html", customerBookingBody(booking, pkg, m.brand))
	attachPDF(customer, "confirmacion-reserva.pdf", pdf)
	m.send(ctx, customer, "booking confirmation", booking.ID)

	if m.operator == "" {
		return
	}
	alert := gomail.NewMessage()
	alert.SetHeader("From", m.from)
	alert.SetHeader("To", m.operator)
	alert.SetHeader("Subject", fmt.Sprintf("Nueva reserva: %s (%s)", pkg.Title, booking.Customer.Name))
	alert.SetBody("text/html", operatorBookingBody(booking, pkg))
	attachPDF(alert, "confirmacion-reserva.pdf", pdf)
	m.send(ctx, alert, "operator alert", booking.ID)
}

// SendContactEmail relays a contact form message to the operator inbox.
func (m *Mailer) SendContactEmail(ctx context.Context, msg *domain.ContactMessage) {
	if m.operator == "" {
		m.logger.Debug("contact message skipped (no operator address)",
			logger.String("email", msg.Email),
		)
		return
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.operator)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", fmt.Sprintf("Mensaje de contacto: %s", msg.Subject))
	mail.SetBody("text/html", contactBody(msg))
	m.send(ctx, mail, "contact relay", msg.Email)
}

func (m *Mailer) send(ctx context.Context, msg *gomail.Message, kind, ref string) {
	if m.dialer == nil {
		m.logger.Debug("mail skipped (smtp disabled)",
			logger.String("kind", kind),
			logger.String("ref", ref),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		m.logger.Debug("mail skipped (context cancelled)",
			logger.String("kind", kind),
			logger.String("ref", ref),
		)
		return
	}

	start := time.Now()
	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send mail",
			logger.String("kind", kind),
			logger.String("ref", ref),
			logger.String("error", err.Error()),
		)
		return
	}

	m.logger.Info("mail sent",
		logger.String("kind", kind),
		logger.String("ref", ref),
		logger.Duration("took", time.Since(start)),
	)
}

func attachPDF(msg *gomail.Message, name string, data []byte) {
	if len(data) == 0 {
		return
	}
	msg.Attach(name,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)
}

func customerBookingBody(b *domain.Booking, p *domain.Package, brand string) string {
	return fmt.Sprintf(
		`<h2>¡Gracias por tu reserva, %s!</h2>
<p>Hemos recibido tu solicitud para <strong>%s</strong>.</p>
<ul>
<li>Fecha del tour: %s</li>
<li>Pasajeros: %d adultos, %d niños</li>
<li>Total estimado: %.2f %s</li>
</ul>
<p>Un asesor de %s te contactará para confirmar la disponibilidad.</p>`,
		b.Customer.Name, p.Title,
		b.Date.Format(mailDateFormat),
		b.People.Adults, b.People.Children,
		b.TotalPrice, p.Currency,
		brand,
	)
}

func operatorBookingBody(b *domain.Booking, p *domain.Package) string {
	return fmt.Sprintf(
		`<h2>Nueva reserva recibida</h2>
<ul>
<li>Paquete: %s (%s)</li>
<li>Fecha del tour: %s</li>
<li>Pasajeros: %d adultos, %d niños</li>
<li>Total: %.2f %s</li>
<li>Cliente: %s &lt;%s&gt; %s</li>
<li>Idioma: %s</li>
</ul>
<p>%s</p>`,
		p.Title, p.Slug,
		b.Date.Format(mailDateFormat),
		b.People.Adults, b.People.Children,
		b.TotalPrice, p.Currency,
		b.Customer.Name, b.Customer.Email, b.Customer.Phone,
		b.Customer.Language,
		b.Notes,
	)
}

func contactBody(m *domain.ContactMessage) string {
	return fmt.Sprintf(
		`<h2>Mensaje desde el formulario de contacto</h2>
<ul>
<li>Nombre: %s</li>
<li>Email: %s</li>
<li>Teléfono: %s</li>
</ul>
<p>%s</p>`,
		m.Name, m.Email, m.Phone, m.Message,
	)
}
