package email

import (
	"crypto/tls"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host string, port int, user, password, fromName, fromEmail string) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("host SMTP no configurado")
	}
	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico con cuerpo HTML
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d): %w", c.host, c.port, err)
	}
	return nil
}

// ConfirmacionInfo contiene los datos de la reserva para el correo de
// confirmación
type ConfirmacionInfo struct {
	Codigo           string
	NombreHuesped    string
	EmailHuesped     string
	NumeroHabitacion int
	TipoHabitacion   string
	FechaEntrada     time.Time
	FechaSalida      time.Time
	Noches           int
	Total            float64
}

// SendConfirmacionReserva envía el correo de confirmación de una reserva
func (c *Client) SendConfirmacionReserva(info ConfirmacionInfo) error {
	subject := fmt.Sprintf("Confirmación de Reserva %s - %s", info.Codigo, c.fromName)
	return c.SendEmail(info.EmailHuesped, subject, generarHTMLConfirmacion(info))
}

func generarHTMLConfirmacion(info ConfirmacionInfo) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #2c3e50;">¡Reserva confirmada!</h2>
		<p>Hola %s,</p>
		<p>Tu reserva <strong>%s</strong> ha sido confirmada. Estos son los detalles:</p>
		<table style="width: 100%%; border-collapse: collapse;">
			<tr>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;"><strong>Habitación</strong></td>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">N° %d (%s)</td>
			</tr>
			<tr>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;"><strong>Entrada</strong></td>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">%s</td>
			</tr>
			<tr>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;"><strong>Salida</strong></td>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">%s</td>
			</tr>
			<tr>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;"><strong>Noches</strong></td>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">%d</td>
			</tr>
			<tr>
				<td style="padding: 10px;"><strong>Total de la estadía</strong></td>
				<td style="padding: 10px;"><strong>$%.2f</strong></td>
			</tr>
		</table>
		<p style="margin-top: 20px; color: #7f8c8d;">Te esperamos. Si necesitás modificar tu reserva, contactá a recepción.</p>
	</div>`,
		info.NombreHuesped,
		info.Codigo,
		info.NumeroHabitacion,
		info.TipoHabitacion,
		info.FechaEntrada.Format("02/01/2006"),
		info.FechaSalida.Format("02/01/2006"),
		info.Noches,
		info.Total,
	)
}
