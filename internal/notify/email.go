package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

const shopName = "Barbearia Pereira"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<div style="font-family: monospace; background-color: #050505; color: #ffffff; padding: 40px; text-align: center;">
  <div style="max-width: 600px; margin: 0 auto; border: 1px solid rgba(255,255,255,0.1); padding: 40px;">
    <h1 style="font-size: 24px; letter-spacing: 0.2em; margin-bottom: 40px; text-transform: uppercase;">{{.Shop}}</h1>
    <p style="font-size: 14px; color: rgba(255,255,255,0.7); margin-bottom: 40px;">
      Olá {{.Name}},<br><br>
      O seu agendamento foi confirmado com sucesso.
    </p>
    <div style="background-color: rgba(255,255,255,0.05); padding: 20px; text-align: left; margin-bottom: 40px;">
      <p style="margin: 10px 0;">Serviço<br>{{.Service}}</p>
      <p style="margin: 10px 0;">Data &amp; Hora<br>{{.Date}} às {{.Time}}</p>
      <p style="margin: 10px 0;">Valor<br>{{.Price}}</p>
    </div>
    <p style="font-size: 12px; color: rgba(255,255,255,0.3);">
      Caso precise cancelar, entre em contacto com antecedência.<br>
      Estamos à sua espera.
    </p>
  </div>
</div>
`))

type sendFunc func(ctx context.Context, from, to string, msg []byte) error

// EmailChannel sends the booking confirmation over SMTP. Port 465 uses
// implicit TLS; any other port uses STARTTLS when the server offers it.
type EmailChannel struct {
	host string
	port string
	user string
	pass string

	send sendFunc
}

func NewEmailChannel(host, port, user, pass string) *EmailChannel {
	e := &EmailChannel{host: host, port: port, user: user, pass: pass}
	e.send = e.smtpSend
	return e
}

func (e *EmailChannel) Name() string { return "email" }

func (e *EmailChannel) Send(ctx context.Context, ev BookingCreated) error {
	if ev.CustomerEmail == "" {
		return nil
	}

	body, err := renderConfirmation(ev)
	if err != nil {
		return err
	}

	msg := buildMessage(e.user, ev.CustomerEmail, "Confirmação de Agendamento - "+shopName, body)
	return e.send(ctx, e.user, ev.CustomerEmail, msg)
}

func renderConfirmation(ev BookingCreated) (string, error) {
	var buf bytes.Buffer
	err := confirmationTmpl.Execute(&buf, map[string]string{
		"Shop":    shopName,
		"Name":    ev.CustomerName,
		"Service": ev.ServiceName,
		"Date":    displayDate(ev.Date),
		"Time":    ev.Time,
		"Price":   FormatBRL(ev.Price),
	})
	return buf.String(), err
}

func buildMessage(from, to, subject, html string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", mime.QEncoding.Encode("utf-8", shopName)+" <"+from+">")
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(html)
	b.WriteString("\r\n")
	return []byte(b.String())
}

func (e *EmailChannel) smtpSend(ctx context.Context, from, to string, msg []byte) error {
	addr := net.JoinHostPort(e.host, e.port)
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var (
		conn net.Conn
		err  error
	)
	if e.port == "465" {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: e.host}}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, e.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if e.port != "465" {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(&tls.Config{ServerName: e.host}); err != nil {
				return err
			}
		}
	}

	if e.user != "" {
		if err := c.Auth(smtp.PlainAuth("", e.user, e.pass, e.host)); err != nil {
			return err
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// FormatBRL renders centavos as Brazilian reais, e.g. 123456 -> "R$ 1.234,56".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	units := strconv.FormatInt(cents/100, 10)
	var grouped []string
	for len(units) > 3 {
		grouped = append([]string{units[len(units)-3:]}, grouped...)
		units = units[:len(units)-3]
	}
	grouped = append([]string{units}, grouped...)

	return fmt.Sprintf("%sR$ %s,%02d", sign, strings.Join(grouped, "."), cents%100)
}

// displayDate turns YYYY-MM-DD into DD/MM/YYYY; anything else is returned as is.
func displayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
