package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"fitcore/internal/config"
)

type IMailService interface {
	SendResetPassword(to, token string) error
}

type smtpMailService struct {
	cfg        config.SMTPSettings
	appBaseURL string
	htmlTpl    *template.Template
}

func NewSMTPMailService(cfg config.SMTPSettings, appBaseURL string) IMailService {
	return &smtpMailService{
		cfg:        cfg,
		appBaseURL: appBaseURL,
		htmlTpl:    template.Must(template.New("resetHTML").Parse(resetHTMLTemplate)),
	}
}

type resetEmailData struct {
	AppName string
	Link    string
	Year    int
}

const resetHTMLTemplate = `<!doctype html>
<html>
<body style="margin:0;background:#111827;color:#f9fafb;font-family:Arial,Helvetica,sans-serif">
  <div style="max-width:560px;margin:32px auto;background:#1f2937;border-radius:12px;padding:32px">
    <h2 style="margin:0 0 8px;color:#f97316">{{.AppName}}</h2>
    <h1 style="margin:0 0 16px;font-size:22px">Reset your password</h1>
    <p style="line-height:1.6;color:#d1d5db">We received a request to reset your password.
    Click the button below to continue. If you did not request this, you can ignore this email.</p>
    <p style="margin:24px 0">
      <a href="{{.Link}}" style="background:#f97316;color:#fff;padding:12px 24px;border-radius:8px;text-decoration:none;font-weight:bold">Reset Password</a>
    </p>
    <p style="color:#9ca3af;font-size:12px;word-break:break-all">Or paste this link into your browser:<br>{{.Link}}</p>
    <p style="color:#6b7280;font-size:12px;margin-top:32px">&copy; {{.Year}} {{.AppName}}. All rights reserved.</p>
  </div>
</body>
</html>`

func (s *smtpMailService) SendResetPassword(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.appBaseURL, "/"), url.QueryEscape(token))

	var body bytes.Buffer
	err := s.htmlTpl.Execute(&body, resetEmailData{
		AppName: s.cfg.FromName,
		Link:    link,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return s.send(to, "Reset your password", body.String())
}

func (s *smtpMailService) send(to, subject, htmlBody string) error {
	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("\r\n%s\r\n", htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS, usually port 465
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()
		return s.deliver(conn, auth, to, msg.Bytes())
	}

	// STARTTLS, typically port 587
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err := client.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	return s.finish(client, auth, to, msg.Bytes())
}

func (s *smtpMailService) deliver(conn net.Conn, auth smtp.Auth, to string, msg []byte) error {
	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Quit()

	return s.finish(client, auth, to, msg)
}

func (s *smtpMailService) finish(client *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write(msg); err != nil {
		return err
	}
	return writer.Close()
}
