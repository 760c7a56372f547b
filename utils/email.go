package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

//
// ===========================================================
//  EMAIL SENDER (INVITATIONS, CAMPAIGNS, PASSWORD RESET)
// ===========================================================
//

// sendMultipartMail sends a multipart/alternative (plain + html) mail.
// When SMTP is not configured it falls back to a mock log send so dev
// environments keep working.
func sendMultipartMail(recipient, subject, plainBody, htmlBody string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", recipient, subject)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipient}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	boundary := "----=_EVENT_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("failed to send email to %s: %v", recipient, err)
		return err
	}

	log.Printf("email sent to %s (%s)", MaskEmail(recipient), subject)
	return nil
}

// safe strips CRLF so user-supplied strings cannot break headers.
func safe(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// SendRSVPLinkEmail sends the guest their tokenized invitation link.
func SendRSVPLinkEmail(recipient, guestName, eventTitle, rsvpLink string) error {
	guestName = safe(guestName)
	eventTitle = safe(eventTitle)
	rsvpLink = safe(rsvpLink)

	if !(strings.HasPrefix(rsvpLink, "http://") || strings.HasPrefix(rsvpLink, "https://")) {
		rsvpLink = "https://" + strings.TrimLeft(rsvpLink, "/")
	}

	subject := fmt.Sprintf("You're invited — %s", eventTitle)

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"You are invited to %s!\n\n"+
			"Please let us know whether you can make it:\n%s\n\n"+
			"We hope to see you there.\n",
		guestName, eventTitle, rsvpLink,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Invitation</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:700px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.btn { display:inline-block; padding:12px 20px; background:#0b74ff; color:#fff;
       text-decoration:none; border-radius:6px; margin-top:18px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>%s</h2>
    <p>Dear %s,</p>
    <p>You are invited! Please let us know whether you can make it.</p>
    <a class="btn" href="%s" target="_blank">Respond to Invitation</a>
  </div>
</div>
</body>
</html>`,
		HTMLEscape(eventTitle), HTMLEscape(guestName), rsvpLink,
	)

	return sendMultipartMail(recipient, subject, plainBody, htmlBody)
}

// SendCampaignEmail sends one campaign mail to a single guest.
func SendCampaignEmail(recipient, guestName, eventTitle, subject, body string) error {
	guestName = safe(guestName)
	eventTitle = safe(eventTitle)
	subject = safe(subject)

	plainBody := fmt.Sprintf("Dear %s,\n\n%s\n\n— %s\n", guestName, body, eventTitle)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"></head>
<body style="background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222;">
<div style="max-width:700px; margin:20px auto; background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px;">
  <p>Dear %s,</p>
  <p>%s</p>
  <p>— %s</p>
</div>
</body>
</html>`,
		HTMLEscape(guestName), HTMLEscape(body), HTMLEscape(eventTitle),
	)

	return sendMultipartMail(recipient, subject, plainBody, htmlBody)
}

// SendPasswordResetEmail mails the organizer a reset link.
func SendPasswordResetEmail(recipient, resetLink string) error {
	resetLink = safe(resetLink)

	plainBody := fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Reset it here: %s\n\n"+
			"If you did not request this, ignore this email.\n",
		resetLink,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <p>A password reset was requested for your account.</p>
  <p><a href="%s" target="_blank">Reset your password</a></p>
  <p>If you did not request this, ignore this email.</p>
</body>
</html>`, resetLink)

	return sendMultipartMail(recipient, "Password Reset", plainBody, htmlBody)
}

// HTMLEscape is a minimal html escaper for the small strings we embed.
func HTMLEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}
