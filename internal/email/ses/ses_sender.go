package ses

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"lekha/internal/currency"
	"lekha/internal/domain"
	"lekha/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendPaymentReminder(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error {
	subject := fmt.Sprintf("Payment reminder: invoice %s", inv.InvoiceNumber)
	balance := currency.FormatINR(inv.BalanceAmount, 2)
	dueDate := inv.DueDate.Format("02-Jan-2006")

	htmlBody := buildReminderHTML(toName, inv.InvoiceNumber, balance, dueDate)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder that invoice %s with an outstanding balance of %s was due on %s.\n\nPlease arrange payment at your earliest convenience.\n\n%s",
		toName, inv.InvoiceNumber, balance, dueDate, s.fromName)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// SendStatement attaches the rendered statement, which requires a raw
// MIME message; the simple SES content type cannot carry attachments.
func (s *sesSender) SendStatement(ctx context.Context, toEmail, toName string, attachment []byte, fileName string) error {
	subject := "Your statement of account"
	textBody := fmt.Sprintf("Hi %s,\n\nPlease find your statement of account attached.\n\n%s", toName, s.fromName)
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	raw := buildRawMessage(from, toEmail, subject, textBody, attachment, fileName)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildRawMessage(from, to, subject, textBody string, attachment []byte, fileName string) []byte {
	boundary := fmt.Sprintf("lekha-%d", time.Now().UnixNano())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=\"%s\"\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	buf.WriteString(textBody)
	buf.WriteString("\r\n\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: application/vnd.openxmlformats-officedocument.spreadsheetml.sheet\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=\"%s\"\r\n\r\n", fileName)

	encoded := base64.StdEncoding.EncodeToString(attachment)
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	return buf.Bytes()
}

func buildReminderHTML(name, invoiceNumber, balance, dueDate string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Payment reminder</h2>
  <p>Hi %s,</p>
  <p>This is a friendly reminder that the following invoice is overdue:</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 6px 12px; color: #666;">Invoice</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
    <tr><td style="padding: 6px 12px; color: #666;">Balance due</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
    <tr><td style="padding: 6px 12px; color: #666;">Due date</td><td style="padding: 6px 12px;">%s</td></tr>
  </table>
  <p>Please arrange payment at your earliest convenience. If you have already paid, kindly ignore this message.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">This is an automated reminder.</p>
</body>
</html>`, name, invoiceNumber, balance, dueDate)
}
