package mailer

import (
	"fmt"
	"os"
	"portpass/src/lib"
	"portpass/src/models"
	"strings"
)

// SendPassReceipt mails the payer a summary of an issued transaction. Callers
// run it in a goroutine; a failed send never fails the issuance.
func SendPassReceipt(txn *models.Transaction, passes []models.Pass) error {
	if txn.PayerEmail == nil || *txn.PayerEmail == "" {
		return nil
	}
	var rows strings.Builder
	for _, p := range passes {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%s</td><td>%s</td><td>MVR %s</td></tr>",
			p.PassNumber, p.CustomerName, p.PassType, p.Amount,
		))
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your port pass payment has been received and the following passes were issued:</p>
		<table>%s</table>
		<p>Total: MVR %s</p>
	`, txn.PayerName, rows.String(), txn.TotalAmount)

	return lib.SendMail(&lib.SendMailInput{
		From:     os.Getenv("SMTP_FROM"),
		FromName: "noreply",
		To:       []string{*txn.PayerEmail},
		Subject:  fmt.Sprintf("Port pass receipt %s", txn.ID.String()),
		Body:     body,
		Html:     true,
	})
}
