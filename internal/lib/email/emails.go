package email

import (
	"context"
	"strconv"
	"time"

	"github.com/gracelogistics/backend/internal/model"
)

// SendQuoteNotification emails the operations inbox about a new quote
// request so it can be picked up without watching the admin panel.
func (c *Client) SendQuoteNotification(ctx context.Context, quote *model.Quote) error {
	totalCBM := "-"
	if quote.TotalCBM != nil {
		totalCBM = strconv.FormatFloat(*quote.TotalCBM, 'f', -1, 64)
	}

	data := map[string]string{
		"ReferenceNo": quote.ReferenceNo,
		"Name":        quote.FirstName + " " + quote.LastName,
		"Email":       quote.Email,
		"Phone":       quote.Phone,
		"Company":     quote.Company,
		"ServiceType": quote.ServiceType,
		"Origin":      quote.OriginCity + ", " + quote.OriginCountry,
		"Destination": quote.DestCity + ", " + quote.DestCountry,
		"TotalWeight": strconv.FormatFloat(quote.TotalWeight, 'f', -1, 64),
		"TotalCBM":    totalCBM,
		"SubmittedAt": quote.CreatedAt.UTC().Format(time.RFC1123),
	}

	return c.send(
		ctx,
		"New quote request "+quote.ReferenceNo,
		TemplateQuoteReceived,
		data,
	)
}

// SendContactNotification emails the operations inbox about a new contact
// or quick-quote submission.
func (c *Client) SendContactNotification(ctx context.Context, contact *model.Contact) error {
	data := map[string]string{
		"Name":        contact.Name,
		"Email":       contact.Email,
		"Phone":       contact.Phone,
		"Subject":     contact.Subject,
		"Message":     contact.Message,
		"FormType":    contact.FormType,
		"SubmittedAt": contact.CreatedAt.UTC().Format(time.RFC1123),
	}

	return c.send(
		ctx,
		"New contact submission from "+contact.Name,
		TemplateContactReceived,
		data,
	)
}
