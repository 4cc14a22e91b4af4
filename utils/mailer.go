package utils

import (
	"context"
	"fmt"

	"preorder/entity"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the part of the SES client the mailer uses.
type SESAPI interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Mailer sends notification emails through AWS SES.
type Mailer struct {
	client SESAPI
	sender string
}

func NewMailer(client SESAPI, sender string) *Mailer {
	return &Mailer{client: client, sender: sender}
}

// NewSESMailer loads AWS credentials from the default chain.
func NewSESMailer(ctx context.Context, region, sender string) (*Mailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("aws config load failed: %w", err)
	}
	return NewMailer(ses.NewFromConfig(cfg), sender), nil
}

func (m *Mailer) Name() string { return "email" }

// Deliver emails the notification message to its recipient.
func (m *Mailer) Deliver(ctx context.Context, n *entity.Notification) error {
	short := n.OrderID
	if len(short) > 8 {
		short = short[:8]
	}
	return m.send(ctx, n.StudentEmail, fmt.Sprintf("Order #%s update", short), n.Message)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(m.sender),
	}
	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
