package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends transactional email through Amazon SES. When no
// from-address is configured the service is constructed disabled and every
// send becomes a logged no-op, so email never gates an operation.
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService builds an EmailService. An empty fromEmail yields a
// disabled service; otherwise AWS credentials are resolved from the
// default chain for the given region.
func NewEmailService(awsRegion, fromEmail, fromName string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("email: disabled, SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	log.Printf("email: enabled, from=%s region=%s", fromEmail, awsRegion)
	return &EmailService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// IsEnabled reports whether sends will actually reach SES.
func (s *EmailService) IsEnabled() bool { return s.enabled }

// SendWaitlistWelcome sends the signup confirmation for a new waitlist
// entry. Callers treat failures as best effort.
func (s *EmailService) SendWaitlistWelcome(ctx context.Context, toEmail, firstName string) error {
	if !s.enabled {
		log.Printf("email: skipping waitlist welcome to %s (service disabled)", toEmail)
		return nil
	}

	name := firstName
	if name == "" {
		name = "there"
	}
	subject := "You're on the Famtivity waitlist"
	textBody := fmt.Sprintf(
		"Hi %s,\n\nThanks for joining the Famtivity waitlist! We'll reach out as soon as activity matching opens in your area.\n\n— The Famtivity team\n",
		name)
	htmlBody := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for joining the <b>Famtivity</b> waitlist! We'll reach out as soon as activity matching opens in your area.</p><p>— The Famtivity team</p>",
		name)

	from := s.fromEmail
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(textBody)},
					Html: &types.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send waitlist welcome: %w", err)
	}
	return nil
}
