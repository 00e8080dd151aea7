package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"airportops-service/internal/domain/entity"
	"airportops-service/pkg/logger"
	"airportops-service/templates"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// BoardingPassMailer sends boarding-pass confirmations through the Gmail API.
type BoardingPassMailer struct {
	gmailService *gmail.Service
	from         string
	logger       logger.Logger
}

// NewBoardingPassMailer creates a new Gmail-backed mailer.
func NewBoardingPassMailer(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (*BoardingPassMailer, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &BoardingPassMailer{
		gmailService: service,
		from:         from,
		logger:       logger,
	}, nil
}

// SendBoardingPass emails the populated boarding pass to the passenger.
func (m *BoardingPassMailer) SendBoardingPass(ctx context.Context, to string, pass *entity.BoardingPassView) error {
	subject := fmt.Sprintf("Boarding pass for flight %s", pass.Flight)
	body := templates.RenderBoardingPassEmail(pass)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	message := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(msg.String())),
	}

	if _, err := m.gmailService.Users.Messages.Send("me", message).Context(ctx).Do(); err != nil {
		m.logger.Error("Failed to send boarding pass email",
			"to", to, "flight", pass.Flight, "error", err)
		return err
	}

	m.logger.Info("Boarding pass email sent", "to", to, "flight", pass.Flight)
	return nil
}
