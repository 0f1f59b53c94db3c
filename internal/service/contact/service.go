package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/demandcast/internal/domain/models"
)

// ErrEmptyField indicates a required form field was blank.
var ErrEmptyField = errors.New("contact field must not be blank")

const thankYou = "Thank you for your message!"

// Service acknowledges contact form submissions. Messages are logged and not
// stored anywhere.
type Service struct {
	logger *zap.Logger
	newID  func() string
}

// NewService wires a contact service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger, newID: uuid.NewString}
}

// Acknowledge validates msg and returns a receipt.
func (s *Service) Acknowledge(ctx context.Context, msg models.ContactMessage) (models.ContactAcknowledgement, error) {
	if err := ctx.Err(); err != nil {
		return models.ContactAcknowledgement{}, err
	}

	fields := []struct{ name, value string }{
		{name: "name", value: msg.Name},
		{name: "email", value: msg.Email},
		{name: "message", value: msg.Message},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return models.ContactAcknowledgement{}, fmt.Errorf("%w: %s", ErrEmptyField, f.name)
		}
	}

	ack := models.ContactAcknowledgement{ID: s.newID(), Message: thankYou}
	s.logger.Info("contact message received",
		zap.String("id", ack.ID),
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.Int("message_length", len(msg.Message)))

	return ack, nil
}
