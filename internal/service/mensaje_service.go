package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bimcat/catalog-api/internal/dto"
	"github.com/bimcat/catalog-api/internal/models"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
)

type mensajeStore interface {
	List(ctx context.Context) []models.Mensaje
	Append(ctx context.Context, m models.Mensaje) error
	MarkRead(ctx context.Context, index int) error
}

// MensajeService handles the public contact form and the dashboard inbox.
type MensajeService struct {
	store     mensajeStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewMensajeService wires the contact message service.
func NewMensajeService(store mensajeStore, validate *validator.Validate, logger *zap.Logger) *MensajeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MensajeService{store: store, validator: validate, logger: logger, now: time.Now}
}

// List returns every message in submission order.
func (s *MensajeService) List(ctx context.Context) []models.Mensaje {
	return s.store.List(ctx)
}

// Create stamps the submission time and unread flag server-side and appends
// the message. Client-supplied fecha or leido values are ignored.
func (s *MensajeService) Create(ctx context.Context, req dto.CreateMensajeRequest) (models.Mensaje, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Mensaje{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Faltan campos requeridos")
	}
	m := models.Mensaje{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Telefono: req.Telefono,
		Asunto:   req.Asunto,
		Mensaje:  req.Mensaje,
		Fecha:    s.now().UTC(),
		Leido:    false,
	}
	if err := s.store.Append(ctx, m); err != nil {
		return models.Mensaje{}, err
	}
	return m, nil
}

// MarkRead flips the leido flag on the message at the given index.
func (s *MensajeService) MarkRead(ctx context.Context, req dto.MarkMensajeReadRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Índice inválido")
	}
	return s.store.MarkRead(ctx, *req.Index)
}
