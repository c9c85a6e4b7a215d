package store

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bimcat/catalog-api/internal/models"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
)

// ErrInvalidIndex is returned when a mark-read index is out of range.
var ErrInvalidIndex = appErrors.Clone(appErrors.ErrValidation, "Índice inválido")

// MensajeStore is the append-only contact message log. The only mutation is
// marking one message read by its array index.
type MensajeStore struct {
	file *File[[]models.Mensaje]
}

// NewMensajeStore opens the messages file inside the data directory.
func NewMensajeStore(dataDir, filename string, logger *zap.Logger) *MensajeStore {
	path := filepath.Join(dataDir, filename)
	empty := func() []models.Mensaje { return []models.Mensaje{} }
	return &MensajeStore{file: NewFile(path, empty, nil, logger)}
}

// SetObserver attaches store operation timing instrumentation.
func (s *MensajeStore) SetObserver(obs OpObserver) {
	s.file.SetObserver(obs)
}

// List returns all messages in submission order.
func (s *MensajeStore) List(ctx context.Context) []models.Mensaje {
	return s.file.Read()
}

// Append adds a message at the end of the log.
func (s *MensajeStore) Append(ctx context.Context, m models.Mensaje) error {
	_, err := s.file.Update(func(mensajes []models.Mensaje) ([]models.Mensaje, error) {
		return append(mensajes, m), nil
	})
	return err
}

// MarkRead sets leido on the message at the given index, leaving every other
// message untouched.
func (s *MensajeStore) MarkRead(ctx context.Context, index int) error {
	_, err := s.file.Update(func(mensajes []models.Mensaje) ([]models.Mensaje, error) {
		if index < 0 || index >= len(mensajes) {
			return mensajes, ErrInvalidIndex
		}
		mensajes[index].Leido = true
		return mensajes, nil
	})
	return err
}
