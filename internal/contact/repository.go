// Package contact stores messages submitted through the contact form and
// optionally forwards them by email.
package contact

import (
	"sync"

	"github.com/binaamart/storefront/internal/models"
)

// Repository defines storage for contact messages.
type Repository interface {
	Create(msg models.ContactMessage) (models.ContactMessage, error)
	GetAll() ([]models.ContactMessage, error)
}

// InMemoryRepository is an in-memory implementation of Repository.
type InMemoryRepository struct {
	mu       sync.Mutex
	messages []models.ContactMessage
	nextID   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// Create stores a new message and assigns its ID.
func (r *InMemoryRepository) Create(msg models.ContactMessage) (models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = r.nextID
	r.nextID++
	r.messages = append(r.messages, msg)
	return msg, nil
}

// GetAll retrieves every stored message, oldest first.
func (r *InMemoryRepository) GetAll() ([]models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ContactMessage(nil), r.messages...), nil
}

func (r *InMemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
	r.nextID = 1
}
