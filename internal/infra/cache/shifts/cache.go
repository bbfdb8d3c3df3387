package shifts

import (
	"sync"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
)

// Cache in-memory хранилище коллекции смен
// Источник истины — внешний сервис смен; кэш живёт только между его опросами
// и заменяется целиком, частичных записей читатели не видят
type Cache struct {
	mu     sync.RWMutex
	shifts []domain.Shift
	loaded bool
}

// NewCache создает пустой кэш смен
func NewCache() *Cache {
	return &Cache{}
}

// ReplaceAll заменяет коллекцию целиком
func (c *Cache) ReplaceAll(shifts []domain.Shift) {
	copied := make([]domain.Shift, len(shifts))
	copy(copied, shifts)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.shifts = copied
	c.loaded = true
}

// List возвращает снимок коллекции в порядке, полученном от сервиса смен
func (c *Cache) List() []domain.Shift {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]domain.Shift, len(c.shifts))
	copy(snapshot, c.shifts)
	return snapshot
}

// GetByID возвращает смену по ID
func (c *Cache) GetByID(id string) (*domain.Shift, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, ErrNotLoaded
	}

	for i := range c.shifts {
		if c.shifts[i].ID == id {
			shift := c.shifts[i]
			return &shift, nil
		}
	}

	return nil, ErrShiftNotFound
}

// Loaded возвращает true, если коллекция загружалась хотя бы один раз
// Пустая успешно загруженная коллекция и незагруженная — разные состояния
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}
