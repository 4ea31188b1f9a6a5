package memory

import (
	"strconv"

	"github.com/nexpay/nexpay-backend/internal/models"
)

type directory struct{ s *Store }

func (d *directory) Create(name, email, passwordHash string, role models.Role) (models.User, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	for i := range d.s.users {
		if d.s.users[i].Email == email {
			return models.User{}, models.ErrEmailTaken
		}
	}

	// Users are never deleted, so the next sequential id is always fresh.
	u := models.User{
		ID:           strconv.Itoa(len(d.s.users) + 1),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Balance:      role.StartingBalance(),
		CreatedAt:    d.s.now(),
	}
	d.s.users = append(d.s.users, u)
	return u, nil
}

func (d *directory) GetByID(id string) (models.User, bool) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	if u := d.s.findUser(id); u != nil {
		return *u, true
	}
	return models.User{}, false
}

// GetByEmail matches exactly and case-sensitively. A miss is a normal result.
func (d *directory) GetByEmail(email string) (models.User, bool) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	for i := range d.s.users {
		if d.s.users[i].Email == email {
			return d.s.users[i], true
		}
	}
	return models.User{}, false
}

func (d *directory) ListByRole(role models.Role) []models.User {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	out := []models.User{}
	for _, u := range d.s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

func (d *directory) List() []models.User {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	out := make([]models.User, len(d.s.users))
	copy(out, d.s.users)
	return out
}
