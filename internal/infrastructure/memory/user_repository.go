package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s    *Store
	inTx bool
}

// NewUserRepository construye el repositorio sobre el store.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.s.lockWrite(r.inTx)()
	if r.usernameTaken(user.Username, 0) {
		return domain.NewDuplicateError("username", user.Username)
	}
	r.s.nextUser++
	user.ID = r.s.nextUser
	r.s.users[user.ID] = copyUser(user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return copyUser(r.s.users[id]), nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

// List devuelve los usuarios ordenados por ID.
func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		list = append(list, copyUser(u))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	defer r.s.lockWrite(r.inTx)()
	if _, ok := r.s.users[user.ID]; !ok {
		return nil
	}
	if r.usernameTaken(user.Username, user.ID) {
		return domain.NewDuplicateError("username", user.Username)
	}
	r.s.users[user.ID] = copyUser(user)
	return nil
}

// Delete falla como la FK de la DB si el usuario aún tiene equipos asignados.
func (r *UserRepo) Delete(_ context.Context, id int64) error {
	defer r.s.lockWrite(r.inTx)()
	for _, e := range r.s.equipment {
		if e.UserID != nil && *e.UserID == id {
			return domain.NewValidationError("user_id", "el usuario tiene equipos asignados")
		}
	}
	delete(r.s.users, id)
	return nil
}

func (r *UserRepo) CountByRole(_ context.Context) (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]int)
	for _, u := range r.s.users {
		out[u.Role]++
	}
	return out, nil
}

// usernameTaken requiere el lock tomado.
func (r *UserRepo) usernameTaken(username string, exceptID int64) bool {
	for id, u := range r.s.users {
		if id != exceptID && u.Username == username {
			return true
		}
	}
	return false
}
