package ert

import (
	"fmt"
	"sync"

	"github.com/shenikar/safety_response_coordinator/internal/models"
)

// Roster - потокобезопасный список сотрудников ERT.
// Порядок вставки сохраняется: от него зависит стабильность ранжирования.
type Roster struct {
	mu      sync.RWMutex
	members []models.ERTStaffMember
	index   map[string]int
}

func NewRoster(members ...models.ERTStaffMember) *Roster {
	r := &Roster{index: make(map[string]int)}
	for _, m := range members {
		r.Upsert(m)
	}
	return r
}

// Upsert добавляет сотрудника или обновляет существующую запись на ее месте
func (r *Roster) Upsert(member models.ERTStaffMember) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[member.ID]; ok {
		r.members[i] = member.Clone()
		return
	}
	r.index[member.ID] = len(r.members)
	r.members = append(r.members, member.Clone())
}

func (r *Roster) Get(id string) (models.ERTStaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return models.ERTStaffMember{}, fmt.Errorf("staff %s: %w", id, models.ErrStaffNotFound)
	}
	return r.members[i].Clone(), nil
}

// List возвращает снимок состава
func (r *Roster) List() []models.ERTStaffMember {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ERTStaffMember, len(r.members))
	for i, m := range r.members {
		out[i] = m.Clone()
	}
	return out
}

// SetStatus отражает статус, подтвержденный системой диспетчеризации
func (r *Roster) SetStatus(id string, status models.StaffStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return fmt.Errorf("staff %s: %w", id, models.ErrStaffNotFound)
	}
	r.members[i].Status = status
	return nil
}
