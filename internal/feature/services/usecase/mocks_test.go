package usecase

import (
	"context"
	"sort"

	"cleanneat_backend/internal/feature/services/domain/entity"
	"cleanneat_backend/internal/shared/actor"
	"cleanneat_backend/internal/shared/audit"
)

// memoryServices is an in-memory ServiceRepository with slug uniqueness.
type memoryServices struct {
	byID      map[string]entity.Service
	SaveErr   error
	mutations int
}

func newMemoryServices(seed ...entity.Service) *memoryServices {
	m := &memoryServices{byID: map[string]entity.Service{}}
	for _, s := range seed {
		m.byID[s.ID] = s
	}
	return m
}

func (m *memoryServices) Create(_ context.Context, s *entity.Service) error {
	m.mutations++
	for _, existing := range m.byID {
		if existing.Slug == s.Slug {
			return ErrSlugTaken
		}
	}
	m.byID[s.ID] = *s
	return nil
}

func (m *memoryServices) FindByID(_ context.Context, id string) (*entity.Service, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	return &s, nil
}

func (m *memoryServices) FindBySlug(_ context.Context, slug string) (*entity.Service, error) {
	for _, s := range m.byID {
		if s.Slug == slug {
			return &s, nil
		}
	}
	return nil, ErrServiceNotFound
}

func (m *memoryServices) List(_ context.Context, userID string) ([]entity.Service, error) {
	var out []entity.Service
	for _, s := range m.byID {
		if userID == "" || s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (m *memoryServices) Save(_ context.Context, s *entity.Service) error {
	m.mutations++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.byID[s.ID] = *s
	return nil
}

func (m *memoryServices) Delete(_ context.Context, id string) error {
	m.mutations++
	if _, ok := m.byID[id]; !ok {
		return ErrServiceNotFound
	}
	delete(m.byID, id)
	return nil
}

// fakeDirectory knows a fixed set of users.
type fakeDirectory map[string]string

func (d fakeDirectory) DisplayName(_ context.Context, id string) (string, error) {
	name, ok := d[id]
	if !ok {
		return "", actor.ErrUnknown
	}
	return name, nil
}

type recordingAudit struct {
	entries []audit.Entry
}

func (r *recordingAudit) Record(_ context.Context, e audit.Entry) {
	r.entries = append(r.entries, e)
}
