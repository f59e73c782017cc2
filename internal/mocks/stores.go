package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shahid1330/careerPilot-AI/internal/domain"
	"github.com/shahid1330/careerPilot-AI/internal/store"
)

// MockUserStore implements store.UserStore for testing. With no function
// fields set it behaves as an in-memory store.
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty in-memory user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: map[uuid.UUID]*domain.User{}}
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
		if u.Username == user.Username {
			return store.ErrUsernameExists
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore { return m }

// MockCareerRoleStore implements store.CareerRoleStore for testing.
type MockCareerRoleStore struct {
	CreateFn           func(ctx context.Context, role *domain.CareerRole) error
	UpdateFn           func(ctx context.Context, role *domain.CareerRole) error
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.CareerRole, error)
	GetByUserAndNameFn func(ctx context.Context, userID uuid.UUID, roleName string) (*domain.CareerRole, error)
	ListByUserFn       func(ctx context.Context, userID uuid.UUID) ([]*domain.CareerRole, error)
	DeleteFn           func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	roles map[uuid.UUID]*domain.CareerRole
}

var _ store.CareerRoleStore = (*MockCareerRoleStore)(nil)

// NewMockCareerRoleStore creates an empty in-memory career role store.
func NewMockCareerRoleStore() *MockCareerRoleStore {
	return &MockCareerRoleStore{roles: map[uuid.UUID]*domain.CareerRole{}}
}

func (m *MockCareerRoleStore) Create(ctx context.Context, role *domain.CareerRole) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, role)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.roles {
		if r.UserID == role.UserID && r.NormalizedName() == role.NormalizedName() {
			return store.ErrDuplicate
		}
	}
	m.roles[role.ID] = role
	return nil
}

func (m *MockCareerRoleStore) Update(ctx context.Context, role *domain.CareerRole) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, role)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[role.ID]; !ok {
		return store.ErrCareerRoleNotFound
	}
	m.roles[role.ID] = role
	return nil
}

func (m *MockCareerRoleStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.CareerRole, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.roles[id]; ok {
		return r, nil
	}
	return nil, store.ErrCareerRoleNotFound
}

func (m *MockCareerRoleStore) GetByUserAndName(
	ctx context.Context,
	userID uuid.UUID,
	roleName string,
) (*domain.CareerRole, error) {
	if m.GetByUserAndNameFn != nil {
		return m.GetByUserAndNameFn(ctx, userID, roleName)
	}
	probe := domain.CareerRole{RoleName: roleName}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.roles {
		if r.UserID == userID && r.NormalizedName() == probe.NormalizedName() {
			return r, nil
		}
	}
	return nil, store.ErrCareerRoleNotFound
}

func (m *MockCareerRoleStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.CareerRole, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.CareerRole
	for _, r := range m.roles {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MockCareerRoleStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[id]; !ok {
		return store.ErrCareerRoleNotFound
	}
	delete(m.roles, id)
	return nil
}

func (m *MockCareerRoleStore) WithTx(tx *sql.Tx) store.CareerRoleStore { return m }

// Snapshot returns a deep copy of the store contents. Together with Restore
// it lets a test transaction runner undo writes the way a real rollback
// would; the copy is by value because callers mutate roles in place.
func (m *MockCareerRoleStore) Snapshot() map[uuid.UUID]domain.CareerRole {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := make(map[uuid.UUID]domain.CareerRole, len(m.roles))
	for id, r := range m.roles {
		snap[id] = *r
	}
	return snap
}

// Restore replaces the store contents with a previously taken Snapshot.
func (m *MockCareerRoleStore) Restore(snap map[uuid.UUID]domain.CareerRole) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles = make(map[uuid.UUID]*domain.CareerRole, len(snap))
	for id, r := range snap {
		r := r
		m.roles[id] = &r
	}
}

// MockRoadmapStore implements store.RoadmapStore for testing.
type MockRoadmapStore struct {
	CreateFn         func(ctx context.Context, roadmap *domain.Roadmap) error
	GetByRoleIDFn    func(ctx context.Context, careerRoleID uuid.UUID) (*domain.Roadmap, error)
	DeleteByRoleIDFn func(ctx context.Context, careerRoleID uuid.UUID) error

	mu       sync.Mutex
	roadmaps map[uuid.UUID]*domain.Roadmap // keyed by career role ID
}

var _ store.RoadmapStore = (*MockRoadmapStore)(nil)

// NewMockRoadmapStore creates an empty in-memory roadmap store.
func NewMockRoadmapStore() *MockRoadmapStore {
	return &MockRoadmapStore{roadmaps: map[uuid.UUID]*domain.Roadmap{}}
}

func (m *MockRoadmapStore) Create(ctx context.Context, roadmap *domain.Roadmap) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, roadmap)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roadmaps[roadmap.CareerRoleID] = roadmap
	return nil
}

func (m *MockRoadmapStore) GetByRoleID(
	ctx context.Context,
	careerRoleID uuid.UUID,
) (*domain.Roadmap, error) {
	if m.GetByRoleIDFn != nil {
		return m.GetByRoleIDFn(ctx, careerRoleID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if rm, ok := m.roadmaps[careerRoleID]; ok {
		return rm, nil
	}
	return nil, store.ErrRoadmapNotFound
}

func (m *MockRoadmapStore) DeleteByRoleID(ctx context.Context, careerRoleID uuid.UUID) error {
	if m.DeleteByRoleIDFn != nil {
		return m.DeleteByRoleIDFn(ctx, careerRoleID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.roadmaps, careerRoleID)
	return nil
}

func (m *MockRoadmapStore) WithTx(tx *sql.Tx) store.RoadmapStore { return m }

// Snapshot returns a deep copy of the store contents.
func (m *MockRoadmapStore) Snapshot() map[uuid.UUID]domain.Roadmap {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := make(map[uuid.UUID]domain.Roadmap, len(m.roadmaps))
	for id, rm := range m.roadmaps {
		snap[id] = *rm
	}
	return snap
}

// Restore replaces the store contents with a previously taken Snapshot.
func (m *MockRoadmapStore) Restore(snap map[uuid.UUID]domain.Roadmap) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roadmaps = make(map[uuid.UUID]*domain.Roadmap, len(snap))
	for id, rm := range snap {
		rm := rm
		m.roadmaps[id] = &rm
	}
}

// MockDailyPlanStore implements store.DailyPlanStore for testing.
type MockDailyPlanStore struct {
	CreateBatchFn    func(ctx context.Context, plans []*domain.DailyPlan) error
	ListByRoleIDFn   func(ctx context.Context, careerRoleID uuid.UUID) ([]*domain.DailyPlan, error)
	DeleteByRoleIDFn func(ctx context.Context, careerRoleID uuid.UUID) error

	mu    sync.Mutex
	plans map[uuid.UUID][]*domain.DailyPlan // keyed by career role ID
}

var _ store.DailyPlanStore = (*MockDailyPlanStore)(nil)

// NewMockDailyPlanStore creates an empty in-memory daily plan store.
func NewMockDailyPlanStore() *MockDailyPlanStore {
	return &MockDailyPlanStore{plans: map[uuid.UUID][]*domain.DailyPlan{}}
}

func (m *MockDailyPlanStore) CreateBatch(ctx context.Context, plans []*domain.DailyPlan) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, plans)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range plans {
		for _, existing := range m.plans[p.CareerRoleID] {
			if existing.DayNumber == p.DayNumber {
				return store.ErrDuplicateDayNumber
			}
		}
		m.plans[p.CareerRoleID] = append(m.plans[p.CareerRoleID], p)
	}
	return nil
}

func (m *MockDailyPlanStore) ListByRoleID(
	ctx context.Context,
	careerRoleID uuid.UUID,
) ([]*domain.DailyPlan, error) {
	if m.ListByRoleIDFn != nil {
		return m.ListByRoleIDFn(ctx, careerRoleID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]*domain.DailyPlan(nil), m.plans[careerRoleID]...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].DayNumber < out[j].DayNumber
	})
	return out, nil
}

func (m *MockDailyPlanStore) DeleteByRoleID(ctx context.Context, careerRoleID uuid.UUID) error {
	if m.DeleteByRoleIDFn != nil {
		return m.DeleteByRoleIDFn(ctx, careerRoleID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.plans, careerRoleID)
	return nil
}

func (m *MockDailyPlanStore) WithTx(tx *sql.Tx) store.DailyPlanStore { return m }

// Snapshot returns a deep copy of the store contents.
func (m *MockDailyPlanStore) Snapshot() map[uuid.UUID][]domain.DailyPlan {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := make(map[uuid.UUID][]domain.DailyPlan, len(m.plans))
	for id, plans := range m.plans {
		copied := make([]domain.DailyPlan, len(plans))
		for i, p := range plans {
			copied[i] = *p
		}
		snap[id] = copied
	}
	return snap
}

// Restore replaces the store contents with a previously taken Snapshot.
func (m *MockDailyPlanStore) Restore(snap map[uuid.UUID][]domain.DailyPlan) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans = make(map[uuid.UUID][]*domain.DailyPlan, len(snap))
	for id, plans := range snap {
		copied := make([]*domain.DailyPlan, len(plans))
		for i := range plans {
			p := plans[i]
			copied[i] = &p
		}
		m.plans[id] = copied
	}
}
