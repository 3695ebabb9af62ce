package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/models"
	"estateadmin/console/internal/session"
	"estateadmin/console/internal/storage"
)

type fakeAPI struct {
	mu sync.Mutex

	builders    []models.Builder
	buildersErr error

	properties []models.Property
	listErr    error
	listCalls  int
	getErr     error

	schedules    []models.Schedule
	schedulesErr error

	createBuilderErr  error
	createPropertyErr error
	updateErr         error
	deleteErr         error

	createdBuilders []apiclient.CreateBuilderInput
	created         []apiclient.PropertyInput
	updated         map[string]apiclient.PropertyInput
	deleted         []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{updated: map[string]apiclient.PropertyInput{}}
}

func (f *fakeAPI) ListBuilders(context.Context) ([]models.Builder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.builders, f.buildersErr
}

func (f *fakeAPI) CreateBuilder(_ context.Context, input apiclient.CreateBuilderInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createBuilderErr != nil {
		return f.createBuilderErr
	}
	f.createdBuilders = append(f.createdBuilders, input)
	return nil
}

func (f *fakeAPI) ListProperties(context.Context) ([]models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Property(nil), f.properties...), nil
}

func (f *fakeAPI) GetProperty(_ context.Context, id string) (models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return models.Property{}, f.getErr
	}
	for _, p := range f.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Property{}, apiclient.ErrNotFound
}

func (f *fakeAPI) CreateProperty(_ context.Context, input apiclient.PropertyInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createPropertyErr != nil {
		return f.createPropertyErr
	}
	f.created = append(f.created, input)
	return nil
}

func (f *fakeAPI) UpdateProperty(_ context.Context, id string, input apiclient.PropertyInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated[id] = input
	return nil
}

func (f *fakeAPI) DeleteProperty(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) ListSchedules(context.Context) ([]models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.schedules, f.schedulesErr
}

type fakeAuthenticator struct {
	result apiclient.LoginResult
	err    error
}

func (f fakeAuthenticator) Login(context.Context, string, string) (apiclient.LoginResult, error) {
	return f.result, f.err
}

type memoryStore struct {
	mu     sync.Mutex
	admins map[string]models.Admin
}

func newMemoryStore() *memoryStore {
	return &memoryStore{admins: map[string]models.Admin{}}
}

func (m *memoryStore) Load(_ context.Context, id string) (models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return models.Admin{}, session.ErrNotFound
	}
	return a, nil
}

func (m *memoryStore) Save(_ context.Context, id string, admin models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins[id] = admin
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.admins, id)
	return nil
}

type memoryActivity struct {
	mu      sync.Mutex
	entries []models.Activity
}

func (m *memoryActivity) Record(_ context.Context, a models.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]models.Activity{a}, m.entries...)
	return nil
}

func (m *memoryActivity) Recent(_ context.Context, limit int) ([]models.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) < limit {
		limit = len(m.entries)
	}
	return append([]models.Activity(nil), m.entries[:limit]...), nil
}

func (m *memoryActivity) actions() []models.ActivityAction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ActivityAction, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeKV struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := value.([]byte); ok {
		f.values[key] = string(b)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeKV) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.values, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

type fakeStaging struct {
	mu      sync.Mutex
	objects map[string]storage.Object
}

func newFakeStaging() *fakeStaging {
	return &fakeStaging{objects: map[string]storage.Object{}}
}

func (f *fakeStaging) Put(_ context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = storage.Object{Key: key, ContentType: contentType, Data: data}
	return nil
}

func (f *fakeStaging) Get(_ context.Context, key string) (storage.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[key]
	if !ok {
		return storage.Object{}, storage.ErrObjectNotFound
	}
	return obj, nil
}

func (f *fakeStaging) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://staging.test/" + key, nil
}

func (f *fakeStaging) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStaging) ListOlderThan(context.Context, time.Time) ([]string, error) {
	return nil, nil
}

func (f *fakeStaging) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}
