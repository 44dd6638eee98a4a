package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"newtab/internal/domain"
	"newtab/internal/logger"
	"newtab/internal/storage"
)

// TodoStore holds the todo widget items. Todos persist under their own
// record and are not part of the export/import snapshot.
type TodoStore struct {
	mu    sync.RWMutex
	todos []domain.Todo
	kv    storage.KV
	log   logger.Logger
	now   func() time.Time
}

// NewTodoStore creates an empty todo store.
func NewTodoStore(kv storage.KV, log logger.Logger) *TodoStore {
	return &TodoStore{
		todos: []domain.Todo{},
		kv:    kv,
		log:   log,
		now:   time.Now,
	}
}

// Load rehydrates the todo record; missing or corrupt records start empty.
func (t *TodoStore) Load(ctx context.Context) error {
	data, err := t.kv.Get(ctx, storage.KeyTodos)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	var todos []domain.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		t.log.Warn("persisted todos are corrupt, starting empty", logger.Error(err))
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.todos = todos
	return nil
}

func (t *TodoStore) persist(ctx context.Context) {
	data, err := json.Marshal(t.todos)
	if err != nil {
		t.log.Error("failed to marshal todos", logger.Error(err))
		return
	}
	if err := t.kv.Set(ctx, storage.KeyTodos, data, 0); err != nil {
		t.log.Warn("failed to persist todos", logger.Error(err))
	}
}

// All returns the todos, newest first.
func (t *TodoStore) All() []domain.Todo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]domain.Todo(nil), t.todos...)
}

// Add prepends a new open todo.
func (t *TodoStore) Add(ctx context.Context, text string) domain.Todo {
	todo := domain.Todo{
		ID:        domain.NewID(),
		Text:      text,
		Completed: false,
		CreatedAt: t.now().UnixMilli(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.todos = append([]domain.Todo{todo}, t.todos...)
	t.persist(ctx)
	return todo
}

// Toggle flips the completion flag. Unknown ids are a silent no-op.
func (t *TodoStore) Toggle(ctx context.Context, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.todos {
		if t.todos[i].ID == id {
			t.todos[i].Completed = !t.todos[i].Completed
			t.persist(ctx)
			return
		}
	}
}

// Delete removes a todo. Idempotent.
func (t *TodoStore) Delete(ctx context.Context, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.todos[:0]
	for _, todo := range t.todos {
		if todo.ID != id {
			kept = append(kept, todo)
		}
	}
	t.todos = kept
	t.persist(ctx)
}

// ClearCompleted removes every completed todo.
func (t *TodoStore) ClearCompleted(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.todos[:0]
	for _, todo := range t.todos {
		if !todo.Completed {
			kept = append(kept, todo)
		}
	}
	t.todos = kept
	t.persist(ctx)
}
