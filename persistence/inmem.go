package persistence

import (
	"context"
	"sync"

	"github.com/flowport/flowport/model"
)

type inMemWorkflowStorage struct {
	mu        sync.RWMutex
	workflows map[string]model.StoredWorkflow
}

var _ WorkflowStorage = new(inMemWorkflowStorage)

func NewInMemWorkflowStorage() *inMemWorkflowStorage {
	return &inMemWorkflowStorage{
		workflows: make(map[string]model.StoredWorkflow),
	}
}

func (st *inMemWorkflowStorage) Save(ctx context.Context, wf *model.StoredWorkflow) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.workflows[wf.Id] = *wf
	return nil
}

func (st *inMemWorkflowStorage) Get(ctx context.Context, id string) (*model.StoredWorkflow, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	wf, ok := st.workflows[id]
	if !ok {
		return nil, WorkflowNotFoundError{Id: id}
	}
	return &wf, nil
}

func (st *inMemWorkflowStorage) List(ctx context.Context) ([]*model.StoredWorkflow, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]*model.StoredWorkflow, 0, len(st.workflows))
	for id := range st.workflows {
		wf := st.workflows[id]
		out = append(out, &wf)
	}
	return out, nil
}

func (st *inMemWorkflowStorage) Delete(ctx context.Context, id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.workflows[id]; !ok {
		return WorkflowNotFoundError{Id: id}
	}
	delete(st.workflows, id)
	return nil
}
