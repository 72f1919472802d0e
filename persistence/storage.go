package persistence

import (
	"context"
	"fmt"

	"github.com/flowport/flowport/model"
)

type StorageLayerError struct {
	Message string
}

func (e StorageLayerError) Error() string {
	return fmt.Sprintf("storage layer error %s", e.Message)
}

type WorkflowNotFoundError struct {
	Id string
}

func (e WorkflowNotFoundError) Error() string {
	return fmt.Sprintf("workflow %s not found", e.Id)
}

// WorkflowStorage persists canonical graphs between editing sessions.
type WorkflowStorage interface {
	Save(ctx context.Context, wf *model.StoredWorkflow) error
	Get(ctx context.Context, id string) (*model.StoredWorkflow, error)
	List(ctx context.Context) ([]*model.StoredWorkflow, error)
	Delete(ctx context.Context, id string) error
}
