package redis

import (
	"context"

	rd "github.com/go-redis/redis/v9"

	"github.com/flowport/flowport/model"
	"github.com/flowport/flowport/persistence"
	"github.com/flowport/flowport/util"
)

var _ persistence.WorkflowStorage = new(redisWorkflowStorage)

const WORKFLOW_KEY string = "WF"

type redisWorkflowStorage struct {
	baseDao
	encoderDecoder util.EncoderDecoder[model.StoredWorkflow]
}

func NewRedisWorkflowStorage(conf Config) *redisWorkflowStorage {
	return &redisWorkflowStorage{
		baseDao:        *newBaseDao(conf),
		encoderDecoder: util.NewJsonEncoderDecoder[model.StoredWorkflow](),
	}
}

func (st *redisWorkflowStorage) Save(ctx context.Context, wf *model.StoredWorkflow) error {
	key := st.getNamespaceKey(WORKFLOW_KEY, wf.Id)
	data, err := st.encoderDecoder.Encode(*wf)
	if err != nil {
		return err
	}
	if err := st.redisClient.Set(ctx, key, data, 0).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (st *redisWorkflowStorage) Get(ctx context.Context, id string) (*model.StoredWorkflow, error) {
	key := st.getNamespaceKey(WORKFLOW_KEY, id)
	val, err := st.redisClient.Get(ctx, key).Result()
	if err == rd.Nil {
		return nil, persistence.WorkflowNotFoundError{Id: id}
	}
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return st.encoderDecoder.Decode([]byte(val))
}

func (st *redisWorkflowStorage) List(ctx context.Context) ([]*model.StoredWorkflow, error) {
	pattern := st.getNamespaceKey(WORKFLOW_KEY, "*")
	keys, err := st.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	out := make([]*model.StoredWorkflow, 0, len(keys))
	for _, key := range keys {
		val, err := st.redisClient.Get(ctx, key).Result()
		if err == rd.Nil {
			continue
		}
		if err != nil {
			return nil, persistence.StorageLayerError{Message: err.Error()}
		}
		wf, err := st.encoderDecoder.Decode([]byte(val))
		if err != nil {
			return nil, err
		}
		out = append(out, wf)
	}
	return out, nil
}

func (st *redisWorkflowStorage) Delete(ctx context.Context, id string) error {
	key := st.getNamespaceKey(WORKFLOW_KEY, id)
	count, err := st.redisClient.Del(ctx, key).Result()
	if err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	if count == 0 {
		return persistence.WorkflowNotFoundError{Id: id}
	}
	return nil
}
