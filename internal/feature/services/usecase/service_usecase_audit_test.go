package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	actionlogentity "cleanneat_backend/internal/feature/actionlog/domain/entity"
	actionlogusecase "cleanneat_backend/internal/feature/actionlog/usecase"
	"cleanneat_backend/internal/shared/outcome"
)

type failingActionLogs struct {
	calls int
}

func (f *failingActionLogs) Create(context.Context, *actionlogentity.ActionLog) error {
	f.calls++
	return errors.New("action_logs table is locked")
}

func (f *failingActionLogs) List(context.Context, string, int) ([]actionlogentity.ActionLogView, error) {
	return nil, nil
}

type countingAuditFailures struct{ n int }

func (c *countingAuditFailures) IncrementAuditWriteFailures() { c.n++ }

// TestServiceUsecase_Create_AuditWriteFailureIsIgnored は監査ログの保存に失敗しても
// 本来の操作が成功として返り、変更が保存されたままであることを検証します。
func TestServiceUsecase_Create_AuditWriteFailureIsIgnored(t *testing.T) {
	logs := &failingActionLogs{}
	failures := &countingAuditFailures{}
	repo := newMemoryServices()
	uc := NewServiceUsecase(repo, fakeDirectory{ownerID: "Owner"}, actionlogusecase.NewActionLogUsecase(logs, failures))

	res := uc.Create(context.Background(), ownerID, validCreate("oven-clean"))

	require.Equal(t, outcome.KindOK, res.Kind())
	assert.Equal(t, 1, logs.calls)
	assert.Equal(t, 1, failures.n)

	_, err := repo.FindBySlug(context.Background(), "oven-clean")
	assert.NoError(t, err)
}
