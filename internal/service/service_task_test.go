package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/internal/mock"
	"github.com/ekovalyov/taskward/internal/store"
	"github.com/ekovalyov/taskward/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTaskSvc(t *testing.T, ctrl *gomock.Controller) (*taskService, *mock.MockTaskRepository) {
	t.Helper()
	mockRepo := mock.NewMockTaskRepository(ctrl)
	svc := NewTaskService(mockRepo, logger.Nop()).(*taskService)
	return svc, mockRepo
}

func TestTaskService_CreateTask_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			assert.NotEmpty(t, task.TaskID)
			assert.Equal(t, "user-1", task.UserID)
			assert.Equal(t, "buy milk", task.Title)
			return task, nil
		},
	)

	task, err := svc.CreateTask(ctx, "user-1", "buy milk", "2 liters")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Title)
}

func TestTaskService_CreateTask_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "user-1", "", "2 liters")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateTask(ctx, "user-1", "buy milk", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTaskService_GetTask_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Task{TaskID: "task-1", UserID: "user-1", Title: "buy milk"}
	mockRepo.EXPECT().GetTaskByID(ctx, "task-1").Return(stored, nil)

	task, err := svc.GetTask(ctx, "task-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Title)
}

func TestTaskService_GetTask_ForeignTaskReportedAsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Task{TaskID: "task-1", UserID: "someone-else", Title: "buy milk"}
	mockRepo.EXPECT().GetTaskByID(ctx, "task-1").Return(stored, nil)
	_, errForeign := svc.GetTask(ctx, "task-1", "user-1")

	mockRepo.EXPECT().GetTaskByID(ctx, "missing").Return(models.Task{}, store.ErrTaskNotFound)
	_, errMissing := svc.GetTask(ctx, "missing", "user-1")

	assert.ErrorIs(t, errForeign, store.ErrTaskNotFound)
	assert.ErrorIs(t, errMissing, store.ErrTaskNotFound)
}

func TestTaskService_ListTasks_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	stored := []models.Task{
		{TaskID: "task-1", UserID: "user-1"},
		{TaskID: "task-2", UserID: "user-1"},
	}
	mockRepo.EXPECT().GetUserTasks(ctx, "user-1").Return(stored, nil)

	tasks, err := svc.ListTasks(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTaskService_UpdateTask_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	title := "new title"
	update := models.TaskUpdate{TaskID: "task-1", UserID: "user-1", Title: &title}
	updated := models.Task{TaskID: "task-1", UserID: "user-1", Title: title}

	mockRepo.EXPECT().UpdateTask(ctx, update).Return(updated, nil)

	task, err := svc.UpdateTask(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, title, task.Title)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	update := models.TaskUpdate{TaskID: "missing", UserID: "user-1"}
	mockRepo.EXPECT().UpdateTask(ctx, update).Return(models.Task{}, store.ErrTaskNotFound)

	_, err := svc.UpdateTask(ctx, update)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskService_DeleteTask_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteTask(ctx, "task-1", "user-1").Return(nil)

	require.NoError(t, svc.DeleteTask(ctx, "task-1", "user-1"))
}

func TestTaskService_DeleteTask_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteTask(ctx, "missing", "user-1").Return(store.ErrTaskNotFound)

	err := svc.DeleteTask(ctx, "missing", "user-1")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskService_RepositoryErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("db down")
	mockRepo.EXPECT().GetUserTasks(ctx, "user-1").Return(nil, dbErr)

	_, err := svc.ListTasks(ctx, "user-1")
	assert.ErrorIs(t, err, dbErr)
}
