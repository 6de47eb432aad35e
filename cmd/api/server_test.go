package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	activitydomain "taskflow-backend/internal/activity/domain"
	activityRepo "taskflow-backend/internal/activity/repository"
	categorydomain "taskflow-backend/internal/category/domain"
	categoryRepo "taskflow-backend/internal/category/repository"
	categoryUsecase "taskflow-backend/internal/category/usecase"
	taskdomain "taskflow-backend/internal/task/domain"
	taskRepo "taskflow-backend/internal/task/repository"
	taskUsecase "taskflow-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&taskdomain.Task{}, &categorydomain.Category{}, &activitydomain.Entry{}))

	activities := activityRepo.NewGormActivityRepository(db)
	taskUc := taskUsecase.NewTaskUsecase(taskRepo.NewGormTaskRepository(db), activities)
	categoryUc := categoryUsecase.NewCategoryUsecase(categoryRepo.NewGormCategoryRepository(db))
	require.NoError(t, categoryUc.SeedDefaults())

	return NewHandler(taskUc, categoryUc, activities).Engine()
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeTask(t *testing.T, w *httptest.ResponseRecorder) taskdomain.Task {
	t.Helper()
	var task taskdomain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	return task
}

func TestCreateReorderFetchFlow(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tasks", gin.H{
		"title": "Write report", "category": "work", "priority": "high",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	first := decodeTask(t, w)
	assert.Equal(t, taskdomain.TaskStatusPending, first.Status)
	assert.Equal(t, 0, first.Order)
	assert.Empty(t, first.Subtasks)

	w = doJSON(t, engine, http.MethodPost, "/api/tasks", gin.H{
		"title": "Read book", "category": "study", "priority": "low",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	second := decodeTask(t, w)
	assert.Equal(t, 1, second.Order)

	w = doJSON(t, engine, http.MethodPost, "/api/tasks/reorder", gin.H{
		"taskIds": []string{second.ID, first.ID},
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []taskdomain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "Read book", tasks[0].Title)
	assert.Equal(t, 0, tasks[0].Order)
	assert.Equal(t, "Write report", tasks[1].Title)
	assert.Equal(t, 1, tasks[1].Order)
}

func TestCreateTask_MissingTitleIsValidationError(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tasks", gin.H{"category": "work"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTask_RejectsUnknownEnumValue(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tasks", gin.H{
		"title": "bad", "priority": "urgent",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTask_NotFound(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/tasks/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTask_CompletionAndNotFound(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tasks", gin.H{"title": "finish me"})
	task := decodeTask(t, w)

	w = doJSON(t, engine, http.MethodPatch, "/api/tasks/"+task.ID, gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeTask(t, w)
	assert.Equal(t, taskdomain.TaskStatusCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)

	w = doJSON(t, engine, http.MethodPatch, "/api/tasks/missing", gin.H{"status": "completed"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTask(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tasks", gin.H{"title": "doomed"})
	task := decodeTask(t, w)

	w = doJSON(t, engine, http.MethodDelete, "/api/tasks/"+task.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/tasks/"+task.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReorder_RejectsNonList(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tasks/reorder", gin.H{"taskIds": "not-a-list"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubtaskFlow(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tasks", gin.H{"title": "parent"})
	task := decodeTask(t, w)

	w = doJSON(t, engine, http.MethodPost, "/api/tasks/"+task.ID+"/subtasks", gin.H{"title": "step one"})
	require.Equal(t, http.StatusOK, w.Code)
	withSub := decodeTask(t, w)
	require.Len(t, withSub.Subtasks, 1)

	subID := withSub.Subtasks[0].ID
	w = doJSON(t, engine, http.MethodPatch, "/api/tasks/"+task.ID+"/subtasks/"+subID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeTask(t, w).Subtasks[0].Completed)

	// Unmatched subtask ids are a no-op, not an error.
	w = doJSON(t, engine, http.MethodPatch, "/api/tasks/"+task.ID+"/subtasks/ghost", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeTask(t, w).Subtasks[0].Completed)

	w = doJSON(t, engine, http.MethodPost, "/api/tasks/missing/subtasks", gin.H{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskView_FilterSortAndStats(t *testing.T) {
	engine := newTestServer(t)

	for _, body := range []gin.H{
		{"title": "alpha", "priority": "low", "category": "work"},
		{"title": "beta", "priority": "high", "category": "personal"},
		{"title": "gamma", "priority": "medium", "category": "work"},
	} {
		w := doJSON(t, engine, http.MethodPost, "/api/tasks", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/tasks/view?category=work&sort=priority", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tasks []taskdomain.Task `json:"tasks"`
		Stats struct {
			Total      int `json:"total"`
			Pending    int `json:"pending"`
			Percentage int `json:"percentage"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, "gamma", resp.Tasks[0].Title)
	assert.Equal(t, "alpha", resp.Tasks[1].Title)
	// Stats cover the unfiltered set.
	assert.Equal(t, 3, resp.Stats.Total)
	assert.Equal(t, 3, resp.Stats.Pending)
	assert.Equal(t, 0, resp.Stats.Percentage)
}

func TestFuzzySearchEndpoint(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tasks", gin.H{"title": "Write quarterly report"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/tasks/search?q=reoprt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []taskdomain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)

	w = doJSON(t, engine, http.MethodGet, "/api/tasks/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategories_SeededAndCreatable(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []categorydomain.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Len(t, categories, 4)

	w = doJSON(t, engine, http.MethodPost, "/api/categories", gin.H{"name": "Errands", "color": "amber"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/categories", gin.H{"name": "Errands"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivityEndpoint(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tasks", gin.H{"title": "tracked"})
	task := decodeTask(t, w)
	w = doJSON(t, engine, http.MethodPatch, "/api/tasks/"+task.ID, gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, engine, http.MethodDelete, "/api/tasks/"+task.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/activity", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []activitydomain.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, activitydomain.ActionDeleted, entries[0].Action)
	assert.Equal(t, activitydomain.ActionCompleted, entries[1].Action)
	assert.Equal(t, activitydomain.ActionCreated, entries[2].Action)
	// Titles are value snapshots that survive deletion.
	assert.Equal(t, "tracked", entries[0].TaskTitle)
}

func TestHealth(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
