package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/ai-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoProjectStore_CreateRespectsLimit(t *testing.T) {
	ctx := context.Background()
	s := NewDemoProjectStore(2)

	for i := 0; i < 2; i++ {
		_, err := s.CreateProject(ctx, models.Project{
			ID:     fmt.Sprintf("p-%d", i),
			UserID: models.DemoUserID,
			Name:   fmt.Sprintf("project %d", i),
		})
		require.NoError(t, err)
	}

	_, err := s.CreateProject(ctx, models.Project{ID: "p-3", UserID: models.DemoUserID})
	assert.ErrorIs(t, err, ErrProjectLimitReached)

	count, err := s.CountProjects(ctx, models.DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDemoProjectStore_ListOrdersByUpdatedAtDesc(t *testing.T) {
	ctx := context.Background()
	s := NewDemoProjectStore(10)

	first, err := s.CreateProject(ctx, models.Project{ID: "p-1", UserID: models.DemoUserID, Name: "older"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = s.CreateProject(ctx, models.Project{ID: "p-2", UserID: models.DemoUserID, Name: "newer"})
	require.NoError(t, err)

	projects, err := s.ListProjects(ctx, models.DemoUserID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "newer", projects[0].Name)
	assert.Equal(t, "older", projects[1].Name)

	// touching the older project moves it to the front
	time.Sleep(2 * time.Millisecond)
	name := "older touched"
	_, err = s.UpdateProject(ctx, models.DemoUserID, first.ID, models.ProjectUpdate{Name: &name})
	require.NoError(t, err)

	projects, err = s.ListProjects(ctx, models.DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, "older touched", projects[0].Name)
}

func TestDemoProjectStore_CrossUserIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewDemoProjectStore(10)

	_, err := s.CreateProject(ctx, models.Project{ID: "p-1", UserID: "owner"})
	require.NoError(t, err)

	_, err = s.GetProject(ctx, "intruder", "p-1")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	err = s.DeleteProject(ctx, "intruder", "p-1")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	published := true
	_, err = s.UpdateProject(ctx, "intruder", "p-1", models.ProjectUpdate{Published: &published})
	assert.ErrorIs(t, err, ErrProjectNotFound)

	// owner still sees it untouched
	project, err := s.GetProject(ctx, "owner", "p-1")
	require.NoError(t, err)
	assert.False(t, project.Published)
}

func TestDemoProjectStore_UpdateAppliesOnlySetFields(t *testing.T) {
	ctx := context.Background()
	s := NewDemoProjectStore(10)

	created, err := s.CreateProject(ctx, models.Project{
		ID:          "p-1",
		UserID:      models.DemoUserID,
		Name:        "original",
		Description: "desc",
	})
	require.NoError(t, err)

	code := "export default App;"
	updated, err := s.UpdateProject(ctx, models.DemoUserID, created.ID, models.ProjectUpdate{Code: &code})
	require.NoError(t, err)

	assert.Equal(t, "original", updated.Name)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, code, updated.Code)
}

func TestDemoProjectStore_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := NewDemoProjectStore(2)

	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func(i int) {
			_, err := s.CreateProject(ctx, models.Project{
				ID:     fmt.Sprintf("p-%d", i),
				UserID: models.DemoUserID,
			})
			done <- err
		}(i)
	}

	var created, rejected int
	for i := 0; i < 10; i++ {
		err := <-done
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrProjectLimitReached):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 2, created)
	assert.Equal(t, 8, rejected)
}
