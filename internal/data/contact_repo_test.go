package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisunitech/careers-api/internal/domain/model"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
	"github.com/sisunitech/careers-api/internal/testutil"
)

func TestContactRepo_Create_List_UpdateStatus_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewContactRepo(db)

		c, err := repo.Create(ctx, &model.CreateContactRequest{
			Name:    "Visitor",
			Email:   "Visitor@Example.com",
			Subject: "Question about openings",
			Message: "Do you hire remotely?",
		})
		require.NoError(t, err)
		require.NotEmpty(t, c.ID)
		assert.Equal(t, model.ContactStatusNew, c.Status)
		assert.Equal(t, "visitor@example.com", c.Email)
		assert.NotZero(t, c.SubmittedAt)

		lst, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, lst, 1)

		updated, err := repo.UpdateStatus(ctx, c.ID, model.ContactStatusReplied)
		require.NoError(t, err)
		assert.Equal(t, model.ContactStatusReplied, updated.Status)

		// contact statuses are a separate lifecycle; application values are invalid here
		_, err = repo.UpdateStatus(ctx, c.ID, model.ContactStatus("pending"))
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))

		deleted, err := repo.Delete(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, c.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestContactRepo_Create_ValidationErrors(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewContactRepo(db)
		ctx := context.Background()

		cases := []model.CreateContactRequest{
			{Email: "a@b.c", Subject: "s", Message: "m"}, // empty name
			{Name: "n", Email: "bad", Subject: "s", Message: "m"},
			{Name: "n", Email: "a@b.c", Message: "m"}, // missing subject
			{Name: "n", Email: "a@b.c", Subject: "s"}, // missing message
		}
		for i := range cases {
			_, err := repo.Create(ctx, &cases[i])
			require.Error(t, err, "case %d", i)
			assert.True(t, apperrors.IsValidation(err), "case %d", i)
		}
	})
}

func TestContactRepo_UpdateStatus_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewContactRepo(db)
		_, err := repo.UpdateStatus(context.Background(),
			"00000000-0000-0000-0000-000000000000", model.ContactStatusRead)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
