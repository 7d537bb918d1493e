package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/loganlanou/clubhub/storage/db"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueries(t *testing.T) (*sql.DB, *db.Queries) {
	t.Helper()

	database, queries, cleanup, err := NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return database, queries
}

func TestCreateAndGetClub(t *testing.T) {
	_, queries := newTestQueries(t)
	ctx := context.Background()

	created, err := queries.CreateClub(ctx, db.CreateClubParams{
		ID:           ulid.Make().String(),
		Name:         "Chess Club",
		Category:     "games",
		ContactEmail: "chess@example.com",
		Description:  sql.NullString{String: "Weekly blitz", Valid: true},
	})
	require.NoError(t, err)
	assert.True(t, created.CreatedAt.Valid, "created_at should default")

	got, err := queries.GetClub(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, "Weekly blitz", got.Description.String)
	assert.False(t, got.OwnerID.Valid)
}

func TestCreateClub_DuplicateName(t *testing.T) {
	_, queries := newTestQueries(t)
	ctx := context.Background()

	params := db.CreateClubParams{
		ID:           ulid.Make().String(),
		Name:         "Robotics",
		Category:     "general",
		ContactEmail: "bots@example.com",
	}
	_, err := queries.CreateClub(ctx, params)
	require.NoError(t, err)

	params.ID = ulid.Make().String()
	_, err = queries.CreateClub(ctx, params)
	assert.Error(t, err, "club names are unique")
}

func TestListClubs_NewestFirst(t *testing.T) {
	_, queries := newTestQueries(t)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		club, err := queries.CreateClub(ctx, db.CreateClubParams{
			ID:           ulid.Make().String(),
			Name:         name,
			Category:     "general",
			ContactEmail: name + "@example.com",
		})
		require.NoError(t, err)
		ids = append(ids, club.ID)
	}

	clubs, err := queries.ListClubs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, clubs, 3)
	assert.Equal(t, ids[2], clubs[0].ID)
	assert.Equal(t, ids[0], clubs[2].ID)

	limited, err := queries.ListClubs(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	count, err := queries.CountClubs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDeleteClub(t *testing.T) {
	_, queries := newTestQueries(t)
	ctx := context.Background()

	club, err := queries.CreateClub(ctx, db.CreateClubParams{
		ID:           ulid.Make().String(),
		Name:         "Film",
		Category:     "arts",
		ContactEmail: "film@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, queries.DeleteClub(ctx, club.ID))

	_, err = queries.GetClub(ctx, club.ID)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestUpsertUserByClerkID(t *testing.T) {
	_, queries := newTestQueries(t)
	ctx := context.Background()

	clerkID := sql.NullString{String: "user_2abc", Valid: true}
	first, err := queries.UpsertUserByClerkID(ctx, db.UpsertUserByClerkIDParams{
		ID:       uuid.New().String(),
		ClerkID:  clerkID,
		Email:    "old@example.com",
		FullName: "Old Name",
	})
	require.NoError(t, err)

	second, err := queries.UpsertUserByClerkID(ctx, db.UpsertUserByClerkIDParams{
		ID:       uuid.New().String(),
		ClerkID:  clerkID,
		Email:    "new@example.com",
		FullName: "New Name",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "conflict on clerk_id keeps the original row")
	assert.Equal(t, "new@example.com", second.Email)
	assert.True(t, second.LastSyncedAt.Valid)

	byClerk, err := queries.GetUserByClerkID(ctx, clerkID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", byClerk.FullName)
}

func TestWithTransaction(t *testing.T) {
	database, queries := newTestQueries(t)
	ctx := context.Background()

	newClub := func(name string) db.CreateClubParams {
		return db.CreateClubParams{
			ID:           ulid.Make().String(),
			Name:         name,
			Category:     "general",
			ContactEmail: "club@example.com",
		}
	}

	err := WithTransaction(ctx, database, func(q *db.Queries) error {
		if _, err := q.CreateClub(ctx, newClub("Kept One")); err != nil {
			return err
		}
		_, err := q.CreateClub(ctx, newClub("Kept Two"))
		return err
	})
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = WithTransaction(ctx, database, func(q *db.Queries) error {
		if _, err := q.CreateClub(ctx, newClub("Discarded")); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	count, err := queries.CountClubs(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count, "committed rows stay and the failed transaction rolls back")
}

func TestListClubsByOwner(t *testing.T) {
	_, queries := newTestQueries(t)
	ctx := context.Background()

	owner, err := queries.CreateUser(ctx, db.CreateUserParams{ID: uuid.NewString(), Email: "owner@example.com", FullName: "Owner"})
	require.NoError(t, err)
	ownerID := sql.NullString{String: owner.ID, Valid: true}

	for _, name := range []string{"Alpha", "Beta"} {
		_, err := queries.CreateClub(ctx, db.CreateClubParams{
			ID:           ulid.Make().String(),
			Name:         name,
			Category:     "general",
			ContactEmail: "club@example.com",
			OwnerID:      ownerID,
		})
		require.NoError(t, err)
	}
	_, err = queries.CreateClub(ctx, db.CreateClubParams{
		ID:           ulid.Make().String(),
		Name:         "Unowned",
		Category:     "general",
		ContactEmail: "club@example.com",
	})
	require.NoError(t, err)

	owned, err := queries.ListClubsByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "Beta", owned[0].Name)
}
