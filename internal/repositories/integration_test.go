package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/campaign-service/internal/models"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Postgres container test in short mode")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db), "migration must be repeatable")

	return db
}

func TestPostgres_CampaignLifecycle(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	userWrite := NewUserWriteRepository(db, nil)
	userRead := NewUserReadRepository(db, nil)
	campaignWrite := NewCampaignWriteRepository(db, nil)
	campaignRead := NewCampaignReadRepository(db, nil)

	owner := &models.UserDB{Email: "Campaign@Test.com", HashedPassword: "hash"}
	require.NoError(t, userWrite.Save(ctx, owner))

	found, err := userRead.GetByEmail(ctx, "campaign@test.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, owner.UserID, found.UserID)

	dup := &models.UserDB{Email: "CAMPAIGN@TEST.COM", HashedPassword: "hash"}
	assert.Error(t, userWrite.Save(ctx, dup), "emails are unique regardless of case")

	desc := "A test campaign"
	status := models.DefaultCampaignStatus
	c := &models.CampaignDB{
		Name:        "Test Campaign",
		Description: &desc,
		StartDate:   time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
		Budget:      decimal.NewFromInt(1000),
		Status:      &status,
		CreatedBy:   owner.UserID,
	}
	require.NoError(t, campaignWrite.Save(ctx, c))
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.False(t, c.IsDeleted)

	got, err := campaignRead.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Test Campaign", got.Name)
	assert.True(t, decimal.NewFromInt(1000).Equal(got.Budget))
	assert.True(t, c.StartDate.Equal(got.StartDate))

	time.Sleep(10 * time.Millisecond)
	updated, err := campaignWrite.Update(ctx, c.ID, map[string]any{
		"name":   "Updated Campaign",
		"budget": decimal.NewFromInt(1200),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Updated Campaign", updated.Name)
	assert.True(t, decimal.NewFromInt(1200).Equal(updated.Budget))
	assert.Equal(t, desc, *updated.Description)
	assert.True(t, c.StartDate.Equal(updated.StartDate))
	assert.True(t, c.EndDate.Equal(updated.EndDate))
	assert.True(t, updated.UpdatedAt.After(c.UpdatedAt))

	// is_deleted is stored but never filtered on.
	_, err = campaignWrite.Update(ctx, c.ID, map[string]any{"is_deleted": true})
	require.NoError(t, err)
	got, err = campaignRead.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsDeleted)

	deleted, err := campaignWrite.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = campaignRead.GetByID(ctx, c.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = campaignWrite.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPostgres_ListPages(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	owner := &models.UserDB{Email: "pager@test.com", HashedPassword: "hash"}
	require.NoError(t, NewUserWriteRepository(db, nil).Save(ctx, owner))

	write := NewCampaignWriteRepository(db, nil)
	for i := 0; i < 25; i++ {
		require.NoError(t, write.Save(ctx, &models.CampaignDB{
			Name:      fmt.Sprintf("Campaign %02d", i),
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Budget:    decimal.NewFromInt(int64(i + 1)),
			CreatedBy: owner.UserID,
		}))
	}

	read := NewCampaignReadRepository(db, nil)
	first, err := read.List(ctx, 0, 20)
	require.NoError(t, err)
	second, err := read.List(ctx, 20, 20)
	require.NoError(t, err)

	assert.Len(t, first, 20)
	assert.Len(t, second, 5)

	seen := make(map[uuid.UUID]struct{}, 25)
	for _, c := range append(first, second...) {
		_, dup := seen[c.ID]
		assert.False(t, dup, "pages must not overlap")
		seen[c.ID] = struct{}{}
	}
}
