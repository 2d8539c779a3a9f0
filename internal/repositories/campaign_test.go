package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/campaign-service/internal/models"
)

var campaignRowColumns = []string{
	"id", "name", "description", "start_date", "end_date", "budget",
	"status", "created_by", "created_at", "updated_at", "is_deleted",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func campaignRow(id, owner uuid.UUID, name, budget string, updatedAt time.Time) []driver.Value {
	return []driver.Value{
		id.String(), name, "A test campaign",
		time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
		budget, "Draft", owner.String(),
		time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC), updatedAt, false,
	}
}

func TestCampaignWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignWriteRepository(db, nil)

	owner := uuid.New()
	status := "Draft"
	c := &models.CampaignDB{
		Name:      "Test Campaign",
		StartDate: time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
		Budget:    decimal.NewFromInt(1000),
		Status:    &status,
		CreatedBy: owner,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaigns")).
		WithArgs(sqlmock.AnyArg(), "Test Campaign", nil, c.StartDate, c.EndDate, sqlmock.AnyArg(), "Draft", owner).
		WillReturnRows(sqlmock.NewRows(campaignRowColumns).
			AddRow(campaignRow(uuid.New(), owner, "Test Campaign", "1000.00", time.Now())...))

	err := repo.Save(context.Background(), c)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, owner, c.CreatedBy)
	assert.True(t, decimal.NewFromInt(1000).Equal(c.Budget))
	assert.False(t, c.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignWriteRepository_Save_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignWriteRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaigns")).WillReturnError(sql.ErrConnDone)

	err := repo.Save(context.Background(), &models.CampaignDB{Name: "x"})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignReadRepository(db, nil)

	owner := uuid.New()
	rows := sqlmock.NewRows(campaignRowColumns).
		AddRow(campaignRow(uuid.New(), owner, "First", "10.00", time.Now())...).
		AddRow(campaignRow(uuid.New(), owner, "Second", "20.50", time.Now())...)

	mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns ORDER BY created_at, id OFFSET $1 LIMIT $2")).
		WithArgs(20, 20).
		WillReturnRows(rows)

	campaigns, err := repo.List(context.Background(), 20, 20)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "First", campaigns[0].Name)
	assert.Equal(t, "Second", campaigns[1].Name)
	assert.True(t, decimal.RequireFromString("20.5").Equal(campaigns[1].Budget))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignReadRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignReadRepository(db, nil)

	mock.ExpectQuery("FROM campaigns").WithArgs(0, 20).WillReturnRows(sqlmock.NewRows(campaignRowColumns))

	campaigns, err := repo.List(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.NotNil(t, campaigns)
	assert.Empty(t, campaigns)
}

func TestCampaignReadRepository_GetByID(t *testing.T) {
	id := uuid.New()
	owner := uuid.New()

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		wantNil  bool
		wantErr  error
		wantName string
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns WHERE id = $1")).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(campaignRowColumns).
						AddRow(campaignRow(id, owner, "Test Campaign", "1000.00", time.Now())...))
			},
			wantName: "Test Campaign",
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM campaigns").WithArgs(id).WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM campaigns").WithArgs(id).WillReturnError(sql.ErrConnDone)
			},
			wantNil: true,
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			c, err := NewCampaignReadRepository(db, nil).GetByID(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, c)
			} else {
				require.NotNil(t, c)
				assert.Equal(t, id, c.ID)
				assert.Equal(t, tt.wantName, c.Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCampaignWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignWriteRepository(db, nil)

	id := uuid.New()
	changes := map[string]any{
		"name":   "Updated Campaign",
		"budget": decimal.NewFromInt(1200),
	}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE campaigns SET budget = $1, name = $2, updated_at = NOW() WHERE id = $3 RETURNING")).
		WithArgs(sqlmock.AnyArg(), "Updated Campaign", id).
		WillReturnRows(sqlmock.NewRows(campaignRowColumns).
			AddRow(campaignRow(id, uuid.New(), "Updated Campaign", "1200.00", time.Now())...))

	c, err := repo.Update(context.Background(), id, changes)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Updated Campaign", c.Name)
	assert.True(t, decimal.NewFromInt(1200).Equal(c.Budget))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignWriteRepository_Update_ClearsNullableColumn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignWriteRepository(db, nil)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SET description = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(nil, id).
		WillReturnRows(sqlmock.NewRows(campaignRowColumns).
			AddRow(campaignRow(id, uuid.New(), "Test Campaign", "1.00", time.Now())...))

	_, err := repo.Update(context.Background(), id, map[string]any{"description": nil})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignWriteRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignWriteRepository(db, nil)

	id := uuid.New()
	mock.ExpectQuery("UPDATE campaigns").WillReturnError(sql.ErrNoRows)

	c, err := repo.Update(context.Background(), id, map[string]any{"name": "Whatever"})
	assert.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignWriteRepository_Update_NoChanges(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignWriteRepository(db, nil)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(campaignRowColumns).
			AddRow(campaignRow(id, uuid.New(), "Unchanged", "1.00", time.Now())...))

	c, err := repo.Update(context.Background(), id, map[string]any{})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Unchanged", c.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignWriteRepository_Update_UnknownColumn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignWriteRepository(db, nil)

	c, err := repo.Update(context.Background(), uuid.New(), map[string]any{"created_by": uuid.New()})
	assert.ErrorIs(t, err, ErrUnknownColumn)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignWriteRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name        string
		result      driver.Result
		err         error
		wantDeleted bool
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1), wantDeleted: true},
		{name: "missing", result: sqlmock.NewResult(0, 0), wantDeleted: false},
		{name: "db error", err: sql.ErrConnDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM campaigns WHERE id = $1")).WithArgs(id)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(tt.result)
			}

			deleted, err := NewCampaignWriteRepository(db, nil).Delete(context.Background(), id)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantDeleted, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCampaignWriteRepository_UsesRequestTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM campaigns").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewCampaignWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	deleted, err := repo.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, deleted)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
