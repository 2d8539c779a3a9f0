package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/campaign-service/internal/models"
)

const campaignColumns = `id, name, description, start_date, end_date, budget, status, created_by, created_at, updated_at, is_deleted`

// updatableCampaignColumns lists the columns a partial update may touch.
var updatableCampaignColumns = map[string]struct{}{
	"name":        {},
	"description": {},
	"start_date":  {},
	"end_date":    {},
	"budget":      {},
	"status":      {},
	"is_deleted":  {},
}

// ErrUnknownColumn is returned when an update names a column outside updatableCampaignColumns.
var ErrUnknownColumn = errors.New("unknown campaign column")

// CampaignReadRepository handles campaign read operations
type CampaignReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCampaignReadRepository(db *sqlx.DB, txGetter TxGetter) *CampaignReadRepository {
	return &CampaignReadRepository{db: db, txGetter: txGetter}
}

// List returns up to limit campaigns starting at offset. Neither the owner nor is_deleted is filtered on.
func (r *CampaignReadRepository) List(ctx context.Context, offset, limit int) ([]*models.CampaignDB, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM campaigns
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2
	`

	campaigns := []*models.CampaignDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &campaigns, query, offset, limit)

	logQuery(query, []any{offset, limit}, len(campaigns), err)

	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

// GetByID returns the campaign with the given id, or nil.
func (r *CampaignReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CampaignDB, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE id = $1
	`
	return getCampaign(ctx, executor(ctx, r.db, r.txGetter), query, id)
}

// CampaignWriteRepository handles campaign write operations
type CampaignWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCampaignWriteRepository(db *sqlx.DB, txGetter TxGetter) *CampaignWriteRepository {
	return &CampaignWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the campaign and refreshes it with the stored row.
func (r *CampaignWriteRepository) Save(ctx context.Context, c *models.CampaignDB) error {
	query := `
		INSERT INTO campaigns (id, name, description, start_date, end_date, budget, status, created_by, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, NOW(), NOW())
		RETURNING ` + campaignColumns

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	args := []any{c.ID, c.Name, c.Description, c.StartDate, c.EndDate, c.Budget, c.Status, c.CreatedBy}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), c, query, args...)

	logQuery(query, args, c.ID, err)

	return err
}

// Update applies changes (column name to value) to one campaign and bumps updated_at.
// It returns nil when no campaign has the id. With no changes the row is returned as is.
func (r *CampaignWriteRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.CampaignDB, error) {
	ext := executor(ctx, r.db, r.txGetter)

	if len(changes) == 0 {
		query := `
			SELECT ` + campaignColumns + `
			FROM campaigns
			WHERE id = $1
		`
		return getCampaign(ctx, ext, query, id)
	}

	columns := make([]string, 0, len(changes))
	for column := range changes {
		if _, ok := updatableCampaignColumns[column]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	sets := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, changes[column])
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE campaigns
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), len(args), campaignColumns)

	return getCampaign(ctx, ext, query, args...)
}

// Delete removes the campaign row and reports whether it existed.
func (r *CampaignWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM campaigns WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func getCampaign(ctx context.Context, ext sqlx.ExtContext, query string, args ...any) (*models.CampaignDB, error) {
	var c models.CampaignDB
	err := sqlx.GetContext(ctx, ext, &c, query, args...)

	logQuery(query, args, c.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
