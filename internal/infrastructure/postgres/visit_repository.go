package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardiao/guardiao-api/internal/domain/entity"
	"github.com/guardiao/guardiao-api/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

const visitColumns = `id, visitor_name, visitor_document, destination, purpose,
	entry_time, exit_time, status, approved_by, notes, created_by`

// VisitRepo implementação do porto VisitRepository sobre PostgreSQL.
type VisitRepo struct {
	pool *pgxpool.Pool
}

// NewVisitRepository constrói o adaptador de persistência para visitas.
func NewVisitRepository(pool *pgxpool.Pool) *VisitRepo {
	return &VisitRepo{pool: pool}
}

// Create persiste uma nova visita.
func (r *VisitRepo) Create(ctx context.Context, visit *entity.Visit) error {
	query := `
		INSERT INTO visits (` + visitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		visit.ID, visit.VisitorName, visit.VisitorDocument, visit.Destination,
		visit.Purpose, visit.EntryTime, visit.ExitTime, string(visit.Status),
		visit.ApprovedBy, visit.Notes, visit.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// FindByID obtém uma visita por ID. (nil, nil) se não existir.
func (r *VisitRepo) FindByID(ctx context.Context, id string) (*entity.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = $1`
	v, err := scanVisit(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visit by id: %w", err)
	}
	return v, nil
}

// List devolve as visitas mais recentes primeiro (entry_time desc), até limit.
func (r *VisitRepo) List(ctx context.Context, limit int) ([]*entity.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits ORDER BY entry_time DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()
	return collectVisits(rows)
}

// UpdateFields aplica uma atualização parcial: somente os campos não-nil
// entram no SET. Equivale a um $set de documento, não a um overwrite.
func (r *VisitRepo) UpdateFields(ctx context.Context, id string, upd repository.VisitStatusUpdate) error {
	sets := make([]string, 0, 4)
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Status != nil {
		add("status", string(*upd.Status))
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}
	if upd.ApprovedBy != nil {
		add("approved_by", *upd.ApprovedBy)
	}
	if upd.ExitTime != nil {
		add("exit_time", *upd.ExitTime)
	}
	if len(sets) == 0 {
		return nil
	}

	query := `UPDATE visits SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update visit: %w", err)
	}
	return nil
}

// Delete remove uma visita por ID.
func (r *VisitRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM visits WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	return nil
}

func scanVisit(row pgx.Row) (*entity.Visit, error) {
	var v entity.Visit
	var status string
	err := row.Scan(
		&v.ID, &v.VisitorName, &v.VisitorDocument, &v.Destination, &v.Purpose,
		&v.EntryTime, &v.ExitTime, &status, &v.ApprovedBy, &v.Notes, &v.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	v.Status = entity.Status(status)
	return &v, nil
}

func collectVisits(rows pgx.Rows) ([]*entity.Visit, error) {
	var list []*entity.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
