package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/farmabol/farmacia-api/internal/domain/entity"
	"github.com/farmabol/farmacia-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, type, product_id, product_name, quantity, timestamp, user_id, user_name, reason, client_info`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// La tabla solo recibe INSERT y SELECT: no existen Update ni Delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.Type, &m.ProductID, &m.ProductName, &m.Quantity,
		&m.Timestamp, &m.UserID, &m.UserName, &m.Reason, &m.ClientInfo,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste un movimiento de inventario.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, movement.ProductID, movement.ProductName,
		movement.Quantity, movement.Timestamp, movement.UserID, movement.UserName,
		movement.Reason, movement.ClientInfo,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// buildMovementFilter arma el WHERE dinámico para los listados de historial.
func buildMovementFilter(productID string, from, to *time.Time) (string, []any) {
	var conds []string
	var args []any
	if productID != "" {
		args = append(args, productID)
		conds = append(conds, "product_id = $"+strconv.Itoa(len(args)))
	}
	if from != nil {
		args = append(args, *from)
		conds = append(conds, "timestamp >= $"+strconv.Itoa(len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, "timestamp <= $"+strconv.Itoa(len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *MovementRepo) list(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	where, args := buildMovementFilter(productID, from, to)
	args = append(args, limit, offset)
	query := `SELECT ` + movementColumns + ` FROM movements` + where +
		` ORDER BY timestamp DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListByProduct lista movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.list(productID, from, to, limit, offset)
}

// List lista movimientos de todos los productos, más recientes primero.
func (r *MovementRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.list("", from, to, limit, offset)
}
