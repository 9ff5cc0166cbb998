package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/wendyapp/admin-console-api/infrastructure/database/postgres"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

const operatorsTable = "operators"

type OperatorRepository interface {
	CreateOperator(operator *domain.Operator) (*domain.Operator, error)
	GetOperatorByEmail(email string) (*domain.Operator, error)
	GetOperatorByID(operatorID int) (*domain.Operator, error)
	ListOperators() ([]*domain.Operator, error)
}

type operatorRepository struct {
	conn *postgres.Connection
}

func NewOperatorRepository(conn *postgres.Connection) OperatorRepository {
	return &operatorRepository{
		conn: conn,
	}
}

func (r *operatorRepository) CreateOperator(operator *domain.Operator) (*domain.Operator, error) {
	queryBuilder := squirrel.
		Insert(operatorsTable).
		Columns("name", "email", "password_hash", "active", "role_id").
		Values(operator.Name, operator.Email, operator.PasswordHash, operator.Active, operator.RoleID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	operatorSQL, operatorArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(operatorSQL, operatorArgs...).Scan(&operator.ID)
	if err != nil {
		return nil, err
	}

	return operator, nil
}

func (r *operatorRepository) GetOperatorByEmail(email string) (*domain.Operator, error) {
	var operator domain.Operator
	err := r.conn.QueryRow("SELECT id, name, email, password_hash, active, role_id, created_at, updated_at FROM operators WHERE email = $1", email).Scan(
		&operator.ID,
		&operator.Name,
		&operator.Email,
		&operator.PasswordHash,
		&operator.Active,
		&operator.RoleID,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &operator, nil
}

func (r *operatorRepository) GetOperatorByID(operatorID int) (*domain.Operator, error) {
	var operator domain.Operator
	err := r.conn.QueryRow("SELECT id, name, email, password_hash, active, role_id, created_at, updated_at FROM operators WHERE id = $1", operatorID).Scan(
		&operator.ID,
		&operator.Name,
		&operator.Email,
		&operator.PasswordHash,
		&operator.Active,
		&operator.RoleID,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &operator, nil
}

func (r *operatorRepository) ListOperators() ([]*domain.Operator, error) {
	queryBuilder := squirrel.
		Select("id", "name", "email", "active", "role_id", "created_at", "updated_at").
		From(operatorsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	operatorsSQL, operatorsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(operatorsSQL, operatorsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var operators []*domain.Operator
	for rows.Next() {
		var operator domain.Operator
		if err := rows.Scan(
			&operator.ID,
			&operator.Name,
			&operator.Email,
			&operator.Active,
			&operator.RoleID,
			&operator.CreatedAt,
			&operator.UpdatedAt,
		); err != nil {
			return nil, err
		}

		operators = append(operators, &operator)
	}

	return operators, rows.Err()
}
