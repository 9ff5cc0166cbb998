package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/wendyapp/admin-console-api/infrastructure/database/postgres"
)

const adminSessionsTable = "admin_sessions"

// sessionKey identifica a linha única que guarda o token da plataforma. A
// sessão administrativa é global ao console, não por operador.
const sessionKey = "platform_token"

type SessionRepository interface {
	SaveToken(token string) error
	GetToken() (string, error)
	DeleteToken() error
}

type sessionRepository struct {
	conn *postgres.Connection
}

func NewSessionRepository(conn *postgres.Connection) SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

func (r *sessionRepository) SaveToken(token string) error {
	queryBuilder := squirrel.
		Insert(adminSessionsTable).
		Columns("key", "token", "activated_at").
		Values(sessionKey, token, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET token = EXCLUDED.token, activated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(sessionSQL, sessionArgs...)
	return err
}

// GetToken devolve o token ativo, ou vazio quando não há sessão.
func (r *sessionRepository) GetToken() (string, error) {
	var token string
	err := r.conn.QueryRow("SELECT token FROM admin_sessions WHERE key = $1", sessionKey).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return token, nil
}

func (r *sessionRepository) DeleteToken() error {
	queryBuilder := squirrel.
		Delete(adminSessionsTable).
		Where(squirrel.Eq{"key": sessionKey}).
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(sessionSQL, sessionArgs...)
	return err
}
