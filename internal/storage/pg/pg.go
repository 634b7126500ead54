package pg

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/forumapi/forumapi/internal/config"
	"github.com/forumapi/forumapi/internal/logger"
)

// IdGenerator produces the unique suffix appended to the entity id prefixes
// ("thread-", "comment-", "user-"). Injectable so tests can pin ids.
type IdGenerator func() string

type Storage struct {
	db    *sql.DB
	idGen IdGenerator
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db")
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db: db, idGen: uuid.NewString}, nil
}

// NewWithIdGenerator wraps an existing connection with a custom id source.
func NewWithIdGenerator(db *sql.DB, idGen IdGenerator) *Storage {
	return &Storage{db: db, idGen: idGen}
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Public.Pg.Host, cfg.Public.Pg.Port, cfg.Public.Pg.User, cfg.Public.Pg.Password, cfg.Public.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
