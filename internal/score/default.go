package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type DefaultScorer struct {
	Path string
	Log  *zap.Logger

	db *sql.DB
}

func (s *DefaultScorer) Init() error {
	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return fmt.Errorf("unable to open score database %s: %w", s.Path, err)
	}

	initStatement := `
	create table if not exists sessions
	  (
		  id integer not null primary key,
		  sum text not null,
		  difficulty text not null,
		  played_at integer not null,
		  notes integer not null,
		  mines integer not null,
		  obstacles integer not null
	  );
	create index if not exists sessions_sum on sessions(sum);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create score tables: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		if err := s.db.Close(); nil != err && nil != s.Log {
			s.Log.Warn("unable to close score database", zap.Error(err))
		}
		s.db = nil
	}
}

func (s *DefaultScorer) Save(sum string, difficulty string, session Session) error {
	_, err := s.db.Exec(
		"insert into sessions(sum, difficulty, played_at, notes, mines, obstacles) values(?, ?, ?, ?, ?, ?)",
		sum, difficulty, time.Now().UnixNano(), session.Notes, session.Mines, session.Obstacles,
	)
	if nil != err {
		return fmt.Errorf("unable to save session: %w", err)
	}
	return nil
}

func (s *DefaultScorer) Load(sum string) ([]History, error) {
	rows, err := s.db.Query(
		"select sum, difficulty, played_at, notes, mines, obstacles from sessions where sum = ? order by played_at desc, id desc",
		sum,
	)
	if nil != err {
		return nil, fmt.Errorf("unable to load sessions: %w", err)
	}
	defer rows.Close()

	histories := []History{}
	for rows.Next() {
		var h History
		var playedAt int64
		if err := rows.Scan(&h.Sum, &h.Difficulty, &playedAt, &h.Notes, &h.Mines, &h.Obstacles); nil != err {
			return nil, fmt.Errorf("unable to read session: %w", err)
		}
		h.PlayedAt = time.Unix(0, playedAt)
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

// HashFile identifies a chart by the contents of its file.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if nil != err {
		return "", err
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}
