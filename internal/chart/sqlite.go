package chart

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps a pack of charts in a single database file.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return nil, err
	}

	initStatement := `
	create table if not exists charts
	  (
		  name text not null primary key,
		  data blob not null
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create charts table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) List() ([]string, error) {
	rows, err := s.db.Query("select name from charts order by rowid")
	if nil != err {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); nil != err {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLiteStore) Read(name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("select data from charts where name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("chart %q: %w", name, fs.ErrNotExist)
	}
	return data, err
}

// Write inserts or replaces a chart in the pack
func (s *SQLiteStore) Write(name string, data []byte) error {
	_, err := s.db.Exec("insert or replace into charts(name, data) values(?, ?)", name, data)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
