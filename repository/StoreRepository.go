package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"tradehub/models"
)

// StoreRepository is the local key/value store that replaces the device
// storage of the storefront. Values are JSON documents keyed by string.
type StoreRepository interface {
	Get(key string, dest any) (exists bool, err error)
	Set(key string, value any) (err error)
	Delete(key string) (err error)
}

type SqliteStore struct {
	db *sql.DB
}

func NewStoreRepository(conn *sql.DB) (StoreRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	_, err = conn.Exec("CREATE TABLE IF NOT EXISTS KeyValues (Key TEXT PRIMARY KEY, Value TEXT NOT NULL)")
	if err != nil {
		return nil, err
	}
	return &SqliteStore{
		db: conn,
	}, nil
}

func (s *SqliteStore) Get(key string, dest any) (exists bool, err error) {
	var raw string
	row := s.db.QueryRow("SELECT Value FROM KeyValues WHERE Key = ?", key)
	err = row.Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
			return
		}
		log.Printf("Get: %v", err)
		err = models.ErrServerError
		return
	}
	err = json.Unmarshal([]byte(raw), dest)
	if err != nil {
		log.Printf("Get: Unmarshal err: %v", err)
		err = models.ErrServerError
		return
	}
	exists = true
	return
}

func (s *SqliteStore) Set(key string, value any) (err error) {
	jsonData, err := json.Marshal(value)
	if err != nil {
		log.Printf("Set: Marshal err: %v", err)
		err = models.ErrServerError
		return
	}
	_, err = s.db.Exec("INSERT INTO KeyValues (Key, Value) VALUES (?, ?) ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value", key, string(jsonData))
	if err != nil {
		log.Printf("Set: %v", err)
		err = models.ErrServerError
	}
	return
}

func (s *SqliteStore) Delete(key string) (err error) {
	_, err = s.db.Exec("DELETE FROM KeyValues WHERE Key = ?", key)
	if err != nil {
		log.Printf("Delete: %v", err)
		err = models.ErrServerError
	}
	return
}
