package repos

import (
	"github.com/jmoiron/sqlx"
)

// KVRepo is the durable backend for session documents. It satisfies the
// store.KV contract: failures are swallowed, a miss is just "absent". The
// whole value is written on every Set; last writer wins.
type KVRepo struct{ db *sqlx.DB }

func NewKVRepo(db *sqlx.DB) *KVRepo { return &KVRepo{db: db} }

func (r *KVRepo) Get(key string) (string, bool) {
	var value string
	if err := r.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key); err != nil {
		return "", false
	}
	return value, true
}

func (r *KVRepo) Set(key, value string) {
	_, _ = r.db.Exec(`
	  INSERT INTO kv(key,value,updated_at) VALUES(?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
}
