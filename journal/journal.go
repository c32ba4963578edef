// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package journal keeps a permanent record of evaluated lines in an
// SQLite database. Each run of mcal is a session; within a session,
// entries are numbered the same way the history registers are.
package journal // import "robpike.io/mcal/journal"

import (
	"errors"
	"fmt"
	"os"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = "CREATE TABLE IF NOT EXISTS entry (" +
	"`id` INTEGER PRIMARY KEY, " +
	"`session` TEXT NOT NULL, " +
	"`seq` INTEGER NOT NULL, " +
	"`input` TEXT NOT NULL, " +
	"`result` TEXT NOT NULL, " +
	"`created_at` INTEGER NOT NULL" +
	");"

// Entry is one recorded evaluation.
type Entry struct {
	ID        int64
	Session   string
	Seq       int
	Input     string
	Result    string
	CreatedAt time.Time
}

func (e Entry) String() string {
	return fmt.Sprintf("%s [%d] %s = %s", e.Session, e.Seq, e.Input, e.Result)
}

// Journal is an open journal database.
type Journal struct {
	conn    *sqlite.Conn
	insert  *sqlite.Stmt
	session string
}

// Open opens the journal at path, creating it if necessary,
// and starts a new session.
func Open(path string) (*Journal, error) {
	flags := sqlite.OpenReadWrite
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		flags |= sqlite.OpenCreate
	} else if err != nil {
		return nil, err
	}
	conn, err := sqlite.OpenConn(path, flags)
	if err != nil {
		return nil, err
	}
	if err := sqlitex.ExecuteTransient(conn, schema, nil); err != nil {
		conn.Close()
		return nil, err
	}
	insert, err := conn.Prepare("INSERT INTO entry (`session`, `seq`, `input`, `result`, `created_at`) " +
		"VALUES ($session, $seq, $input, $result, $created_at);")
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &Journal{
		conn:    conn,
		insert:  insert,
		session: time.Now().UTC().Format(time.RFC3339Nano),
	}, nil
}

// Session returns the name of the current session.
func (j *Journal) Session() string {
	return j.session
}

// Record adds an entry to the current session.
func (j *Journal) Record(seq int, input, result string) error {
	defer j.insert.Reset()
	j.insert.SetText("$session", j.session)
	j.insert.SetInt64("$seq", int64(seq))
	j.insert.SetText("$input", input)
	j.insert.SetText("$result", result)
	j.insert.SetInt64("$created_at", time.Now().Unix())
	_, err := j.insert.Step()
	return err
}

// Entries returns all entries in the journal, oldest first.
func (j *Journal) Entries() ([]Entry, error) {
	var entries []Entry
	err := sqlitex.ExecuteTransient(j.conn,
		"SELECT `id`, `session`, `seq`, `input`, `result`, `created_at` FROM entry ORDER BY `id`;",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				entries = append(entries, Entry{
					ID:        stmt.GetInt64("id"),
					Session:   stmt.GetText("session"),
					Seq:       int(stmt.GetInt64("seq")),
					Input:     stmt.GetText("input"),
					Result:    stmt.GetText("result"),
					CreatedAt: time.Unix(stmt.GetInt64("created_at"), 0),
				})
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.conn.Close()
}
