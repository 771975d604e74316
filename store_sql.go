package classifier

import (
	"database/sql"

	"github.com/pkg/errors"
)

const (
	documentsTable      = "documents"
	tokensTable         = "tokens"
	createDocumentsStmt = `CREATE TABLE IF NOT EXISTS ` + documentsTable + ` (
        id INTEGER PRIMARY KEY ASC,
        name TEXT NOT NULL,
        label INTEGER NOT NULL CHECK (label IN (0, 1)))`
	createTokensStmt = `CREATE TABLE IF NOT EXISTS ` + tokensTable + ` (
        id INTEGER PRIMARY KEY ASC,
        document_id INTEGER NOT NULL,
        token TEXT NOT NULL,
        count INTEGER NOT NULL DEFAULT 0,
        FOREIGN KEY(document_id) REFERENCES documents(id),
        UNIQUE(document_id, token))`
	insertDocumentQuery = `INSERT INTO ` + documentsTable + ` ("name", "label") VALUES (?, ?)`
	insertTokenQuery    = `INSERT INTO ` + tokensTable + ` ("document_id", "token", "count") VALUES (?, ?, ?)`
	countsQuery         = `SELECT "label", COUNT(*) FROM ` + documentsTable + ` GROUP BY "label"`
	documentsQuery      = `SELECT d."id", d."name", d."label", t."token", t."count" FROM ` + documentsTable + ` d ` +
		`LEFT JOIN ` + tokensTable + ` t ON t."document_id" = d."id" ORDER BY d."id", t."id"`
)

// CreateTables creates the corpus schema if it does not exist yet.
func CreateTables(db *sql.DB) error {
	if _, err := db.Exec(createDocumentsStmt); err != nil {
		return errors.Wrap(err, "classifier: create documents table")
	}
	if _, err := db.Exec(createTokensStmt); err != nil {
		return errors.Wrap(err, "classifier: create tokens table")
	}
	return nil
}

type sqlStore struct {
	db             *sql.DB
	countsQuery    *sql.Stmt
	documentsQuery *sql.Stmt
}

// NewSQLStore returns an SQL database backed Store. The tables must exist,
// see CreateTables.
func NewSQLStore(db *sql.DB) (Store, error) {
	s := &sqlStore{
		db: db,
	}
	var err error
	s.countsQuery, err = db.Prepare(countsQuery)
	if err != nil {
		return nil, errors.Wrap(err, "classifier: prepare counts query")
	}
	s.documentsQuery, err = db.Prepare(documentsQuery)
	if err != nil {
		return nil, errors.Wrap(err, "classifier: prepare documents query")
	}
	return s, nil
}

func (s *sqlStore) AddDocument(label Label, name string, tokens []string) error {
	if !label.Valid() {
		return errors.Wrapf(ErrInvalidLabel, "label %d", int(label))
	}

	// Token order is not kept, only multiplicity.
	counts := make(map[string]int64, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "classifier: begin")
	}
	res, err := tx.Exec(insertDocumentQuery, name, int(label))
	if err != nil {
		tx.Rollback()
		return errors.Wrapf(err, "classifier: insert document %q", name)
	}
	documentID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return err
	}
	for _, t := range order {
		if _, err := tx.Exec(insertTokenQuery, documentID, t, counts[t]); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "classifier: insert token %q", t)
		}
	}
	return errors.Wrap(tx.Commit(), "classifier: commit")
}

func (s *sqlStore) Documents() ([]LabeledDocument, error) {
	rows, err := s.documentsQuery.Query()
	if err != nil {
		return nil, errors.Wrap(err, "classifier: query documents")
	}
	defer rows.Close()

	docs := make([]LabeledDocument, 0)
	lastID := int64(-1)
	for rows.Next() {
		var id int64
		var name string
		var label int64
		var token sql.NullString
		var count sql.NullInt64
		if err := rows.Scan(&id, &name, &label, &token, &count); err != nil {
			return nil, err
		}
		if id != lastID {
			docs = append(docs, LabeledDocument{Name: name, Label: Label(label), Tokens: make(Document, 0)})
			lastID = id
		}
		if !token.Valid {
			continue
		}
		doc := &docs[len(docs)-1]
		for i := int64(0); i < count.Int64; i++ {
			doc.Tokens = append(doc.Tokens, token.String)
		}
	}
	return docs, rows.Err()
}

func (s *sqlStore) Counts() (map[Label]int64, error) {
	rows, err := s.countsQuery.Query()
	if err != nil {
		return nil, errors.Wrap(err, "classifier: query counts")
	}
	defer rows.Close()
	counts := make(map[Label]int64, 2)
	for rows.Next() {
		var label, n int64
		if err := rows.Scan(&label, &n); err != nil {
			return nil, err
		}
		counts[Label(label)] = n
	}
	return counts, rows.Err()
}
