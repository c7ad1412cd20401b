package database

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	mssql "github.com/microsoft/go-mssqldb"
)

// Kind is the class of integrity constraint a statement violated.
type Kind int

const (
	KindUnique Kind = iota + 1
	KindCheck
	KindForeignKey
)

func (k Kind) String() string {
	switch k {
	case KindUnique:
		return "unique"
	case KindCheck:
		return "check"
	case KindForeignKey:
		return "foreign_key"
	default:
		return "unknown"
	}
}

// Violation is a driver-independent description of a constraint error.
// Constraint and Columns are filled in as far as the driver reports them.
type Violation struct {
	Kind       Kind
	Constraint string
	Columns    []string
	Err        error
}

func (v *Violation) Error() string { return v.Kind.String() + " violation: " + v.Err.Error() }

func (v *Violation) Unwrap() error { return v.Err }

// Names reports whether the violation was raised by the named constraint or
// on the named column.
func (v *Violation) Names(name string) bool {
	if strings.EqualFold(v.Constraint, name) {
		return true
	}
	for _, c := range v.Columns {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// Classify inspects err for an integrity-constraint failure reported by any
// of the supported drivers. It returns false for every other error.
func Classify(err error) (*Violation, bool) {
	if err == nil {
		return nil, false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgres(pgErr)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return classifySQLite(liteErr)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return classifyMySQL(myErr)
	}

	var msErr mssql.Error
	if errors.As(err, &msErr) {
		return classifySQLServer(msErr)
	}

	return nil, false
}

// Key (email)=(a@b.c) already exists.
var pgDetailColumns = regexp.MustCompile(`^Key \(([^)]*)\)`)

func classifyPostgres(e *pgconn.PgError) (*Violation, bool) {
	v := &Violation{Constraint: e.ConstraintName, Err: e}
	switch e.Code {
	case "23505":
		v.Kind = KindUnique
	case "23514":
		v.Kind = KindCheck
	case "23503":
		v.Kind = KindForeignKey
	default:
		return nil, false
	}
	if m := pgDetailColumns.FindStringSubmatch(e.Detail); m != nil {
		v.Columns = splitColumns(m[1])
	}
	return v, true
}

func classifySQLite(e sqlite3.Error) (*Violation, bool) {
	if e.Code != sqlite3.ErrConstraint {
		return nil, false
	}
	v := &Violation{Err: e}
	msg := e.Error()

	switch e.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		// UNIQUE constraint failed: suppliers.email
		v.Kind = KindUnique
		v.Columns = splitColumns(afterColon(msg))
	case sqlite3.ErrConstraintCheck:
		// CHECK constraint failed: leftover_non_negative
		v.Kind = KindCheck
		v.Constraint = afterColon(msg)
	case sqlite3.ErrConstraintForeignKey:
		v.Kind = KindForeignKey
	default:
		return nil, false
	}
	return v, true
}

var quotedName = regexp.MustCompile(`['"]([^'"]+)['"]`)

func classifyMySQL(e *mysql.MySQLError) (*Violation, bool) {
	v := &Violation{Err: e}
	switch e.Number {
	case 1062:
		// Duplicate entry 'x' for key 'suppliers.uq_suppliers_email'
		v.Kind = KindUnique
		if i := strings.LastIndex(e.Message, "for key "); i >= 0 {
			key := strings.Trim(e.Message[i+len("for key "):], "'\" ")
			if dot := strings.LastIndex(key, "."); dot >= 0 {
				key = key[dot+1:]
			}
			v.Constraint = key
		}
	case 3819:
		// Check constraint 'leftover_non_negative' is violated.
		v.Kind = KindCheck
		if m := quotedName.FindStringSubmatch(e.Message); m != nil {
			v.Constraint = m[1]
		}
	case 1451, 1452:
		v.Kind = KindForeignKey
	default:
		return nil, false
	}
	return v, true
}

func classifySQLServer(e mssql.Error) (*Violation, bool) {
	v := &Violation{Err: e}
	msg := e.Message
	switch e.Number {
	case 2627:
		// Violation of PRIMARY KEY constraint 'PK__products__...'.
		v.Kind = KindUnique
		if m := quotedName.FindStringSubmatch(msg); m != nil {
			v.Constraint = m[1]
		}
	case 2601:
		// Cannot insert duplicate key row in object 'dbo.suppliers' with unique index 'uq_suppliers_email'.
		v.Kind = KindUnique
		if i := strings.Index(msg, "unique index"); i >= 0 {
			if m := quotedName.FindStringSubmatch(msg[i:]); m != nil {
				v.Constraint = m[1]
			}
		}
	case 547:
		v.Kind = KindForeignKey
		if strings.Contains(msg, "CHECK constraint") {
			v.Kind = KindCheck
		}
		if i := strings.Index(msg, "constraint"); i >= 0 {
			if m := quotedName.FindStringSubmatch(msg[i:]); m != nil {
				v.Constraint = m[1]
			}
		}
	default:
		return nil, false
	}
	return v, true
}

func afterColon(msg string) string {
	if i := strings.Index(msg, ":"); i >= 0 {
		return strings.TrimSpace(msg[i+1:])
	}
	return ""
}

// splitColumns turns "t.a, t.b" or "a, b" into [a b].
func splitColumns(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if dot := strings.LastIndex(part, "."); dot >= 0 {
			part = part[dot+1:]
		}
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
