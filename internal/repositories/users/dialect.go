package users

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"

	"github.com/dmitrijs2005/userstore/internal/dbx"
)

// dialect pairs a goqu dialect with the capabilities the repository needs.
type dialect struct {
	goqu.DialectWrapper
	// returning is set when INSERT ... RETURNING yields the generated key;
	// otherwise the key comes from sql.Result.LastInsertId.
	returning bool
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case dbx.DriverSQLite:
		return dialect{DialectWrapper: goqu.Dialect("sqlite3")}, nil
	case dbx.DriverPostgres:
		return dialect{DialectWrapper: goqu.Dialect("postgres"), returning: true}, nil
	default:
		return dialect{}, fmt.Errorf("no SQL dialect for driver %q", driver)
	}
}
