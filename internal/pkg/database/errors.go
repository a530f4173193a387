package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"regexp"

	"github.com/go-sql-driver/mysql"
)

// ErrNotConfigured 未提供连接串或未初始化连接
var ErrNotConfigured = errors.New("database is not configured")

// ConnectionError 数据库不可达或配置错误
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "database connection error: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// QueryError 语句被数据库拒绝，保留原始语句与参数用于排查
type QueryError struct {
	Table  string
	Query  string
	Params []any
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("database query failed for table '%s': %v", e.Table, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

var tableRegex = regexp.MustCompile(`(?i)\b(?:FROM|INTO|UPDATE)\s+["` + "`" + `]?(\w+)`)

// TableOf 从语句中提取首个表名，无法识别时返回 unknown
func TableOf(query string) string {
	m := tableRegex.FindStringSubmatch(query)
	if len(m) < 2 {
		return "unknown"
	}
	return m[1]
}

// classify 将底层错误归类为 ConnectionError 或 QueryError
func classify(err error, table, query string, params []any) error {
	if err == nil {
		return nil
	}
	var connErr *ConnectionError
	var queryErr *QueryError
	if errors.As(err, &connErr) || errors.As(err, &queryErr) {
		return err
	}
	if isConnectionFailure(err) {
		return &ConnectionError{Err: err}
	}
	if table == "" {
		table = TableOf(query)
	}
	return &QueryError{Table: table, Query: query, Params: params, Err: err}
}

func isConnectionFailure(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, ErrNotConfigured) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
