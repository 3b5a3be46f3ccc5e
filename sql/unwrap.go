package sql

import "database/sql/driver"

// RealConn returns the driver connection underneath every decoration layer
// that exposes an Unwrap() driver.Conn method. Undecorated and nil values are
// returned unchanged.
func RealConn(conn driver.Conn) driver.Conn {
	for conn != nil {
		u, ok := conn.(interface{ Unwrap() driver.Conn })
		if !ok {
			break
		}
		conn = u.Unwrap()
	}
	return conn
}

// RealRows is RealConn for result readers.
func RealRows(rows driver.Rows) driver.Rows {
	for rows != nil {
		u, ok := rows.(interface{ Unwrap() driver.Rows })
		if !ok {
			break
		}
		rows = u.Unwrap()
	}
	return rows
}

// RealStmt is RealConn for prepared statements.
func RealStmt(stmt driver.Stmt) driver.Stmt {
	for stmt != nil {
		u, ok := stmt.(interface{ Unwrap() driver.Stmt })
		if !ok {
			break
		}
		stmt = u.Unwrap()
	}
	return stmt
}
