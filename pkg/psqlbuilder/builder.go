// Package psqlbuilder предоставляет squirrel-билдеры, настроенные на
// PostgreSQL-плейсхолдеры ($1, $2, ...).
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT-билдер с PostgreSQL-плейсхолдерами.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT-билдер с PostgreSQL-плейсхолдерами.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE-билдер с PostgreSQL-плейсхолдерами.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE-билдер с PostgreSQL-плейсхолдерами.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
