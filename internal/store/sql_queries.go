// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/go-users-api/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the scan order used by scanUser.
var userColumns = []string{"id", "name", "email", "password", "address", "created_at"}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("name", "email", "password", "address").
		Values(user.Name, user.Email, user.Password, user.Address).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildListUsersQuery() (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id ASC").
		ToSql()
}

func buildDeleteUserQuery(userID int64) (string, []any, error) {
	return psql.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
}
