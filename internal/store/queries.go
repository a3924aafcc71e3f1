// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-keeper/internal/query"
	"github.com/MKhiriev/go-doc-keeper/models"
)

var userColumns = []string{
	"id", "username", "first_name", "last_name", "email",
	"password", "role_id", "token", "created_at", "updated_at",
}

var roleColumns = []string{"id", "title", "created_at", "updated_at"}

var documentColumns = []string{
	"d.id", "d.title", "d.content", "d.access", "d.owner_id",
	"u.role_id", "d.created_at", "d.updated_at",
}

// documentsWithOwner joins each document to its owner, whose role decides
// role-level access.
var documentsWithOwner = models.Document{}.TableName() + " d JOIN " +
	models.User{}.TableName() + " u ON u.id = d.owner_id"

// users

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(models.User{}.TableName()).
		Columns("username", "first_name", "last_name", "email", "password", "role_id").
		Values(user.Username, user.FirstName, user.LastName, user.Email, user.Password, user.RoleID).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func (db *DB) buildSelectUsersQuery(page models.Page) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
}

func (db *DB) buildCountUsersQuery() (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(models.User{}.TableName()).
		ToSql()
}

// buildUpdateUserQuery sets only the non-nil fields of update. The password,
// when present, must already be hashed.
func (db *DB) buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	set := sq.Eq{}
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Password != nil {
		set["password"] = *update.Password
	}
	if update.RoleID != nil {
		set["role_id"] = *update.RoleID
	}
	if len(set) == 0 {
		return "", nil, ErrNothingToUpdate
	}
	set["updated_at"] = sq.Expr("CURRENT_TIMESTAMP")

	return db.builder.
		Update(models.User{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildUpdateUserTokenQuery(id int64, token *string) (string, []any, error) {
	return db.builder.
		Update(models.User{}.TableName()).
		Set("token", token).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildDeleteQuery(table string, id int64) (string, []any, error) {
	return db.builder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// roles

func (db *DB) buildInsertRoleQuery(role models.Role) (string, []any, error) {
	return db.builder.
		Insert(models.Role{}.TableName()).
		Columns("title").
		Values(role.Title).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildSelectRoleQuery(id int64) (string, []any, error) {
	return db.builder.
		Select(roleColumns...).
		From(models.Role{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildSelectRolesQuery() (string, []any, error) {
	return db.builder.
		Select(roleColumns...).
		From(models.Role{}.TableName()).
		OrderBy("id ASC").
		ToSql()
}

func (db *DB) buildUpdateRoleQuery(role models.Role) (string, []any, error) {
	return db.builder.
		Update(models.Role{}.TableName()).
		Set("title", role.Title).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": role.ID}).
		ToSql()
}

// documents

func (db *DB) buildInsertDocumentQuery(doc models.Document) (string, []any, error) {
	return db.builder.
		Insert(models.Document{}.TableName()).
		Columns("title", "content", "access", "owner_id").
		Values(doc.Title, doc.Content, string(doc.Access), doc.OwnerID).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildSelectDocumentQuery(id int64) (string, []any, error) {
	return db.builder.
		Select(documentColumns...).
		From(documentsWithOwner).
		Where(sq.Eq{"d.id": id}).
		ToSql()
}

func (db *DB) buildSelectDocumentsQuery(q query.DocumentQuery) (string, []any, error) {
	where, err := db.compileFilter(q.Filter)
	if err != nil {
		return "", nil, err
	}
	orderBy, err := db.compileOrder(q.OrderBy)
	if err != nil {
		return "", nil, err
	}

	builder := db.builder.
		Select(documentColumns...).
		From(documentsWithOwner).
		OrderBy(orderBy...).
		Limit(uint64(q.Page.Limit)).
		Offset(uint64(q.Page.Offset))
	if where != nil {
		builder = builder.Where(where)
	}

	return builder.ToSql()
}

func (db *DB) buildCountDocumentsQuery(f query.Filter) (string, []any, error) {
	where, err := db.compileFilter(f)
	if err != nil {
		return "", nil, err
	}

	builder := db.builder.
		Select("COUNT(*)").
		From(documentsWithOwner)
	if where != nil {
		builder = builder.Where(where)
	}

	return builder.ToSql()
}

func (db *DB) buildUpdateDocumentQuery(id int64, update models.DocumentUpdate) (string, []any, error) {
	set := sq.Eq{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Access != nil {
		set["access"] = string(*update.Access)
	}
	if len(set) == 0 {
		return "", nil, ErrNothingToUpdate
	}
	set["updated_at"] = sq.Expr("CURRENT_TIMESTAMP")

	return db.builder.
		Update(models.Document{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
}
