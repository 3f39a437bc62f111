package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-feed/models"
)

var (
	userColumns = []string{"id", "name", "email", "password_hash", "created_at"}
	postColumns = []string{"id", "title", "description", "author", "author_id", "created_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert(post.TableName()).
		Columns(postColumns...).
		Values(post.ID, post.Title, post.Description, post.Author, post.AuthorID, post.CreatedAt).
		ToSql()
}

// buildSelectPostsQuery orders newest first; the id breaks ties between
// posts created within the same instant.
func buildSelectPostsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}
