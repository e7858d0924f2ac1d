package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/gym-membership/internal/database"
	"github.com/deppfellow/gym-membership/internal/model/member"
	"github.com/deppfellow/gym-membership/internal/sqlerr"
)

const (
	insertMemberSQL  = `INSERT INTO members (name, email, discipline) VALUES ($1, $2, $3)`
	selectMembersSQL = `SELECT id, name, email, discipline FROM members ORDER BY id`
	selectMemberSQL  = `SELECT id, name, email, discipline FROM members WHERE id = $1`
	updateMemberSQL  = `UPDATE members SET name = $1, email = $2, discipline = $3 WHERE id = $4`
	deleteMemberSQL  = `DELETE FROM members WHERE id = $1`
)

// MemberRepository runs the member statements. Every call is a single
// autocommitted statement on a pooled connection.
type MemberRepository struct {
	db database.Querier
}

func NewMemberRepository(db database.Querier) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create inserts a member. The generated id is not read back.
func (r *MemberRepository) Create(ctx context.Context, details member.Details) error {
	_, err := r.db.Exec(ctx, insertMemberSQL, details.Name, details.Email, details.Discipline)
	if err != nil {
		return sqlerr.Wrap("create member", err)
	}
	return nil
}

// FetchAll returns every member in id order. An empty table yields an
// empty, non-nil slice.
func (r *MemberRepository) FetchAll(ctx context.Context) ([]member.Member, error) {
	rows, err := r.db.Query(ctx, selectMembersSQL)
	if err != nil {
		return nil, sqlerr.Wrap("list members", err)
	}
	defer rows.Close()

	members := make([]member.Member, 0)
	for rows.Next() {
		var m member.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Discipline); err != nil {
			return nil, sqlerr.Wrap("scan member", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, sqlerr.Wrap("list members", err)
	}

	return members, nil
}

// FetchOne returns the member with the given id, or an error wrapping
// sqlerr.ErrNotFound.
func (r *MemberRepository) FetchOne(ctx context.Context, id int64) (member.Member, error) {
	var m member.Member

	err := r.db.QueryRow(ctx, selectMemberSQL, id).Scan(&m.ID, &m.Name, &m.Email, &m.Discipline)
	if err != nil {
		return member.Member{}, sqlerr.Wrap("fetch member", err)
	}

	return m, nil
}

// Update overwrites all three fields of a member. Zero affected rows means
// the id does not exist.
func (r *MemberRepository) Update(ctx context.Context, id int64, details member.Details) error {
	tag, err := r.db.Exec(ctx, updateMemberSQL, details.Name, details.Email, details.Discipline, id)
	if err != nil {
		return sqlerr.Wrap("update member", err)
	}

	if tag.RowsAffected() == 0 {
		return sqlerr.Wrap("update member", pgx.ErrNoRows)
	}

	return nil
}

// Delete removes a member. Zero affected rows means the id does not exist.
func (r *MemberRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteMemberSQL, id)
	if err != nil {
		return sqlerr.Wrap("delete member", err)
	}

	if tag.RowsAffected() == 0 {
		return sqlerr.Wrap("delete member", pgx.ErrNoRows)
	}

	return nil
}
