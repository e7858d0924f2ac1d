// Package member holds the gym member entity and the request/response
// payloads of the member API.
package member

// Member is a gym member as stored in the members table.
// ID is assigned by the database and never changes.
type Member struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Email      string `json:"email" db:"email"`
	Discipline string `json:"discipline" db:"discipline"`
}

// Details are the mutable fields of a member. Create and Update both
// write all three at once.
type Details struct {
	Name       string
	Email      string
	Discipline string
}
