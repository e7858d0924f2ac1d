package member

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayload_Details(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want string
	}{
		"String":      {raw: `"Alice"`, want: "Alice"},
		"EmptyString": {raw: `""`, want: ""},
		"Escaped":     {raw: `"a\"b"`, want: `a"b`},
		"Null":        {raw: `null`, want: ""},
		"Number":      {raw: `5`, want: "5"},
		"Bool":        {raw: `false`, want: "false"},
		"Object":      {raw: `{ "belt" : "black" }`, want: `{"belt":"black"}`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := Payload{
				Name:       json.RawMessage(tc.raw),
				Email:      json.RawMessage(`"a@x.com"`),
				Discipline: json.RawMessage(`"Judo"`),
			}

			assert.Equal(t, Details{Name: tc.want, Email: "a@x.com", Discipline: "Judo"}, p.Details())
		})
	}
}

func TestPathParamsOnlyRequests(t *testing.T) {
	type pathOnly interface{ PathParamsOnly() }

	assert.Implements(t, (*pathOnly)(nil), &ListMembersRequest{})
	assert.Implements(t, (*pathOnly)(nil), &GetMemberRequest{})
	assert.Implements(t, (*pathOnly)(nil), &DeleteMemberRequest{})
	assert.NotImplements(t, (*pathOnly)(nil), &CreateMemberRequest{})
	assert.NotImplements(t, (*pathOnly)(nil), &UpdateMemberRequest{})
}
