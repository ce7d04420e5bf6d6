package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

const validBody = `{
	"firstName": "Emiliano",
	"lastName": "Martínez",
	"dateOfBirth": "1992-09-02T00:00:00.000Z",
	"squadNumber": 23,
	"position": "Goalkeeper",
	"abbrPosition": "GK",
	"team": "Aston Villa FC",
	"league": "Premier League",
	"starting11": true
}`

func TestDecodePlayerRequestAcceptsValidBody(t *testing.T) {
	req, err := NewValidator().DecodePlayerRequest([]byte(validBody))
	require.NoError(t, err)
	assert.Equal(t, "Emiliano", req.FirstName)
	assert.Equal(t, "", req.MiddleName, "middleName is optional")
	assert.Equal(t, uint32(23), req.SquadNumber)
	assert.True(t, req.Starting11)
}

func TestDecodePlayerRequestAcceptsNullMiddleName(t *testing.T) {
	body := `{"middleName": null,` + validBody[1:]
	req, err := NewValidator().DecodePlayerRequest([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "", req.MiddleName)
	assert.Equal(t, "Emiliano", req.FirstName)
}

func TestDecodePlayerRequestAcceptsLargestSquadNumber(t *testing.T) {
	body := `{"firstName": "x", "lastName": "x", "dateOfBirth": "x", "squadNumber": 4294967295,
		"position": "x", "abbrPosition": "x", "team": "x", "league": "x", "starting11": false}`
	req, err := NewValidator().DecodePlayerRequest([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), req.SquadNumber)
}

func TestDecodePlayerRequestAllowsTrailingWhitespace(t *testing.T) {
	_, err := NewValidator().DecodePlayerRequest([]byte(validBody + "\n\t "))
	require.NoError(t, err)
}

func TestDecodePlayerRequestIgnoresUnknownFields(t *testing.T) {
	body := `{"id": 99, "nickname": "Dibu",` + validBody[1:]
	req, err := NewValidator().DecodePlayerRequest([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "Martínez", req.LastName)
}

func TestDecodePlayerRequestRejects(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"empty body", ``, ""},
		{"not json", `{"firstName":`, ""},
		{"array", `[]`, ""},
		{"trailing value", validBody + `{}`, ""},
		{"trailing garbage", validBody + `x`, ""},
		{"middleName as number", `{"middleName": 7,` + validBody[1:], "middleName"},
		{"missing required", `{"firstName": "Only"}`, ""},
		{"wrong type", `{"firstName": 1, "lastName": "x", "dateOfBirth": "x", "squadNumber": 1,
			"position": "x", "abbrPosition": "x", "team": "x", "league": "x", "starting11": false}`, "firstName"},
		{"negative squad number", `{"firstName": "x", "lastName": "x", "dateOfBirth": "x", "squadNumber": -1,
			"position": "x", "abbrPosition": "x", "team": "x", "league": "x", "starting11": false}`, "squadNumber"},
		{"fractional squad number", `{"firstName": "x", "lastName": "x", "dateOfBirth": "x", "squadNumber": 1.5,
			"position": "x", "abbrPosition": "x", "team": "x", "league": "x", "starting11": false}`, "squadNumber"},
		{"squad number overflow", `{"firstName": "x", "lastName": "x", "dateOfBirth": "x", "squadNumber": 4294967296,
			"position": "x", "abbrPosition": "x", "team": "x", "league": "x", "starting11": false}`, "squadNumber"},
		{"starting11 as string", `{"firstName": "x", "lastName": "x", "dateOfBirth": "x", "squadNumber": 1,
			"position": "x", "abbrPosition": "x", "team": "x", "league": "x", "starting11": "yes"}`, "starting11"},
	}

	v := NewValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.DecodePlayerRequest([]byte(tc.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, players.ErrInvalidInput), "expected ErrInvalidInput, got %v", err)

			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.NotEmpty(t, verr.Message)
		})
	}
}

func TestErrorMessageIncludesField(t *testing.T) {
	err := &Error{Field: "squadNumber", Message: "must be >= 0"}
	assert.Equal(t, "squadNumber: must be >= 0", err.Error())
	assert.Equal(t, "boom", (&Error{Message: "boom"}).Error())
}
