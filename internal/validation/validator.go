// Package validation checks the structural shape of player request bodies
// before they reach the collection operations.
package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

const schemaURL = "player_request.schema.json"

//go:embed player_request.schema.json
var playerRequestSchema []byte

// Validator decodes request bodies and checks them against the player
// request schema. The schema is compiled on first use.
type Validator struct {
	once        sync.Once
	schema      *jsonschema.Schema
	schemaError error
}

// NewValidator constructs a Validator for player request bodies.
func NewValidator() *Validator {
	return &Validator{}
}

// DecodePlayerRequest parses body into a PlayerRequest. Field presence and
// JSON types are enforced; unknown fields are ignored.
func (v *Validator) DecodePlayerRequest(body []byte) (players.PlayerRequest, error) {
	v.once.Do(func() {
		v.schema, v.schemaError = compileSchema()
	})
	if v.schemaError != nil {
		return players.PlayerRequest{}, fmt.Errorf("compile player schema: %w", v.schemaError)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return players.PlayerRequest{}, &Error{Message: "request body is empty"}
	}

	doc, err := decodeDocument(body)
	if err != nil {
		return players.PlayerRequest{}, err
	}

	if err := v.schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return players.PlayerRequest{}, toError(verr)
		}
		return players.PlayerRequest{}, &Error{Message: err.Error()}
	}

	var req players.PlayerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return players.PlayerRequest{}, &Error{Message: err.Error()}
	}
	return req, nil
}

// decodeDocument parses body into the generic form the schema validator
// expects. Numbers stay json.Number so integer checks see the literal.
func decodeDocument(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &Error{Message: "request body is not valid JSON"}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &Error{Message: "request body has trailing data after the JSON value"}
	}
	return doc, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(playerRequestSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
}

// toError reports the first leaf cause, which names the offending field.
func toError(verr *jsonschema.ValidationError) *Error {
	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	return &Error{
		Field:   strings.TrimPrefix(leaf.InstanceLocation, "/"),
		Message: leaf.Message,
	}
}
