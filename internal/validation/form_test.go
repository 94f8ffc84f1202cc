package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koushiik20/ResuMate/internal/types"
)

func TestCheckReady_ValidDocument(t *testing.T) {
	doc := types.NewDefaultDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.PersonalInfo.Email = "jane@example.com"

	assert.NoError(t, CheckReady(doc))
}

func TestCheckReady_BlankDocument(t *testing.T) {
	err := CheckReady(types.NewDefaultDocument())
	require.Error(t, err)

	var gateErr *GateError
	require.ErrorAs(t, err, &gateErr)
	assert.Len(t, gateErr.Fields, 2)
}

func TestCheckReady_MissingName(t *testing.T) {
	doc := types.NewDefaultDocument()
	doc.PersonalInfo.Email = "jane@example.com"

	var gateErr *GateError
	require.ErrorAs(t, CheckReady(doc), &gateErr)
	require.Len(t, gateErr.Fields, 1)
	assert.Equal(t, "FullName", gateErr.Fields[0].Field)
}

func TestCheckReady_InvalidEmail(t *testing.T) {
	doc := types.NewDefaultDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.PersonalInfo.Email = "not-an-email"

	var gateErr *GateError
	require.ErrorAs(t, CheckReady(doc), &gateErr)
	require.Len(t, gateErr.Fields, 1)
	assert.Equal(t, "Email", gateErr.Fields[0].Field)
	assert.Contains(t, gateErr.Error(), "valid email")
}

func TestCheckReady_WhitespaceOnlyName(t *testing.T) {
	doc := types.NewDefaultDocument()
	doc.PersonalInfo.FullName = "   "
	doc.PersonalInfo.Email = "jane@example.com"

	assert.Error(t, CheckReady(doc))
}
