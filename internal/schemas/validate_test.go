package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koushiik20/ResuMate/internal/types"
)

func TestValidateDocument_DefaultSkeleton(t *testing.T) {
	doc := types.NewDefaultDocument()
	jsonBytes, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NoError(t, ValidateDocument(jsonBytes))
}

func TestValidateDocument_PopulatedDocument(t *testing.T) {
	doc := types.NewDefaultDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.PersonalInfo.Email = "jane@example.com"
	doc.Experience[0].Company = "Acme"
	doc.Experience[0].Current = true
	doc.Skills[0].Name = "Go"
	doc.Skills[0].Level = 5

	jsonBytes, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NoError(t, ValidateDocument(jsonBytes))
}

func TestValidateDocument_MalformedJSON(t *testing.T) {
	err := ValidateDocument([]byte("{not json"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateDocument_MissingCollections(t *testing.T) {
	err := ValidateDocument([]byte(`{"personalInfo": {}}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateDocument_EmptyCollectionRejected(t *testing.T) {
	// Every repeatable collection must hold at least one entry
	doc := types.NewDefaultDocument()
	doc.Skills = []types.Skill{}
	jsonBytes, err := json.Marshal(doc)
	require.NoError(t, err)

	validationErr := ValidateDocument(jsonBytes)
	require.Error(t, validationErr)

	var ve *ValidationError
	require.ErrorAs(t, validationErr, &ve)
	found := false
	for _, fe := range ve.Errors {
		if fe.Field == "skills" {
			found = true
		}
	}
	assert.True(t, found, "expected a field error on skills, got %v", ve.Errors)
}

func TestValidateDocument_SkillLevelOutOfRange(t *testing.T) {
	doc := types.NewDefaultDocument()
	doc.Skills[0].Level = 9
	jsonBytes, err := json.Marshal(doc)
	require.NoError(t, err)

	var ve *ValidationError
	require.ErrorAs(t, ValidateDocument(jsonBytes), &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateDocument_ErrorMessageListsFields(t *testing.T) {
	err := ValidateDocument([]byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document validation failed")
}
