package model

import (
	"testing"

	apperrors "github.com/sisunitech/careers-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobType(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"full-time", "part-time", "contract", "internship"} {
		jt, ok := ParseJobType(valid)
		require.True(t, ok)
		assert.Equal(t, JobType(valid), jt)
	}

	jt, ok := ParseJobType("Full-Time")
	require.True(t, ok)
	assert.Equal(t, JobTypeFullTime, jt)

	_, ok = ParseJobType("freelance")
	assert.False(t, ok)
}

func TestCreateJobPositionRequest_Validate(t *testing.T) {
	t.Parallel()

	req := CreateJobPositionRequest{
		Title:       " Backend Engineer ",
		Type:        "full-time",
		Description: "Build services",
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Backend Engineer", req.Title)

	bad := CreateJobPositionRequest{Title: "x", Type: "gig", Description: "d"}
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "type", apperrors.GetField(err))
}

func TestUpdateJobPositionRequest_Validate(t *testing.T) {
	t.Parallel()

	req := UpdateJobPositionRequest{
		Title:       "QA Lead",
		Type:        JobTypeContract,
		Description: "Own the release gate",
		IsActive:    false,
	}
	require.NoError(t, req.Validate())

	missingTitle := UpdateJobPositionRequest{Type: JobTypeContract, Description: "d"}
	err := missingTitle.Validate()
	require.Error(t, err)
	assert.Equal(t, "title", apperrors.GetField(err))
}
