package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectStatus_BidStatus(t *testing.T) {
	assert.Equal(t, BidSelected, ProjectInProgress.BidStatus())
	assert.Equal(t, BidCompleted, ProjectCompleted.BidStatus())
	assert.Equal(t, BidSubmitted, ProjectPending.BidStatus())
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, ProjectInProgress.Valid())
	assert.False(t, ProjectStatus("in_progress").Valid())
	assert.True(t, RoleSeller.Valid())
	assert.False(t, Role("ADMIN").Valid())
}

func TestBeforeCreateKeepsExistingID(t *testing.T) {
	u := &User{ID: "fixed"}
	assert.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, "fixed", u.ID)

	p := &Project{}
	assert.NoError(t, p.BeforeCreate(nil))
	assert.Len(t, p.ID, 36)
}
