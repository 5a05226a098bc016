package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinRequestDecide(t *testing.T) {
	user := NewUser(uuid.New(), "bob")

	tests := []struct {
		name        string
		start       JoinStatus
		approve     bool
		wantStatus  JoinStatus
		wantChanged bool
		wantErr     error
	}{
		{name: "approve pending", start: JoinStatusPending, approve: true, wantStatus: JoinStatusApproved, wantChanged: true},
		{name: "deny pending", start: JoinStatusPending, approve: false, wantStatus: JoinStatusDenied, wantChanged: true},
		{name: "approve twice", start: JoinStatusApproved, approve: true, wantStatus: JoinStatusApproved},
		{name: "deny twice", start: JoinStatusDenied, approve: false, wantStatus: JoinStatusDenied},
		{name: "approve denied", start: JoinStatusDenied, approve: true, wantStatus: JoinStatusDenied, wantErr: ErrAlreadyDecided},
		{name: "deny approved", start: JoinStatusApproved, approve: false, wantStatus: JoinStatusApproved, wantErr: ErrAlreadyDecided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewJoinRequest(uuid.New(), user)
			req.Status = tt.start

			changed, err := req.Decide(tt.approve)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidState)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantStatus, req.Status)
			if tt.wantChanged {
				assert.NotNil(t, req.DecidedAt)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	a, err := ParseAction("host")
	require.NoError(t, err)
	assert.Equal(t, ActionHost, a)

	_, err = ParseAction("spectate")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	s, err := ParseJoinStatus("denied")
	require.NoError(t, err)
	assert.Equal(t, JoinStatusDenied, s)

	_, err = ParseJoinStatus("maybe")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
