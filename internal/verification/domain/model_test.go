package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusConstants(t *testing.T) {
	assert.Equal(t, Status(0), StatusPending)
	assert.Equal(t, Status(1), StatusApproved)
	assert.Equal(t, Status(2), StatusRejected)

	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())

	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "status(9)", Status(9).String())
}

func TestProjectJSON(t *testing.T) {
	p := Project{
		ProjectID:      "project-123",
		Owner:          "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM",
		TechnicalScore: 80,
		FinancialScore: 75,
		Status:         StatusApproved,
		Timestamp:      100,
	}

	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"status":"approved"`)

	var decoded Project
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, p, decoded)

	t.Run("rejects unknown status", func(t *testing.T) {
		err := json.Unmarshal([]byte(`{"status":"archived"}`), &decoded)
		assert.Error(t, err)

		_, err = json.Marshal(Project{Status: Status(7)})
		assert.Error(t, err)
	})
}

func TestThresholdsDecide(t *testing.T) {
	th := DefaultThresholds()

	cases := []struct {
		technical, financial int64
		want                 Status
	}{
		{80, 75, StatusApproved},
		{70, 70, StatusApproved},
		{69, 70, StatusRejected},
		{70, 69, StatusRejected},
		{65, 75, StatusRejected},
		{0, 0, StatusRejected},
		{-5, 200, StatusRejected},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d/%d", tc.technical, tc.financial), func(t *testing.T) {
			assert.Equal(t, tc.want, th.Decide(tc.technical, tc.financial))
		})
	}
}

func TestStatsAdd(t *testing.T) {
	var s Stats
	s.Add(StatusPending)
	s.Add(StatusApproved)
	s.Add(StatusApproved)
	s.Add(StatusRejected)

	assert.Equal(t, Stats{Total: 4, Pending: 1, Approved: 2, Rejected: 1}, s)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeOK, CodeOf(nil))
	assert.Equal(t, CodeDuplicateProject, CodeOf(ErrDuplicateProject))
	assert.Equal(t, CodeUnauthorized, CodeOf(ErrUnauthorized))
	assert.Equal(t, CodeNotFound, CodeOf(fmt.Errorf("lookup: %w", ErrNotFound)))
	assert.Equal(t, CodeAlreadyFinalized, CodeOf(ErrAlreadyFinalized))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("connection refused")))

	assert.Equal(t, uint8(1), uint8(CodeDuplicateProject))
	assert.Equal(t, uint8(4), uint8(CodeAlreadyFinalized))
	assert.Equal(t, "not_found", CodeNotFound.String())
}
