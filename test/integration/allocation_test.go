//go:build integration
// +build integration

package integration

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmhours/pmhours-go/db"
	"github.com/pmhours/pmhours-go/dto"
	"github.com/pmhours/pmhours-go/repositories"
)

func TestBulkUpdateKeepsSumWithinBudget(t *testing.T) {
	resetTables(t)

	admin := seedUser(t, "admin", "admin")
	alice := seedUser(t, "alice", "tester")
	bob := seedUser(t, "bob", "tester")
	project := seedProject(t, "atlas", "100")
	allocA := seedAllocation(t, alice.UID, project.PID, "60")
	allocB := seedAllocation(t, bob.UID, project.PID, "30")

	result, err := testSvcs.Allocation.ApplyBulkUpdate(nil, dto.BulkUpdateDTO{
		Edits: map[uint]string{
			allocA.AID: "80", // 80 + 30 > 100
			allocB.AID: "40", // 60 + 40 = 100
		},
		Reason: "sprint rebalance",
	}, admin.UID)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 1, result.Rejected)

	sum, err := testRepos.Allocation.SumAllocations(project.PID)
	require.NoError(t, err)
	assert.True(t, sum.LessThanOrEqual(project.TotalHours),
		"sum %s exceeds budget %s", sum, project.TotalHours)

	assert.True(t, allocationHours(t, db.DB, allocA.AID).Equal(dec(t, "60")))
	assert.True(t, allocationHours(t, db.DB, allocB.AID).Equal(dec(t, "40")))
}

func TestBulkUpdateBoundary(t *testing.T) {
	resetTables(t)

	admin := seedUser(t, "admin", "admin")
	alice := seedUser(t, "alice", "tester")
	bob := seedUser(t, "bob", "tester")
	project := seedProject(t, "atlas", "100")
	alloc := seedAllocation(t, alice.UID, project.PID, "10")
	seedAllocation(t, bob.UID, project.PID, "30")

	// Exactly the remaining budget is accepted.
	result, err := testSvcs.Allocation.ApplyBulkUpdate(nil, dto.BulkUpdateDTO{
		Edits:  map[uint]string{alloc.AID: "70"},
		Reason: "fill remaining budget",
	}, admin.UID)
	require.NoError(t, err)
	require.Equal(t, 1, result.Applied)

	// One hundredth over is not.
	result, err = testSvcs.Allocation.ApplyBulkUpdate(nil, dto.BulkUpdateDTO{
		Edits:  map[uint]string{alloc.AID: "70.01"},
		Reason: "push past budget",
	}, admin.UID)
	require.NoError(t, err)
	require.Equal(t, 1, result.Rejected)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, dto.RowRejected, result.Rows[0].Status)
	assert.Contains(t, result.Rows[0].Reason, "max allowed 70")

	assert.True(t, allocationHours(t, db.DB, alloc.AID).Equal(dec(t, "70")))
}

func TestBulkUpdateWritesOneAuditRowPerAppliedEdit(t *testing.T) {
	resetTables(t)

	admin := seedUser(t, "admin", "admin")
	alice := seedUser(t, "alice", "tester")
	project := seedProject(t, "atlas", "100")
	alloc := seedAllocation(t, alice.UID, project.PID, "20")

	apply := func(reason string) {
		result, err := testSvcs.Allocation.ApplyBulkUpdate(nil, dto.BulkUpdateDTO{
			Edits:  map[uint]string{alloc.AID: "25"},
			Reason: reason,
		}, admin.UID)
		require.NoError(t, err)
		require.Equal(t, 1, result.Applied)
	}

	// Re-applying the same value is a normal edit and gets its own audit
	// entry under a fresh batch id.
	apply("first pass")
	apply("second pass")

	resourceType := "allocation"
	logs, err := testRepos.Audit.GetAuditLogs(repositories.AuditQueryParams{ResourceType: &resourceType})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.NotEqual(t, logs[0].BatchID, logs[1].BatchID)
	for _, entry := range logs {
		assert.Equal(t, admin.UID, entry.UserID)
		assert.Equal(t, "update", entry.Action)
		assert.True(t, strings.Contains(string(entry.NewData), `"hours_allocated":"25"`) ||
			strings.Contains(string(entry.NewData), `"hours_allocated":"25.00"`),
			"new_data = %s", entry.NewData)
	}
}

func TestConcurrentBulkUpdatesSerializeOnProjectBudget(t *testing.T) {
	resetTables(t)

	admin := seedUser(t, "admin", "admin")
	alice := seedUser(t, "alice", "tester")
	bob := seedUser(t, "bob", "tester")
	project := seedProject(t, "atlas", "100")
	allocA := seedAllocation(t, alice.UID, project.PID, "45")
	allocB := seedAllocation(t, bob.UID, project.PID, "45")

	// Each edit alone fits (45 + 55 = 100); together they do not. One of
	// the two must lose at the locked re-check.
	results := make([]dto.BulkUpdateResult, 2)
	var wg sync.WaitGroup
	for i, id := range []uint{allocA.AID, allocB.AID} {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			result, err := testSvcs.Allocation.ApplyBulkUpdate(nil, dto.BulkUpdateDTO{
				Edits:  map[uint]string{id: "55"},
				Reason: "concurrent rebalance",
			}, admin.UID)
			require.NoError(t, err)
			results[i] = result
		}(i, id)
	}
	wg.Wait()

	sum, err := testRepos.Allocation.SumAllocations(project.PID)
	require.NoError(t, err)
	assert.True(t, sum.LessThanOrEqual(project.TotalHours),
		"sum %s exceeds budget %s", sum, project.TotalHours)

	applied := results[0].Applied + results[1].Applied
	assert.LessOrEqual(t, applied, 1, "both edits applied past the budget")
}

func TestValidateProposedMatchesApplySemantics(t *testing.T) {
	resetTables(t)

	alice := seedUser(t, "alice", "tester")
	bob := seedUser(t, "bob", "tester")
	project := seedProject(t, "atlas", "100")
	alloc := seedAllocation(t, alice.UID, project.PID, "10")
	seedAllocation(t, bob.UID, project.PID, "30")

	validation, err := testSvcs.Allocation.ValidateProposed(alloc.AID, "70")
	require.NoError(t, err)
	assert.True(t, validation.Valid)
	assert.True(t, validation.MaxAllowed.Equal(dec(t, "70")))

	validation, err = testSvcs.Allocation.ValidateProposed(alloc.AID, "70.01")
	require.NoError(t, err)
	assert.False(t, validation.Valid)
}
