package audit_repo

import (
	"casino/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendQuery(t *testing.T) {
	rec := &model.AuditRecord{
		UserID:         3,
		Game:           model.GameRoulette,
		Action:         "spin",
		ServerSeedHash: "abc",
		BetCents:       500,
		PayoutCents:    1000,
		BalanceAfter:   1500,
		Final:          true,
	}

	sqlStr, args, err := appendQuery(rec).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "INSERT INTO audit_log")
	assert.Contains(t, sqlStr, "RETURNING id, created_at")
	require.Len(t, args, 12)
	assert.Equal(t, "roulette", args[1])
	assert.Equal(t, "{}", args[11], "empty payload is stored as an empty object")
}

func TestFinalExistsQuery(t *testing.T) {
	sqlStr, args, err := finalExistsQuery("abc").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT EXISTS(SELECT 1 FROM audit_log WHERE final = $1 AND server_seed_hash = $2)", sqlStr)
	assert.Equal(t, []any{true, "abc"}, args)
}
