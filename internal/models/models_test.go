package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionStateIsFinal(t *testing.T) {
	assert.True(t, StateDone.IsFinal())
	assert.True(t, StateCancel.IsFinal())
	assert.False(t, StateDraft.IsFinal())
	assert.False(t, StatePending.IsFinal())
	assert.False(t, StateError.IsFinal())
}

func TestPayerAcquirerRef(t *testing.T) {
	tx := &Transaction{}
	assert.Equal(t, "", tx.PayerAcquirerRef())

	tx.PaymentToken = &PaymentToken{AcquirerRef: "PAYER1"}
	assert.Equal(t, "PAYER1", tx.PayerAcquirerRef())
}

func TestJSONColumn(t *testing.T) {
	payload := JSONFromStrings(map[string]string{"txn_id": "T1", "mc_gross": "103.86"})

	raw, err := payload.Value()
	require.NoError(t, err)

	var scanned JSON
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, "T1", scanned["txn_id"])

	require.NoError(t, scanned.Scan(`{"a":"b"}`))
	assert.Equal(t, "b", scanned["a"])

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)

	assert.Error(t, scanned.Scan(42))

	var empty JSON
	v, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGetDefaultPermissions(t *testing.T) {
	claims := &UserClaims{Permissions: GetDefaultPermissions("support")}
	assert.True(t, claims.HasPermission(PermissionTransactionRead))
	assert.False(t, claims.HasPermission(PermissionPaymentWrite))
	assert.Empty(t, GetDefaultPermissions("guest"))
}
